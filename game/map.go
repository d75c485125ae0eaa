package game

import (
	"errors"
	"fmt"

	"warzone/utils"
)

var (
	ErrEmptyMap              = errors.New("map has no territories")
	ErrDisconnectedMap       = errors.New("map is not connected")
	ErrDisconnectedContinent = errors.New("continent is not connected")
	ErrContinentMembership   = errors.New("territory must belong to exactly one continent")
	ErrAsymmetricBorder      = errors.New("border is not symmetric")
)

// Territory is a static node of the map. Its ID is its index in Map.Territories.
type Territory struct {
	ID          int    // Stable identifier, index into the map's arena
	Name        string // Display name
	ContinentID int    // Continent the territory was declared in
	AdjacentIDs []int  // IDs of adjacent territories, in declaration order
}

// Continent groups territories and grants a bonus to a player owning all of them.
type Continent struct {
	ID           int
	Name         string
	Bonus        int
	TerritoryIDs []int
}

// Map holds all territories and continents. Its structure does not change once a game starts;
// armies and ownership live in GameState.
type Map struct {
	Name        string
	Territories []*Territory
	Continents  []*Continent
}

// NewMap creates an empty map.
func NewMap(name string) *Map {
	return &Map{Name: name}
}

// AddContinent appends a continent and returns it.
func (m *Map) AddContinent(name string, bonus int) *Continent {
	c := &Continent{
		ID:    len(m.Continents),
		Name:  name,
		Bonus: bonus,
	}
	m.Continents = append(m.Continents, c)
	return c
}

// AddTerritory appends a territory and registers it as a member of continentID.
func (m *Map) AddTerritory(name string, continentID int) *Territory {
	t := &Territory{
		ID:          len(m.Territories),
		Name:        name,
		ContinentID: continentID,
		AdjacentIDs: []int{},
	}
	m.Territories = append(m.Territories, t)
	if continentID >= 0 && continentID < len(m.Continents) {
		c := m.Continents[continentID]
		c.TerritoryIDs = append(c.TerritoryIDs, t.ID)
	}
	return t
}

// AddBorder adds a bidirectional border between two territories.
func (m *Map) AddBorder(id1, id2 int) {
	if !m.Has(id1) || !m.Has(id2) || id1 == id2 {
		return
	}
	t1, t2 := m.Territories[id1], m.Territories[id2]
	if !utils.Contains(t1.AdjacentIDs, id2) {
		t1.AdjacentIDs = append(t1.AdjacentIDs, id2)
	}
	if !utils.Contains(t2.AdjacentIDs, id1) {
		t2.AdjacentIDs = append(t2.AdjacentIDs, id1)
	}
}

// Has reports whether id names a territory of the map.
func (m *Map) Has(id int) bool {
	return id >= 0 && id < len(m.Territories)
}

// AdjacentTerritories returns the neighbors of id in declaration order.
func (m *Map) AdjacentTerritories(id int) []*Territory {
	if !m.Has(id) {
		return []*Territory{}
	}
	adjacent := make([]*Territory, 0, len(m.Territories[id].AdjacentIDs))
	for _, adjID := range m.Territories[id].AdjacentIDs {
		adjacent = append(adjacent, m.Territories[adjID])
	}
	return adjacent
}

// AreAdjacent checks if two territories share a border.
func (m *Map) AreAdjacent(id1, id2 int) bool {
	if !m.Has(id1) {
		return false
	}
	return utils.Contains(m.Territories[id1].AdjacentIDs, id2)
}

// Validate reports whether the map is connected, every continent is a connected subgraph and
// every territory belongs to exactly one continent. It does not modify the map.
func (m *Map) Validate() bool {
	return m.ValidateErr() == nil
}

// ValidateErr performs the same checks as Validate and explains the first failure.
func (m *Map) ValidateErr() error {
	if len(m.Territories) == 0 {
		return ErrEmptyMap
	}

	for _, t := range m.Territories {
		for _, adjID := range t.AdjacentIDs {
			if !m.Has(adjID) || !utils.Contains(m.Territories[adjID].AdjacentIDs, t.ID) {
				return fmt.Errorf("%w: %s -> %d", ErrAsymmetricBorder, t.Name, adjID)
			}
		}
	}

	all := func(int) bool { return true }
	if visited := m.reachable(0, all); visited != len(m.Territories) {
		return fmt.Errorf("%w: reached %d of %d territories", ErrDisconnectedMap, visited, len(m.Territories))
	}

	memberships := make([]int, len(m.Territories))
	for _, c := range m.Continents {
		for _, id := range c.TerritoryIDs {
			if !m.Has(id) {
				return fmt.Errorf("%w: continent %s lists unknown territory %d", ErrContinentMembership, c.Name, id)
			}
			memberships[id]++
		}
	}
	for id, count := range memberships {
		if count != 1 {
			return fmt.Errorf("%w: %s is in %d continents", ErrContinentMembership, m.Territories[id].Name, count)
		}
	}

	for _, c := range m.Continents {
		if len(c.TerritoryIDs) == 0 {
			continue
		}
		members := make(map[int]bool, len(c.TerritoryIDs))
		for _, id := range c.TerritoryIDs {
			members[id] = true
		}
		inContinent := func(id int) bool { return members[id] }
		if visited := m.reachable(c.TerritoryIDs[0], inContinent); visited != len(c.TerritoryIDs) {
			return fmt.Errorf("%w: %s reached %d of %d territories", ErrDisconnectedContinent, c.Name, visited, len(c.TerritoryIDs))
		}
	}

	return nil
}

// reachable runs a BFS from start over edges whose endpoints both satisfy include and returns
// the number of visited territories.
func (m *Map) reachable(start int, include func(int) bool) int {
	visited := make(map[int]bool)
	queue := []int{start}
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, adjID := range m.Territories[current].AdjacentIDs {
			if visited[adjID] || !include(adjID) {
				continue
			}
			visited[adjID] = true
			queue = append(queue, adjID)
		}
	}
	return len(visited)
}
