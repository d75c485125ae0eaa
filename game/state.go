package game

// Neutral is the owner ID of territories no player controls.
const Neutral = -1

// GameState is the dynamic state of a game: everything except the map, which is static.
// It is the single context handed to strategies, orders and engine phases.
type GameState struct {
	Map             *Map      // Reference to the static game map
	Armies          []int     // Army counts per territory, indexed by territory ID
	PendingIncoming []int     // Armies reserved to arrive by orders not yet executed
	PendingOutgoing []int     // Armies reserved to leave by orders not yet executed
	Ownership       []int     // Owner IDs per territory (Neutral when unowned)
	Players         []*Player // Players in turn order
	Deck            *Deck     // Card source, nil disables card awards
}

// NewGameState initializes a state where every territory is neutral and empty.
func NewGameState(m *Map, players ...*Player) *GameState {
	n := len(m.Territories)
	gs := &GameState{
		Map:             m,
		Armies:          make([]int, n),
		PendingIncoming: make([]int, n),
		PendingOutgoing: make([]int, n),
		Ownership:       make([]int, n),
		Players:         players,
	}
	for i := range gs.Ownership {
		gs.Ownership[i] = Neutral
	}
	return gs
}

// AddPlayer appends a player to the end of the turn order.
func (gs *GameState) AddPlayer(p *Player) {
	gs.Players = append(gs.Players, p)
}

// PlayerByID returns the player with the given ID, or nil.
func (gs *GameState) PlayerByID(id int) *Player {
	for _, p := range gs.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Owner returns the player owning a territory, or nil if it is neutral.
func (gs *GameState) Owner(territoryID int) *Player {
	if !gs.Map.Has(territoryID) {
		return nil
	}
	return gs.PlayerByID(gs.Ownership[territoryID])
}

// SetOwner transfers a territory to playerID (or Neutral). The previous owner's set and the new
// owner's set are updated together, so no two players ever hold the same territory.
func (gs *GameState) SetOwner(territoryID, playerID int) {
	if !gs.Map.Has(territoryID) {
		return
	}
	if previous := gs.Owner(territoryID); previous != nil {
		delete(previous.Territories, territoryID)
	}
	gs.Ownership[territoryID] = playerID
	if next := gs.PlayerByID(playerID); next != nil {
		next.Territories[territoryID] = struct{}{}
	} else {
		gs.Ownership[territoryID] = Neutral
	}
}

// MovableArmies returns armies + pending incoming - pending outgoing, never negative.
func (gs *GameState) MovableArmies(territoryID int) int {
	if !gs.Map.Has(territoryID) {
		return 0
	}
	return max(0, gs.Armies[territoryID]+gs.PendingIncoming[territoryID]-gs.PendingOutgoing[territoryID])
}

// ReserveIncoming records armies that an issued order will bring to a territory.
func (gs *GameState) ReserveIncoming(territoryID, armies int) {
	if gs.Map.Has(territoryID) && armies > 0 {
		gs.PendingIncoming[territoryID] += armies
	}
}

// ReserveOutgoing records armies that an issued order will take from a territory.
func (gs *GameState) ReserveOutgoing(territoryID, armies int) {
	if gs.Map.Has(territoryID) && armies > 0 {
		gs.PendingOutgoing[territoryID] += armies
	}
}

func (gs *GameState) releaseIncoming(territoryID, armies int) {
	gs.PendingIncoming[territoryID] = max(0, gs.PendingIncoming[territoryID]-armies)
}

func (gs *GameState) releaseOutgoing(territoryID, armies int) {
	gs.PendingOutgoing[territoryID] = max(0, gs.PendingOutgoing[territoryID]-armies)
}

// ResetReservations zeroes all pending counters.
func (gs *GameState) ResetReservations() {
	for i := range gs.PendingIncoming {
		gs.PendingIncoming[i] = 0
		gs.PendingOutgoing[i] = 0
	}
}

// ActivePlayers returns the players owning at least one territory, in turn order.
func (gs *GameState) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range gs.Players {
		if len(p.Territories) > 0 {
			active = append(active, p)
		}
	}
	return active
}

// OwnsContinent reports whether p owns every territory of the continent.
func (gs *GameState) OwnsContinent(p *Player, c *Continent) bool {
	if len(c.TerritoryIDs) == 0 {
		return false
	}
	for _, id := range c.TerritoryIDs {
		if gs.Ownership[id] != p.ID {
			return false
		}
	}
	return true
}

// ContinentBonus sums the bonuses of the continents p owns entirely.
func (gs *GameState) ContinentBonus(p *Player) int {
	bonus := 0
	for _, c := range gs.Map.Continents {
		if gs.OwnsContinent(p, c) {
			bonus += c.Bonus
		}
	}
	return bonus
}

// Reinforcements returns the armies p earns at the start of a round.
func (gs *GameState) Reinforcements(p *Player) int {
	if len(p.Territories) == 0 {
		return 0
	}
	return max(3, len(p.Territories)/3) + gs.ContinentBonus(p)
}

// Winner returns the only player still owning territories, or nil.
func (gs *GameState) Winner() *Player {
	active := gs.ActivePlayers()
	if len(active) == 1 {
		return active[0]
	}
	return nil
}

// EnemyNeighbors returns the territories adjacent to id that p does not own, in adjacency order.
func (gs *GameState) EnemyNeighbors(p *Player, id int) []int {
	var enemies []int
	for _, adjID := range gs.Map.Territories[id].AdjacentIDs {
		if gs.Ownership[adjID] != p.ID {
			enemies = append(enemies, adjID)
		}
	}
	return enemies
}

// IsProtectedFrom reports whether attacking territoryID is forbidden for p by a truce.
func (gs *GameState) IsProtectedFrom(p *Player, territoryID int) bool {
	owner := gs.Ownership[territoryID]
	return owner != Neutral && p.HasTruce(owner)
}
