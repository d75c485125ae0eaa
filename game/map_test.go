package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// twoContinentMap builds West{0,1,2} and East{3,4} joined by the 2-3 border.
func twoContinentMap() *Map {
	m := NewMap("test")
	west := m.AddContinent("West", 2)
	east := m.AddContinent("East", 3)
	for _, name := range []string{"a", "b", "c"} {
		m.AddTerritory(name, west.ID)
	}
	for _, name := range []string{"d", "e"} {
		m.AddTerritory(name, east.ID)
	}
	m.AddBorder(0, 1)
	m.AddBorder(1, 2)
	m.AddBorder(2, 3)
	m.AddBorder(3, 4)
	return m
}

func TestMapAddBorder(t *testing.T) {
	t.Run("borders are symmetric", func(t *testing.T) {
		m := twoContinentMap()

		require.True(t, m.AreAdjacent(2, 3))
		require.True(t, m.AreAdjacent(3, 2))
		require.False(t, m.AreAdjacent(0, 4))
	})

	t.Run("adding a border twice keeps one entry", func(t *testing.T) {
		m := twoContinentMap()
		m.AddBorder(0, 1)
		m.AddBorder(1, 0)

		require.Equal(t, []int{1}, m.Territories[0].AdjacentIDs)
	})

	t.Run("self and unknown borders are ignored", func(t *testing.T) {
		m := twoContinentMap()
		m.AddBorder(0, 0)
		m.AddBorder(0, 42)

		require.Equal(t, []int{1}, m.Territories[0].AdjacentIDs)
	})
}

func TestMapAdjacentTerritories(t *testing.T) {
	t.Run("neighbors in declaration order", func(t *testing.T) {
		m := twoContinentMap()

		got := m.AdjacentTerritories(2)

		require.Len(t, got, 2)
		require.Equal(t, "b", got[0].Name)
		require.Equal(t, "d", got[1].Name)
	})

	t.Run("isolated or unknown territory has no neighbors", func(t *testing.T) {
		m := twoContinentMap()
		lonely := m.AddTerritory("lonely", 0)

		require.Empty(t, m.AdjacentTerritories(lonely.ID))
		require.NotNil(t, m.AdjacentTerritories(99))
		require.Empty(t, m.AdjacentTerritories(99))
	})
}

func TestMapValidate(t *testing.T) {
	t.Run("connected map with connected continents is valid", func(t *testing.T) {
		m := twoContinentMap()

		require.True(t, m.Validate())
		require.NoError(t, m.ValidateErr())
	})

	t.Run("disconnected map is invalid", func(t *testing.T) {
		m := twoContinentMap()
		m.AddTerritory("island", 1)

		require.False(t, m.Validate())
		require.ErrorIs(t, m.ValidateErr(), ErrDisconnectedMap)
	})

	t.Run("continent that is not internally connected is invalid", func(t *testing.T) {
		// a-b-c with West{a, c} only linked through East's b
		m := NewMap("split")
		west := m.AddContinent("West", 1)
		east := m.AddContinent("East", 1)
		m.AddTerritory("a", west.ID)
		m.AddTerritory("b", east.ID)
		m.AddTerritory("c", west.ID)
		m.AddBorder(0, 1)
		m.AddBorder(1, 2)

		require.False(t, m.Validate())
		require.ErrorIs(t, m.ValidateErr(), ErrDisconnectedContinent)
	})

	t.Run("territory in two continents is invalid", func(t *testing.T) {
		m := twoContinentMap()
		m.Continents[1].TerritoryIDs = append(m.Continents[1].TerritoryIDs, 2)

		require.False(t, m.Validate())
		require.ErrorIs(t, m.ValidateErr(), ErrContinentMembership)
	})

	t.Run("territory in no continent is invalid", func(t *testing.T) {
		m := twoContinentMap()
		orphan := m.AddTerritory("orphan", -1)
		m.AddBorder(orphan.ID, 4)

		require.False(t, m.Validate())
		require.ErrorIs(t, m.ValidateErr(), ErrContinentMembership)
	})

	t.Run("one-sided adjacency is invalid", func(t *testing.T) {
		m := twoContinentMap()
		m.Territories[0].AdjacentIDs = append(m.Territories[0].AdjacentIDs, 4)

		require.ErrorIs(t, m.ValidateErr(), ErrAsymmetricBorder)
	})

	t.Run("empty map is invalid", func(t *testing.T) {
		require.ErrorIs(t, NewMap("empty").ValidateErr(), ErrEmptyMap)
	})

	t.Run("validation does not modify the map", func(t *testing.T) {
		m := twoContinentMap()
		before := m.Territories[2].AdjacentIDs

		require.True(t, m.Validate())
		require.True(t, m.Validate())
		require.Equal(t, before, m.Territories[2].AdjacentIDs)
		require.Equal(t, []int{0, 1, 2}, m.Continents[0].TerritoryIDs)
	})
}
