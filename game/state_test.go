package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestGame seats two players on twoContinentMap: alice owns West, bob owns East.
func newTestGame() (*GameState, *Player, *Player) {
	alice := NewPlayer(1, "alice", nil)
	bob := NewPlayer(2, "bob", nil)
	gs := NewGameState(twoContinentMap(), alice, bob)
	for _, id := range []int{0, 1, 2} {
		gs.SetOwner(id, alice.ID)
	}
	for _, id := range []int{3, 4} {
		gs.SetOwner(id, bob.ID)
	}
	return gs, alice, bob
}

// requireExclusiveOwnership checks that no territory is in two owned sets and that the owned
// sets agree with the ownership table.
func requireExclusiveOwnership(t *testing.T, gs *GameState) {
	t.Helper()
	for id := range gs.Map.Territories {
		holders := 0
		for _, p := range gs.Players {
			if p.Owns(id) {
				holders++
				require.Equal(t, p.ID, gs.Ownership[id], "territory %d", id)
			}
		}
		require.LessOrEqual(t, holders, 1, "territory %d held by %d players", id, holders)
		if gs.Ownership[id] == Neutral {
			require.Zero(t, holders, "neutral territory %d is held", id)
		}
	}
}

func TestNewGameState(t *testing.T) {
	gs := NewGameState(twoContinentMap())

	require.Len(t, gs.Armies, 5)
	for id := range gs.Map.Territories {
		require.Equal(t, Neutral, gs.Ownership[id])
		require.Nil(t, gs.Owner(id))
	}
}

func TestSetOwner(t *testing.T) {
	t.Run("transfer moves the territory between owned sets", func(t *testing.T) {
		gs, alice, bob := newTestGame()

		gs.SetOwner(2, bob.ID)

		require.False(t, alice.Owns(2))
		require.True(t, bob.Owns(2))
		require.Equal(t, bob, gs.Owner(2))
		requireExclusiveOwnership(t, gs)
	})

	t.Run("neutral removes the territory from its owner", func(t *testing.T) {
		gs, alice, _ := newTestGame()

		gs.SetOwner(0, Neutral)

		require.False(t, alice.Owns(0))
		require.Nil(t, gs.Owner(0))
		requireExclusiveOwnership(t, gs)
	})

	t.Run("unknown player means neutral", func(t *testing.T) {
		gs, alice, _ := newTestGame()

		gs.SetOwner(0, 77)

		require.False(t, alice.Owns(0))
		require.Equal(t, Neutral, gs.Ownership[0])
	})
}

func TestMovableArmies(t *testing.T) {
	t.Run("counts reservations", func(t *testing.T) {
		gs, _, _ := newTestGame()
		gs.Armies[0] = 5
		gs.ReserveIncoming(0, 3)
		gs.ReserveOutgoing(0, 2)

		require.Equal(t, 6, gs.MovableArmies(0))
	})

	t.Run("never negative", func(t *testing.T) {
		gs, _, _ := newTestGame()
		gs.Armies[0] = 1
		gs.ReserveOutgoing(0, 4)

		require.Equal(t, 0, gs.MovableArmies(0))
	})

	t.Run("reset clears reservations", func(t *testing.T) {
		gs, _, _ := newTestGame()
		gs.Armies[0] = 1
		gs.ReserveIncoming(0, 4)
		gs.ReserveOutgoing(1, 4)

		gs.ResetReservations()

		require.Equal(t, 1, gs.MovableArmies(0))
		require.Zero(t, gs.PendingOutgoing[1])
	})
}

func TestReinforcements(t *testing.T) {
	t.Run("nine territories without a continent earns three", func(t *testing.T) {
		m := NewMap("line")
		c1 := m.AddContinent("one", 5)
		c2 := m.AddContinent("two", 5)
		for i := 0; i < 10; i++ {
			m.AddTerritory("t", c1.ID)
		}
		for i := 0; i < 2; i++ {
			m.AddTerritory("u", c2.ID)
		}
		for i := 1; i < len(m.Territories); i++ {
			m.AddBorder(i-1, i)
		}
		p := NewPlayer(1, "p", nil)
		other := NewPlayer(2, "o", nil)
		gs := NewGameState(m, p, other)
		for id := 0; id < 9; id++ {
			gs.SetOwner(id, p.ID)
		}
		for id := 9; id < 12; id++ {
			gs.SetOwner(id, other.ID)
		}

		require.Equal(t, 3, gs.Reinforcements(p))
	})

	t.Run("continent bonus is added for full continents", func(t *testing.T) {
		gs, alice, bob := newTestGame()

		require.Equal(t, 3+2, gs.Reinforcements(alice))
		require.Equal(t, 3+3, gs.Reinforcements(bob))
	})

	t.Run("bonus lost when one territory is missing", func(t *testing.T) {
		gs, alice, bob := newTestGame()
		gs.SetOwner(4, alice.ID)

		require.Equal(t, 3+2, gs.Reinforcements(alice))
		require.Equal(t, 3, gs.Reinforcements(bob))
	})

	t.Run("large holdings earn a third of the territories", func(t *testing.T) {
		m := NewMap("big")
		c := m.AddContinent("all", 0)
		for i := 0; i < 15; i++ {
			m.AddTerritory("t", c.ID)
			if i > 0 {
				m.AddBorder(i-1, i)
			}
		}
		p := NewPlayer(1, "p", nil)
		gs := NewGameState(m, p)
		for id := 0; id < 15; id++ {
			gs.SetOwner(id, p.ID)
		}

		require.Equal(t, 5, gs.Reinforcements(p))
	})

	t.Run("eliminated player earns nothing", func(t *testing.T) {
		gs, _, _ := newTestGame()

		require.Zero(t, gs.Reinforcements(NewPlayer(9, "ghost", nil)))
	})
}

func TestWinner(t *testing.T) {
	t.Run("no winner while two players hold territory", func(t *testing.T) {
		gs, _, _ := newTestGame()

		require.Nil(t, gs.Winner())
	})

	t.Run("last player holding territory wins", func(t *testing.T) {
		gs, alice, _ := newTestGame()
		gs.SetOwner(3, alice.ID)
		gs.SetOwner(4, Neutral)

		require.Equal(t, alice, gs.Winner())
	})
}
