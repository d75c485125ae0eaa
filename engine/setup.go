package engine

import (
	"warzone/game"
	"warzone/meta"

	"golang.org/x/exp/rand"
)

// Seat describes one player to seat at a new game.
type Seat struct {
	Name     string
	Strategy game.Strategy
}

// NewGame builds a state for m with one player per seat. Player IDs follow seat order; the
// turn order is decided later by Startup. A nil rng disables the card deck.
func NewGame(m *game.Map, seats []Seat, rng *rand.Rand) *game.GameState {
	gs := game.NewGameState(m)
	for i, seat := range seats {
		gs.AddPlayer(game.NewPlayer(i, seat.Name, seat.Strategy))
	}
	if rng != nil {
		gs.Deck = game.NewDeck(meta.DECK_COPIES, rng)
	}
	return gs
}
