package engine

import (
	"warzone/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Observer is notified of engine progress. Implementations must not mutate the game state.
type Observer interface {
	PhaseChanged(round int, phase Phase)
	OrderExecuted(round int, p *game.Player, o game.Order, applied bool)
}

// LogObserver reports engine progress through zerolog.
type LogObserver struct {
	Level zerolog.Level
}

func (l LogObserver) PhaseChanged(round int, phase Phase) {
	log.WithLevel(l.Level).Int("round", round).Msgf("entering %s phase", phase)
}

func (l LogObserver) OrderExecuted(round int, p *game.Player, o game.Order, applied bool) {
	event := log.WithLevel(l.Level).Int("round", round).Str("player", p.Name).Stringer("order", o)
	if !applied {
		event.Msg("order dropped")
		return
	}
	event.Msg("order executed")
}
