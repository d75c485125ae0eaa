package strategy

import (
	"warzone/game"

	"github.com/rs/zerolog/log"
)

// Neutral never issues orders.
type Neutral struct{}

func (*Neutral) Name() string { return "neutral" }

func (*Neutral) ToDefend(_ *game.GameState, p *game.Player) []int {
	return p.OwnedIDs()
}

func (*Neutral) ToAttack(*game.GameState, *game.Player) []int {
	return []int{}
}

func (*Neutral) IssueOrder(_ *game.GameState, p *game.Player) {
	p.Committed = true
}

// Prompter supplies orders chosen interactively. NextOrder returns false when the player is done
// for the round.
type Prompter interface {
	NextOrder(gs *game.GameState, p *game.Player) (game.Order, bool)
}

// Human delegates every decision to a Prompter.
type Human struct {
	Prompter Prompter
}

func (*Human) Name() string { return "human" }

func (*Human) ToDefend(_ *game.GameState, p *game.Player) []int {
	return p.OwnedIDs()
}

func (*Human) ToAttack(gs *game.GameState, p *game.Player) []int {
	return attackTargets(gs, p)
}

// IssueOrder queues the prompted order. Bomb, blockade, airlift and negotiate orders spend the
// matching card and are dropped when the player does not hold it.
func (h *Human) IssueOrder(gs *game.GameState, p *game.Player) {
	o, ok := h.Prompter.NextOrder(gs, p)
	if !ok {
		p.Committed = true
		return
	}

	switch o.Kind {
	case game.Deploy, game.Advance:
		issue(gs, p, o)
	default:
		card, ok := cardFor(o.Kind)
		if !ok {
			return
		}
		if err := p.PlayCard(card, o); err != nil {
			log.Warn().Err(err).Str("player", p.Name).Stringer("order", o).Msg("order rejected")
			return
		}
		reserve(gs, p, o)
	}
}

func cardFor(kind game.OrderKind) (game.CardType, bool) {
	for _, card := range []game.CardType{game.BombCard, game.BlockadeCard, game.AirliftCard, game.DiplomacyCard} {
		if card.OrderKind() == kind {
			return card, true
		}
	}
	return 0, false
}

// Script is a Prompter replaying a fixed list of orders, one per call.
type Script struct {
	Orders []game.Order
}

func (s *Script) NextOrder(*game.GameState, *game.Player) (game.Order, bool) {
	if len(s.Orders) == 0 {
		return game.Order{}, false
	}
	o := s.Orders[0]
	s.Orders = s.Orders[1:]
	return o, true
}
