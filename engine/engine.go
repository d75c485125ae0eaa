package engine

import (
	"context"
	"errors"
	"fmt"

	"warzone/game"
	"warzone/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrInvalidMap             = errors.New("invalid map")
	ErrTooFewPlayers          = errors.New("need at least two players")
	ErrStrategyNeverCommitted = errors.New("strategy never committed")
)

// Phase is a stage of a game round.
type Phase int

const (
	StartupPhase Phase = iota
	ReinforcementPhase
	IssueOrdersPhase
	ExecuteOrdersPhase
	WinPhase
)

func (p Phase) String() string {
	switch p {
	case StartupPhase:
		return "startup"
	case ReinforcementPhase:
		return "reinforcement"
	case IssueOrdersPhase:
		return "issue orders"
	case ExecuteOrdersPhase:
		return "execute orders"
	case WinPhase:
		return "win"
	default:
		return "unknown"
	}
}

type Option func(e *Engine)

func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

func WithMaxRounds(rounds int) Option {
	return func(e *Engine) {
		if rounds > 0 {
			e.maxRounds = rounds
		}
	}
}

func WithStartingArmies(armies int) Option {
	return func(e *Engine) {
		if armies >= 0 {
			e.startingArmies = armies
		}
	}
}

func WithMaxIssueCalls(calls int) Option {
	return func(e *Engine) {
		if calls > 0 {
			e.maxIssueCalls = calls
		}
	}
}

// Engine runs the phase state machine over a game state. It is the only writer of the state and
// is not safe for concurrent use.
type Engine struct {
	State *game.GameState
	Phase Phase
	Round int

	rng            *rand.Rand
	observers      []Observer
	maxRounds      int
	startingArmies int
	maxIssueCalls  int
}

// New creates an engine. rng drives every random decision of the engine so that a fixed seed
// replays the same game.
func New(state *game.GameState, rng *rand.Rand, options ...Option) *Engine {
	e := &Engine{ // Default values
		State:          state,
		Phase:          StartupPhase,
		rng:            rng,
		maxRounds:      meta.MAX_ROUNDS,
		startingArmies: meta.STARTING_ARMIES,
		maxIssueCalls:  meta.MAX_ISSUE_CALLS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays a full game: startup, then rounds until a player wins, the round cap is reached or
// ctx is cancelled. A nil winner with a nil error is a draw.
func (e *Engine) Run(ctx context.Context) (*game.Player, error) {
	if err := e.Startup(); err != nil {
		return nil, err
	}

	for e.Round < e.maxRounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		winner, err := e.PlayRound()
		if err != nil {
			return nil, err
		}
		if winner != nil {
			log.Info().Msgf("%s wins after %d rounds", winner.Name, e.Round)
			return winner, nil
		}
	}

	log.Info().Msgf("stopped after %d rounds (no winner yet)", e.Round)
	return nil, nil
}

// PlayRound runs one reinforcement, issue and execute cycle and returns the winner, if any.
func (e *Engine) PlayRound() (*game.Player, error) {
	e.Round++
	e.Reinforcement()
	if err := e.IssueOrders(); err != nil {
		return nil, err
	}
	e.ExecuteOrders()

	if winner := e.Winner(); winner != nil {
		e.setPhase(WinPhase)
		return winner, nil
	}
	return nil, nil
}

// Winner returns the only player still owning territories, or nil.
func (e *Engine) Winner() *game.Player {
	return e.State.Winner()
}

// Startup validates the map, shuffles the turn order, deals territories round-robin and grants
// the starting armies.
func (e *Engine) Startup() error {
	e.setPhase(StartupPhase)
	gs := e.State

	if err := gs.Map.ValidateErr(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMap, err)
	}
	if len(gs.Players) < 2 {
		return ErrTooFewPlayers
	}

	e.rng.Shuffle(len(gs.Players), func(i, j int) {
		gs.Players[i], gs.Players[j] = gs.Players[j], gs.Players[i]
	})

	for id := range gs.Map.Territories {
		gs.SetOwner(id, gs.Players[id%len(gs.Players)].ID)
	}
	for _, p := range gs.Players {
		p.Reinforcements += e.startingArmies
		log.Debug().Str("player", p.Name).Int("territories", len(p.Territories)).Msg("dealt territories")
	}
	return nil
}

// Reinforcement clears last round's truces and grants each active player its reinforcements.
func (e *Engine) Reinforcement() {
	e.setPhase(ReinforcementPhase)
	for _, p := range e.State.Players {
		p.ClearTruces()
	}
	for _, p := range e.State.ActivePlayers() {
		p.Reinforcements += e.State.Reinforcements(p)
	}
}

// IssueOrders asks each active player's strategy for orders, one at a time, until it commits.
func (e *Engine) IssueOrders() error {
	e.setPhase(IssueOrdersPhase)
	for _, p := range e.State.ActivePlayers() {
		p.Committed = false
		calls := 0
		for !p.Committed {
			if calls == e.maxIssueCalls {
				log.Error().Str("player", p.Name).Str("strategy", p.Strategy.Name()).Msg("strategy did not commit")
				return fmt.Errorf("%w: %s (%s) after %d calls", ErrStrategyNeverCommitted, p.Name, p.Strategy.Name(), calls)
			}
			p.Strategy.IssueOrder(e.State, p)
			calls++
		}
	}
	return nil
}

// ExecuteOrders drains the queues round-robin: each pass takes the top order of every player in
// turn order, until all queues are empty.
func (e *Engine) ExecuteOrders() {
	e.setPhase(ExecuteOrdersPhase)
	gs := e.State
	for {
		progressed := false
		for _, p := range gs.Players {
			o, ok := p.Orders.PopTopOrder()
			if !ok {
				continue
			}
			progressed = true
			applied := o.Execute(gs, p)
			for _, obs := range e.observers {
				obs.OrderExecuted(e.Round, p, o, applied)
			}
		}
		if !progressed {
			break
		}
	}

	for _, p := range gs.Players {
		if card, ok := gs.AwardCardIfEligible(p); ok {
			log.Debug().Str("player", p.Name).Stringer("card", card).Msg("card awarded")
		}
	}
	gs.ResetReservations()
}

func (e *Engine) setPhase(phase Phase) {
	e.Phase = phase
	log.Debug().Int("round", e.Round).Stringer("phase", phase).Msg("phase")
	for _, obs := range e.observers {
		obs.PhaseChanged(e.Round, phase)
	}
}
