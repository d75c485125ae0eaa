// Package tournament plays batches of games between strategies across several maps.
package tournament

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warzone/engine"
	"warzone/game"
	"warzone/maploader"
	"warzone/strategy"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrInvalidTournament = errors.New("invalid tournament")

// Draw is recorded as the winner of a game that reached the round cap.
const Draw = "draw"

type Config struct {
	Maps       []string // Embedded map names or file paths
	Strategies []string // One player per strategy
	Games      int      // Per map
	MaxRounds  int      // Per game
	Seed       uint64
}

// Validate enforces the tournament limits: 1-5 maps, 2-4 strategies, 1-5 games, 10-50 rounds.
func (c Config) Validate() error {
	switch {
	case len(c.Maps) < 1 || len(c.Maps) > 5:
		return fmt.Errorf("%w: %d maps, want 1-5", ErrInvalidTournament, len(c.Maps))
	case len(c.Strategies) < 2 || len(c.Strategies) > 4:
		return fmt.Errorf("%w: %d strategies, want 2-4", ErrInvalidTournament, len(c.Strategies))
	case c.Games < 1 || c.Games > 5:
		return fmt.Errorf("%w: %d games, want 1-5", ErrInvalidTournament, c.Games)
	case c.MaxRounds < 10 || c.MaxRounds > 50:
		return fmt.Errorf("%w: %d rounds, want 10-50", ErrInvalidTournament, c.MaxRounds)
	}
	for _, name := range c.Strategies {
		if _, err := strategy.New(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTournament, err)
		}
	}
	return nil
}

type GameRecord struct {
	ID        string
	Map       string
	Game      int    // 1-based within the map
	Winner    string // Strategy name of the winner, or Draw
	Leader    string // Best placed strategy when the game is a draw
	Rounds    int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Run plays every game of the tournament sequentially and returns one record per game.
func Run(ctx context.Context, cfg Config) ([]GameRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	records := []GameRecord{}
	log.Info().Msgf("starting tournament: %d maps, %d games each", len(cfg.Maps), cfg.Games)

	for mi, mapName := range cfg.Maps {
		for i := 0; i < cfg.Games; i++ {
			log.Info().Msgf("starting map %d of %d (%s) game %d of %d...", mi+1, len(cfg.Maps), mapName, i+1, cfg.Games)

			seed := cfg.Seed + uint64(mi*cfg.Games+i)
			record, err := runGame(ctx, mapName, cfg, seed)
			if err != nil {
				return records, fmt.Errorf("map %s game %d: %w", mapName, i+1, err)
			}
			record.Game = i + 1
			records = append(records, record)

			log.Info().Msgf("completed map %s game %d with winner: %s", mapName, i+1, record.Winner)
		}
	}

	log.Info().Msg("completed tournament")
	return records, nil
}

// runGame plays a single game and returns its record
func runGame(ctx context.Context, mapName string, cfg Config, seed uint64) (GameRecord, error) {
	m, err := maploader.Load(mapName)
	if err != nil {
		return GameRecord{}, err
	}

	seats := make([]engine.Seat, 0, len(cfg.Strategies))
	for _, name := range cfg.Strategies {
		s, err := strategy.New(name)
		if err != nil {
			return GameRecord{}, err
		}
		seats = append(seats, engine.Seat{Name: name, Strategy: s})
	}

	rng := rand.New(rand.NewSource(seed))
	gs := engine.NewGame(m, seats, rng)
	e := engine.New(gs, rng, engine.WithMaxRounds(cfg.MaxRounds))

	record := GameRecord{
		ID:        uuid.NewString(),
		Map:       m.Name,
		StartTime: time.Now(),
	}
	winner, err := e.Run(ctx)
	if err != nil {
		return GameRecord{}, err
	}
	record.EndTime = time.Now()
	record.Duration = record.EndTime.Sub(record.StartTime)
	record.Rounds = e.Round

	record.Winner = Draw
	if winner != nil {
		record.Winner = winner.Name
		record.Leader = winner.Name
	} else if leader := game.Leader(gs); leader != nil {
		record.Leader = leader.Name
	}
	return record, nil
}
