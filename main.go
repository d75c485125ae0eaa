package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"warzone/config"
	"warzone/engine"
	"warzone/logger"
	"warzone/maploader"
	"warzone/strategy"
	"warzone/tournament"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "", "YAML game config (defaults to a two-player game)")
	mapName := flag.String("map", "", "Embedded map name or map file path, overrides the config")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the config when non-zero")
	verbose := flag.Bool("v", false, "Log every phase and order")
	runTournament := flag.Bool("tournament", false, "Run a tournament instead of a single game")
	maps := flag.String("maps", strings.Join(maploader.Embedded(), ","), "Tournament maps, comma separated")
	strategies := flag.String("strategies", "aggressive,benevolent", "Tournament strategies, comma separated")
	games := flag.Int("games", 2, "Tournament games per map")
	rounds := flag.Int("rounds", 30, "Tournament rounds per game")
	out := flag.String("out", "results", "Tournament output directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	logger.Init(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *mapName != "" {
		cfg.Map = *mapName
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *runTournament {
		tc := tournament.Config{
			Maps:       strings.Split(*maps, ","),
			Strategies: strings.Split(*strategies, ","),
			Games:      *games,
			MaxRounds:  *rounds,
			Seed:       cfg.Seed,
		}
		if err := playTournament(ctx, tc, *out); err != nil {
			log.Fatal().Err(err).Msg("tournament failed")
		}
		return
	}

	observerLevel := zerolog.DebugLevel
	if *verbose {
		observerLevel = zerolog.InfoLevel
	}
	if err := playGame(ctx, cfg, observerLevel); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func playGame(ctx context.Context, cfg config.Config, observerLevel zerolog.Level) error {
	m, err := maploader.Load(cfg.Map)
	if err != nil {
		return err
	}

	seats := make([]engine.Seat, 0, len(cfg.Players))
	for _, p := range cfg.Players {
		s, err := strategy.New(p.Strategy)
		if err != nil {
			return err
		}
		seats = append(seats, engine.Seat{Name: p.Name, Strategy: s})
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	var deckRng *rand.Rand
	if cfg.Cards {
		deckRng = rng
	}
	gs := engine.NewGame(m, seats, deckRng)
	e := engine.New(gs, rng,
		engine.WithMaxRounds(cfg.MaxRounds),
		engine.WithStartingArmies(cfg.StartingArmies),
		engine.WithObserver(engine.LogObserver{Level: observerLevel}),
	)

	log.Info().Msgf("playing %s with %d players (seed %d)", m.Name, len(seats), cfg.Seed)
	winner, err := e.Run(ctx)
	if err != nil {
		return err
	}
	if winner == nil {
		log.Info().Msgf("game ended in a draw after %d rounds", e.Round)
	}
	return nil
}

func playTournament(ctx context.Context, cfg tournament.Config, out string) error {
	records, err := tournament.Run(ctx, cfg)
	if err != nil {
		return err
	}

	writer, err := tournament.NewWriter(out)
	if err != nil {
		return err
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteSummary(records, cfg.Games); err != nil {
		return err
	}
	log.Info().Msgf("stored summary in %s", writer.Dir())
	return nil
}
