package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"trios/config"
	"trios/engine"
	"trios/experiments"
	"trios/experiments/metrics"
	"trios/game"
	"trios/player"
	"trios/textview"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		fmt.Fprintln(os.Stderr, "Player types: human, strategy1, strategy2, strategy3")
		os.Exit(1)
	}
	if err := cfg.Log.Setup(os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rules, err := game.RulesByName(cfg.Rules)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid rules")
	}

	switch cfg.Mode {
	case config.ModeTournament:
		err = runTournament(cfg, seed, rules)
	default:
		err = runMatch(cfg, seed, rules)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Mode)
	}
}

func runMatch(cfg *config.Config, seed uint64, rules game.Rules) error {
	state := game.NewGameState(game.WithSeed(seed), game.WithRules(rules))
	if err := state.StartFromFiles(cfg.Cards, cfg.Board); err != nil {
		return err
	}
	log.Info().Msgf("dealt with seed %d", seed)

	// Both humans share stdin
	in := bufio.NewReader(os.Stdin)
	red, err := player.New(cfg.Red, game.Red, in, os.Stdout, metrics.NewCollector())
	if err != nil {
		return err
	}
	blue, err := player.New(cfg.Blue, game.Blue, in, os.Stdout, metrics.NewCollector())
	if err != nil {
		return err
	}

	e, err := engine.NewLocalEngine(state, red, blue, engine.WithOutput(os.Stdout))
	if err != nil {
		return err
	}
	if _, _, _, err := e.Run(); err != nil {
		return err
	}
	return textview.Render(os.Stdout, state)
}

func runTournament(cfg *config.Config, seed uint64, rules game.Rules) error {
	result, err := experiments.RunTournament(experiments.Config{
		CardsPath:  cfg.Cards,
		BoardPath:  cfg.Board,
		Strategies: cfg.Tournament.Strategies,
		Games:      cfg.Tournament.Games,
		Seed:       seed,
		Rules:      rules,
		OutputDir:  cfg.Tournament.Output,
	})
	if err != nil {
		return err
	}
	for _, s := range result.Standings {
		fmt.Printf("%-12s %3d wins %3d losses %3d ties\n", s.Strategy, s.Wins, s.Losses, s.Ties)
	}
	log.Info().Msgf("records written to %s", result.Dir)
	return nil
}
