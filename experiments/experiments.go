package experiments

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"trios/engine"
	"trios/experiments/metrics"
	"trios/game"
	"trios/player"
	"trios/strategy"

	"github.com/rs/zerolog/log"
)

type Config struct {
	CardsPath  string
	BoardPath  string
	Strategies []string
	Games      int    // Per matchup
	Seed       uint64 // Game i of every matchup deals from Seed+i
	Rules      game.Rules
	OutputDir  string // Records are skipped when empty
}

type Standing struct {
	Strategy string
	Wins     int
	Losses   int
	Ties     int
}

type Result struct {
	Standings []Standing // Most wins first
	Dir       string     // Where records were written
}

// RunTournament plays every ordered pair of distinct strategies against each other.
func RunTournament(cfg Config) (Result, error) {
	if len(cfg.Strategies) < 2 {
		return Result{}, fmt.Errorf("%w: a tournament needs at least two strategies", game.ErrInvalidArgument)
	}
	if cfg.Games <= 0 {
		return Result{}, fmt.Errorf("%w: games per matchup must be positive", game.ErrInvalidArgument)
	}
	for _, name := range cfg.Strategies {
		if _, err := strategy.New(name); err != nil {
			return Result{}, err
		}
	}
	cards, err := os.ReadFile(cfg.CardsPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read card config: %w", err)
	}
	board, err := os.ReadFile(cfg.BoardPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read board config: %w", err)
	}

	matchUps := [][2]string{}
	for _, red := range cfg.Strategies {
		for _, blue := range cfg.Strategies {
			if red != blue {
				matchUps = append(matchUps, [2]string{red, blue})
			}
		}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	standings := map[string]*Standing{}
	for _, s := range cfg.Strategies {
		standings[s] = &Standing{Strategy: s}
	}

	log.Info().Msgf("starting tournament with %d matchups of %d games...", len(matchUps), cfg.Games)

	for mi, matchUp := range matchUps {
		red, blue := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between red=%s and blue=%s...", mi+1, len(matchUps), red, blue)

		for i := 0; i < cfg.Games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(cards, board, red, blue, cfg.Seed+uint64(i), cfg.Rules)
			if err != nil {
				return Result{}, fmt.Errorf("matchup %s vs %s game %d: %w", red, blue, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Red:        red,
				Blue:       blue,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch winner {
			case game.Red:
				standings[red].Wins++
				standings[blue].Losses++
			case game.Blue:
				standings[blue].Wins++
				standings[red].Losses++
			default:
				standings[red].Ties++
				standings[blue].Ties++
			}
			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	result := Result{}
	for _, s := range cfg.Strategies {
		result.Standings = append(result.Standings, *standings[s])
	}
	sort.SliceStable(result.Standings, func(i, j int) bool {
		return result.Standings[i].Wins > result.Standings[j].Wins
	})

	if cfg.OutputDir == "" {
		return result, nil
	}
	writer, err := metrics.NewWriter(cfg.OutputDir, "tournament")
	if err != nil {
		return result, fmt.Errorf("failed to create tournament writer: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return result, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return result, err
	}
	log.Info().Msg("stored move records")
	result.Dir = writer.Dir()
	return result, nil
}

// runGame plays a single game between two strategies and returns the winner
func runGame(cards, board []byte, red, blue string, seed uint64, rules game.Rules) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	options := []game.Option{game.WithSeed(seed)}
	if rules != nil {
		options = append(options, game.WithRules(rules))
	}
	state := game.NewGameState(options...)
	if err := state.Start(bytes.NewReader(cards), bytes.NewReader(board)); err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}

	redPlayer, err := player.New(red, game.Red, nil, nil, metrics.NewCollector())
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}
	bluePlayer, err := player.New(blue, game.Blue, nil, nil, metrics.NewCollector())
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}

	e, err := engine.NewLocalEngine(state, redPlayer, bluePlayer)
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}
	return e.Run()
}
