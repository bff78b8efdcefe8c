package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"trios/experiments/metrics"
	"trios/game"
	"trios/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(*LocalEngine)

// WithEvaluationFn sets how each move's resulting position is scored in move metrics.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *LocalEngine) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

// WithOutput sets where the match result is announced.
func WithOutput(out io.Writer) Option {
	return func(e *LocalEngine) {
		if out != nil {
			e.out = out
		}
	}
}

// LocalEngine drives two players against one in-process game state.
type LocalEngine struct {
	ID       uuid.UUID
	State    *game.GameState
	Players  map[game.Player]player.Player
	evaluate game.Evaluate
	out      io.Writer
}

// NewLocalEngine takes a started state and one player per color.
func NewLocalEngine(state *game.GameState, red, blue player.Player, options ...Option) (*LocalEngine, error) {
	if state == nil || red == nil || blue == nil {
		return nil, fmt.Errorf("%w: engine needs a game and two players", game.ErrInvalidArgument)
	}
	if !state.IsStarted() {
		return nil, fmt.Errorf("%w: game has not started", game.ErrIllegalState)
	}
	if red.Color() != game.Red || blue.Color() != game.Blue {
		return nil, fmt.Errorf("%w: players are seated on the wrong colors", game.ErrInvalidArgument)
	}

	e := &LocalEngine{
		ID:       uuid.New(),
		State:    state,
		Players:  map[game.Player]player.Player{game.Red: red, game.Blue: blue},
		evaluate: game.EvaluateScore,
		out:      io.Discard,
	}
	for _, option := range options {
		option(e)
	}
	state.AddListener(newAnnouncer(e.ID, e.out))
	return e, nil
}

// Run executes the entire game loop until the board is full. Players only
// ever see a copy of the state. Illegal moves from humans are retried.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	startTime := time.Now()
	starting, err := e.State.CurrentPlayer()
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}
	log.Info().Msgf("match %s: %s (RED) vs %s (BLUE), %s is starting", e.ID, e.Players[game.Red].Name(), e.Players[game.Blue].Name(), starting)

	var moveMetrics []metrics.MoveMetric
	for !e.State.IsGameOver() {
		current, err := e.State.CurrentPlayer()
		if err != nil {
			return game.None, metrics.GameMetric{}, moveMetrics, err
		}
		p := e.Players[current]

		move, err := p.ChooseMove(e.State.Copy())
		if err != nil {
			return game.None, metrics.GameMetric{}, moveMetrics, fmt.Errorf("%s failed to choose a move: %w", current, err)
		}

		flips, _ := e.State.PotentialFlips(move.Card, move.Position.Row, move.Position.Col)
		err = e.State.PlayCard(move.Card, move.Position.Row, move.Position.Col)
		if err != nil {
			if p.IsHuman() && errors.Is(err, game.ErrIllegalMove) {
				log.Warn().Msgf("match %s: rejected %s from %s: %v", e.ID, move, current, err)
				continue
			}
			return game.None, metrics.GameMetric{}, moveMetrics, fmt.Errorf("%s played %s: %w", current, move, err)
		}

		metric := metrics.MoveMetric{
			Step:       len(moveMetrics) + 1,
			Player:     current.String(),
			Card:       move.Card.Name,
			Row:        move.Position.Row,
			Col:        move.Position.Col,
			Flips:      flips,
			Evaluation: -e.evaluate(e.State), // The opponent is now to move
		}
		if r, ok := p.(player.Reporter); ok {
			metric.DecisionMetric = r.LastDecision()
		} else {
			metric.Strategy = p.Name()
		}
		moveMetrics = append(moveMetrics, metric)
		log.Debug().Msgf("match %s: %s played %s capturing %d", e.ID, current, move, flips)
	}

	winner, err := e.State.Winner()
	if err != nil {
		return game.None, metrics.GameMetric{}, moveMetrics, err
	}
	finalScore, _ := e.State.FinalScore()
	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		MatchID:        e.ID.String(),
		Red:            e.Players[game.Red].Name(),
		Blue:           e.Players[game.Blue].Name(),
		StartingPlayer: starting.String(),
		Winner:         winner.String(),
		FinalScore:     finalScore,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     len(moveMetrics),
	}
	log.Info().Msgf("match %s: winner %s with %d after %d moves", e.ID, winner, finalScore, len(moveMetrics))
	return winner, gameMetric, moveMetrics, nil
}

var _ Engine = (*LocalEngine)(nil)
