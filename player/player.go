package player

import (
	"fmt"
	"io"
	"strings"

	"trios/experiments/metrics"
	"trios/game"
	"trios/strategy"
)

// Player chooses moves for one side of a match. Human and strategy-driven
// players share this contract.
type Player interface {
	Name() string
	Color() game.Player
	IsHuman() bool
	ChooseMove(v game.View) (game.Move, error)
}

// Reporter is implemented by players that measure how they decided.
type Reporter interface {
	LastDecision() metrics.DecisionMetric
}

const Human = "human"

// New builds a player of the given kind: "human" or a strategy name.
// Humans read moves from in and write prompts to out.
func New(kind string, color game.Player, in io.Reader, out io.Writer, collector metrics.Collector) (Player, error) {
	if color != game.Red && color != game.Blue {
		return nil, fmt.Errorf("%w: player color %s", game.ErrInvalidArgument, color)
	}
	if strings.EqualFold(kind, Human) {
		h, err := NewHuman(color, in, out)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
	s, err := strategy.New(kind, strategy.WithMetrics(collector))
	if err != nil {
		return nil, err
	}
	return NewMachine(color, s, collector), nil
}
