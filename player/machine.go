package player

import (
	"fmt"

	"trios/experiments/metrics"
	"trios/game"
	"trios/strategy"
)

// Machine plays whatever its strategy decides.
type Machine struct {
	color    game.Player
	strategy strategy.Strategy
	metrics  metrics.Collector
	last     metrics.DecisionMetric
}

// NewMachine wraps s. The collector should be the one s reports into; nil disables metrics.
func NewMachine(color game.Player, s strategy.Strategy, collector metrics.Collector) *Machine {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &Machine{
		color:    color,
		strategy: s,
		metrics:  collector,
	}
}

func (m *Machine) Name() string       { return m.strategy.Name() }
func (m *Machine) Color() game.Player { return m.color }
func (m *Machine) IsHuman() bool      { return false }

func (m *Machine) ChooseMove(v game.View) (game.Move, error) {
	m.metrics.Start(m.strategy.Name())
	move, ok, err := strategy.Decide(m.strategy, v, m.color)
	m.last = m.metrics.Complete()
	if err != nil {
		return game.Move{}, err
	}
	if !ok {
		return game.Move{}, fmt.Errorf("%w: %s found no move", game.ErrIllegalState, m.strategy.Name())
	}
	return move, nil
}

func (m *Machine) LastDecision() metrics.DecisionMetric {
	return m.last
}
