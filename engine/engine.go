package engine

import (
	"trios/experiments/metrics"
	"trios/game"
)

type Engine interface {
	// Run plays the match until every card cell is filled
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
