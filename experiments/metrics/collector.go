package metrics

import (
	"sync/atomic"
	"time"
)

// DecisionMetric describes how one strategy reached one move.
type DecisionMetric struct {
	Strategy    string
	Duration    time.Duration
	Simulations int // Potential-flip simulations run
	Candidates  int // (card, position) pairs considered
}

type MoveMetric struct {
	Step       int
	Player     string
	Card       string
	Row        int
	Col        int
	Flips      int
	Evaluation float64 // Mover's evaluation after the move
	DecisionMetric
}

type GameMetric struct {
	MatchID        string
	Red            string // Player name
	Blue           string // Player name
	StartingPlayer string
	Winner         string
	FinalScore     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(strategy string)
	AddSimulation()
	AddCandidate()
	Complete() DecisionMetric
}

type collector struct {
	strategy    string
	startTime   time.Time
	simulations atomic.Int32
	candidates  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.simulations.Store(0)
	m.candidates.Store(0)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) Complete() DecisionMetric {
	return DecisionMetric{
		Strategy:    m.strategy,
		Duration:    time.Since(m.startTime),
		Simulations: int(m.simulations.Load()),
		Candidates:  int(m.candidates.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(string)   {}
func (m *dummyCollector) AddSimulation() {}
func (m *dummyCollector) AddCandidate()  {}

func (m *dummyCollector) Complete() DecisionMetric {
	return DecisionMetric{}
}
