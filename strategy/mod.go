package strategy

import (
	"fmt"
	"sort"
	"strings"

	"trios/experiments/metrics"
	"trios/game"

	"golang.org/x/exp/slices"
)

// Strategy picks moves from a read-only view. Implementations never mutate the view.
type Strategy interface {
	Name() string
	// ChooseCard returns false when there is nothing to choose.
	ChooseCard(v game.View, p game.Player) (game.Card, bool, error)
	// ChoosePosition returns false when no position is legal.
	ChoosePosition(v game.View, card game.Card, p game.Player) (game.Position, bool, error)
}

type Option func(*options)

type options struct {
	metrics metrics.Collector
}

// WithMetrics counts simulations and candidates into c.
func WithMetrics(c metrics.Collector) Option {
	return func(o *options) {
		if c != nil {
			o.metrics = c
		}
	}
}

func newOptions(opts []Option) options {
	o := options{metrics: metrics.NewDummyCollector()}
	for _, option := range opts {
		option(&o)
	}
	return o
}

var registry = map[string]func(...Option) Strategy{
	"corner":     func(o ...Option) Strategy { return NewCorner(o...) },
	"maxflip":    func(o ...Option) Strategy { return NewMaxFlip(o...) },
	"hardtoflip": func(o ...Option) Strategy { return NewHardToFlip(o...) },
}

var aliases = map[string]string{
	"strategy1": "corner",
	"strategy2": "maxflip",
	"strategy3": "hardtoflip",
}

// New builds a strategy by name. Names are case-insensitive.
func New(name string, opts ...Option) (Strategy, error) {
	key := strings.ToLower(name)
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	build, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown strategy %q", game.ErrInvalidArgument, name)
	}
	return build(opts...), nil
}

// Names lists the registered strategies.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decide asks s for a card and then a position for it.
func Decide(s Strategy, v game.View, p game.Player) (game.Move, bool, error) {
	card, ok, err := s.ChooseCard(v, p)
	if err != nil || !ok {
		return game.Move{}, false, err
	}
	pos, ok, err := s.ChoosePosition(v, card, p)
	if err != nil || !ok {
		return game.Move{}, false, err
	}
	return game.Move{Card: card, Position: pos}, true, nil
}

// Execute decides a move for p and plays it on state.
func Execute(s Strategy, state game.Playable, p game.Player) (game.Move, error) {
	if state == nil {
		return game.Move{}, fmt.Errorf("%w: no game", game.ErrInvalidArgument)
	}
	move, ok, err := Decide(s, state, p)
	if err != nil {
		return game.Move{}, err
	}
	if !ok {
		return game.Move{}, fmt.Errorf("%w: %s has no move for %s", game.ErrIllegalState, s.Name(), p)
	}
	if err := state.PlayCard(move.Card, move.Position.Row, move.Position.Col); err != nil {
		return game.Move{}, err
	}
	return move, nil
}

func validate(v game.View, p game.Player) error {
	if v == nil {
		return fmt.Errorf("%w: no game", game.ErrInvalidArgument)
	}
	if p != game.Red && p != game.Blue {
		return fmt.Errorf("%w: no player", game.ErrInvalidArgument)
	}
	if !v.IsStarted() {
		return fmt.Errorf("%w: game has not started", game.ErrIllegalState)
	}
	if v.IsGameOver() {
		return fmt.Errorf("%w: game is over", game.ErrIllegalState)
	}
	return nil
}

func validateCard(v game.View, card game.Card, p game.Player) error {
	if err := validate(v, p); err != nil {
		return err
	}
	if card.IsZero() {
		return fmt.Errorf("%w: no card", game.ErrInvalidArgument)
	}
	return nil
}

// legalMoves returns the view's legal positions, uppermost then leftmost.
func legalMoves(v game.View) ([]game.Position, error) {
	moves, err := v.LegalMoves()
	if err != nil {
		return nil, err
	}
	moves = slices.Clone(moves)
	slices.SortFunc(moves, game.Position.Compare)
	return moves, nil
}
