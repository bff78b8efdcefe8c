package strategy

import (
	"trios/game"

	"github.com/rs/zerolog/log"
)

// MaxFlip simulates every legal (position, card) pair and plays the one that
// captures the most cards.
type MaxFlip struct {
	options
}

func NewMaxFlip(opts ...Option) *MaxFlip {
	return &MaxFlip{options: newOptions(opts)}
}

func (s *MaxFlip) Name() string { return "maxflip" }

func (s *MaxFlip) ChooseCard(v game.View, p game.Player) (game.Card, bool, error) {
	if err := validate(v, p); err != nil {
		return game.Card{}, false, err
	}
	hand, err := v.Hand(p)
	if err != nil {
		return game.Card{}, false, err
	}
	moves, err := legalMoves(v)
	if err != nil {
		return game.Card{}, false, err
	}
	if len(hand) == 0 || len(moves) == 0 {
		return game.Card{}, false, nil
	}

	best, bestFlips := 0, -1
	for _, pos := range moves {
		for i, card := range hand {
			flips, err := s.flips(v, card, pos)
			if err != nil {
				return game.Card{}, false, err
			}
			if flips > bestFlips {
				best, bestFlips = i, flips
			}
		}
	}
	log.Debug().Msgf("maxflip strategy picked %s for %d flips", hand[best].Name, bestFlips)
	return hand[best], true, nil
}

func (s *MaxFlip) ChoosePosition(v game.View, card game.Card, p game.Player) (game.Position, bool, error) {
	if err := validateCard(v, card, p); err != nil {
		return game.Position{}, false, err
	}
	moves, err := legalMoves(v)
	if err != nil || len(moves) == 0 {
		return game.Position{}, false, err
	}

	best, bestFlips := moves[0], -1
	for _, pos := range moves {
		flips, err := s.flips(v, card, pos)
		if err != nil {
			return game.Position{}, false, err
		}
		if flips > bestFlips {
			best, bestFlips = pos, flips
		}
	}
	return best, true, nil
}

func (s *MaxFlip) flips(v game.View, card game.Card, pos game.Position) (int, error) {
	s.metrics.AddCandidate()
	s.metrics.AddSimulation()
	return v.PotentialFlips(card, pos.Row, pos.Col)
}
