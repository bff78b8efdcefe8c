package strategy

import (
	"trios/game"

	"github.com/rs/zerolog/log"
)

// HardToFlip plays its strongest card where the fewest card cells can attack it.
type HardToFlip struct {
	options
}

func NewHardToFlip(opts ...Option) *HardToFlip {
	return &HardToFlip{options: newOptions(opts)}
}

func (s *HardToFlip) Name() string { return "hardtoflip" }

func (s *HardToFlip) ChooseCard(v game.View, p game.Player) (game.Card, bool, error) {
	if err := validate(v, p); err != nil {
		return game.Card{}, false, err
	}
	hand, err := v.Hand(p)
	if err != nil || len(hand) == 0 {
		return game.Card{}, false, err
	}
	best := 0
	for i, card := range hand {
		s.metrics.AddCandidate()
		if card.Total() > hand[best].Total() {
			best = i
		}
	}
	log.Debug().Msgf("hardtoflip strategy picked %s with total attack %d", hand[best].Name, hand[best].Total())
	return hand[best], true, nil
}

func (s *HardToFlip) ChoosePosition(v game.View, card game.Card, p game.Player) (game.Position, bool, error) {
	if err := validateCard(v, card, p); err != nil {
		return game.Position{}, false, err
	}
	moves, err := legalMoves(v)
	if err != nil || len(moves) == 0 {
		return game.Position{}, false, err
	}

	best, fewest := moves[0], len(game.Directions)+1
	for _, pos := range moves {
		s.metrics.AddCandidate()
		n, err := cardCellNeighbours(v, pos)
		if err != nil {
			return game.Position{}, false, err
		}
		if n < fewest {
			best, fewest = pos, n
		}
	}
	log.Debug().Msgf("hardtoflip strategy picked %s with %d card cell neighbours", best, fewest)
	return best, true, nil
}

// cardCellNeighbours counts the sides of pos that face a card cell, occupied or not.
func cardCellNeighbours(v game.View, pos game.Position) (int, error) {
	n := 0
	for _, d := range game.Directions {
		next := pos.Step(d)
		if next.Row < 0 || next.Row >= v.Rows() || next.Col < 0 || next.Col >= v.Cols() {
			continue
		}
		kind, err := v.CellType(next.Row, next.Col)
		if err != nil {
			return 0, err
		}
		if kind == game.CardCell {
			n++
		}
	}
	return n, nil
}
