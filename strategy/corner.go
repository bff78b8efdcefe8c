package strategy

import (
	"trios/game"

	"github.com/rs/zerolog/log"
)

// Corner plays into cells with exactly two exposed sides, where a side is
// exposed if it faces the board edge or a hole.
type Corner struct {
	options
}

func NewCorner(opts ...Option) *Corner {
	return &Corner{options: newOptions(opts)}
}

func (s *Corner) Name() string { return "corner" }

func (s *Corner) ChooseCard(v game.View, p game.Player) (game.Card, bool, error) {
	if err := validate(v, p); err != nil {
		return game.Card{}, false, err
	}
	hand, err := v.Hand(p)
	if err != nil {
		return game.Card{}, false, err
	}
	if len(hand) == 0 {
		return game.Card{}, false, nil
	}
	corner, ok, err := s.bestCorner(v)
	if err != nil {
		return game.Card{}, false, err
	}
	if !ok {
		return hand[0], true, nil
	}

	exposed, err := exposedSides(v, corner)
	if err != nil {
		return game.Card{}, false, err
	}
	best, bestSum := 0, -1
	for i, card := range hand {
		s.metrics.AddCandidate()
		sum := 0
		for _, d := range exposed {
			sum += int(card.Attack(d))
		}
		if sum > bestSum {
			best, bestSum = i, sum
		}
	}
	log.Debug().Msgf("corner strategy picked %s for corner %s", hand[best].Name, corner)
	return hand[best], true, nil
}

func (s *Corner) ChoosePosition(v game.View, card game.Card, p game.Player) (game.Position, bool, error) {
	if err := validateCard(v, card, p); err != nil {
		return game.Position{}, false, err
	}
	corner, ok, err := s.bestCorner(v)
	if err != nil || ok {
		return corner, ok, err
	}
	moves, err := legalMoves(v)
	if err != nil || len(moves) == 0 {
		return game.Position{}, false, err
	}
	return moves[0], true, nil
}

// bestCorner finds the uppermost, then leftmost, legal corner.
func (s *Corner) bestCorner(v game.View) (game.Position, bool, error) {
	moves, err := legalMoves(v)
	if err != nil {
		return game.Position{}, false, err
	}
	for _, pos := range moves {
		s.metrics.AddCandidate()
		exposed, err := exposedSides(v, pos)
		if err != nil {
			return game.Position{}, false, err
		}
		if len(exposed) == 2 {
			return pos, true, nil
		}
	}
	return game.Position{}, false, nil
}

// exposedSides lists the directions of pos that face the edge or a hole.
func exposedSides(v game.View, pos game.Position) ([]game.Direction, error) {
	var exposed []game.Direction
	for _, d := range game.Directions {
		next := pos.Step(d)
		if next.Row < 0 || next.Row >= v.Rows() || next.Col < 0 || next.Col >= v.Cols() {
			exposed = append(exposed, d)
			continue
		}
		kind, err := v.CellType(next.Row, next.Col)
		if err != nil {
			return nil, err
		}
		if kind == game.Hole {
			exposed = append(exposed, d)
		}
	}
	return exposed, nil
}
