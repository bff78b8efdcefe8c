// Package textview renders a match as plain text: the current player, the
// board, then the current player's hand.
package textview

import (
	"fmt"
	"io"
	"strings"

	"trios/game"
)

// String renders v. Holes are blank, empty card cells are '_' and occupied
// cells show their owner's initial.
func String(v game.View) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%w: no game", game.ErrInvalidArgument)
	}
	current, err := v.CurrentPlayer()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Player: %s\n", current)
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			cell, err := v.Cell(r, c)
			if err != nil {
				return "", err
			}
			b.WriteByte(symbol(cell))
		}
		b.WriteByte('\n')
	}

	hand, err := v.Hand(current)
	if err != nil {
		return "", err
	}
	b.WriteString("Hand:\n")
	for _, card := range hand {
		b.WriteString(card.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Render writes String(v) to w.
func Render(w io.Writer, v game.View) error {
	s, err := String(v)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("failed to render game: %w", err)
	}
	return nil
}

func symbol(cell game.Cell) byte {
	switch {
	case cell.IsHole():
		return ' '
	case !cell.Occupied():
		return '_'
	case cell.Owner() == game.Red:
		return 'R'
	default:
		return 'B'
	}
}
