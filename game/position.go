package game

import "fmt"

type Position struct {
	Row int
	Col int
}

// Step returns the neighbouring position in direction d. It may be off the grid.
func (p Position) Step(d Direction) Position {
	switch d {
	case North:
		return Position{p.Row - 1, p.Col}
	case South:
		return Position{p.Row + 1, p.Col}
	case East:
		return Position{p.Row, p.Col + 1}
	default:
		return Position{p.Row, p.Col - 1}
	}
}

// Before orders positions uppermost first, then leftmost.
func (p Position) Before(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// Compare is Before as a three-way comparison, for sorting.
func (p Position) Compare(o Position) int {
	switch {
	case p.Before(o):
		return -1
	case o.Before(p):
		return 1
	}
	return 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
