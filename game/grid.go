package game

import "fmt"

// Grid is a fixed rows x cols board. Its shape never changes once built.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid builds a grid from row-major cells.
func NewGrid(rows, cols int, cells []Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d", ErrInvalidArgument, rows, cols)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrInvalidArgument, len(cells), rows, cols)
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, len(cells))}
	copy(g.cells, cells)
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns a copy of the cell at p. p must be in bounds.
func (g *Grid) At(p Position) Cell {
	return g.cells[p.Row*g.cols+p.Col]
}

func (g *Grid) Place(p Position, card Card, owner Player) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: position %s out of bounds", ErrInvalidArgument, p)
	}
	return g.cells[p.Row*g.cols+p.Col].place(card, owner)
}

func (g *Grid) SetOwner(p Position, owner Player) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: position %s out of bounds", ErrInvalidArgument, p)
	}
	return g.cells[p.Row*g.cols+p.Col].setOwner(owner)
}

// Clone returns an independent grid. Cells are values so no state is shared.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// CardCells counts cells that can ever hold a card.
func (g *Grid) CardCells() int {
	n := 0
	for _, c := range g.cells {
		if c.kind == CardCell {
			n++
		}
	}
	return n
}

// Full reports whether every card cell is occupied.
func (g *Grid) Full() bool {
	for _, c := range g.cells {
		if c.kind == CardCell && !c.occupied {
			return false
		}
	}
	return true
}

// Owned counts the occupied cells owned by p.
func (g *Grid) Owned(p Player) int {
	n := 0
	for _, c := range g.cells {
		if c.occupied && c.owner == p {
			n++
		}
	}
	return n
}

// Open lists unoccupied card cells, uppermost then leftmost.
func (g *Grid) Open() []Position {
	var open []Position
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c].CanPlace() {
				open = append(open, Position{r, c})
			}
		}
	}
	return open
}
