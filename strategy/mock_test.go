package strategy

import (
	"trios/game"
)

// mockView is a hand-built board. Cells are card cells unless listed as holes.
type mockView struct {
	rows, cols int
	holes      map[game.Position]bool
	occupied   map[game.Position]bool
	hand       []game.Card
	flips      func(card game.Card, pos game.Position) int
	notStarted bool
	over       bool
}

func newMockView(rows, cols int, hand ...game.Card) *mockView {
	return &mockView{
		rows:     rows,
		cols:     cols,
		holes:    map[game.Position]bool{},
		occupied: map[game.Position]bool{},
		hand:     hand,
	}
}

func (m *mockView) Rows() int        { return m.rows }
func (m *mockView) Cols() int        { return m.cols }
func (m *mockView) IsStarted() bool  { return !m.notStarted }
func (m *mockView) IsGameOver() bool { return m.over }

func (m *mockView) CurrentPlayer() (game.Player, error) { return game.Red, nil }

func (m *mockView) Cell(row, col int) (game.Cell, error) {
	if m.holes[game.Position{Row: row, Col: col}] {
		return game.NewHole(), nil
	}
	return game.NewCardCell(), nil
}

func (m *mockView) CellType(row, col int) (game.CellType, error) {
	if m.holes[game.Position{Row: row, Col: col}] {
		return game.Hole, nil
	}
	return game.CardCell, nil
}

func (m *mockView) Hand(game.Player) ([]game.Card, error) { return m.hand, nil }
func (m *mockView) Score(game.Player) (int, error)        { return 0, nil }

func (m *mockView) LegalMoves() ([]game.Position, error) {
	var moves []game.Position
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if ok, _ := m.IsLegalMove(r, c); ok {
				moves = append(moves, game.Position{Row: r, Col: c})
			}
		}
	}
	return moves, nil
}

func (m *mockView) IsLegalMove(row, col int) (bool, error) {
	pos := game.Position{Row: row, Col: col}
	return !m.holes[pos] && !m.occupied[pos], nil
}

func (m *mockView) PotentialFlips(card game.Card, row, col int) (int, error) {
	if m.flips == nil {
		return 0, nil
	}
	return m.flips(card, game.Position{Row: row, Col: col}), nil
}

func card(name string, north, south, east, west game.AttackValue) game.Card {
	return game.Card{Name: name, North: north, South: south, East: east, West: west}
}
