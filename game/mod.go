package game

// View is the read-only surface of a match. Strategies and renderers only ever see a View.
type View interface {
	Rows() int
	Cols() int
	IsStarted() bool
	IsGameOver() bool
	CurrentPlayer() (Player, error)
	Cell(row, col int) (Cell, error)
	CellType(row, col int) (CellType, error)
	Hand(p Player) ([]Card, error)
	Score(p Player) (int, error)
	LegalMoves() ([]Position, error)
	IsLegalMove(row, col int) (bool, error)
	// PotentialFlips counts the cards the current player would capture by
	// placing card at (row, col), without changing the match.
	PotentialFlips(card Card, row, col int) (int, error)
}

// Playable is a View that also accepts moves.
type Playable interface {
	View
	PlayCard(card Card, row, col int) error
}

// Evaluate scores a view between -1 and 1 from the current player's perspective.
type Evaluate func(View) float64
