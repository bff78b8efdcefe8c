package game

// EvaluateScore compares the two players' scores from the current player's
// perspective, between -1 and 1.
func EvaluateScore(v View) float64 {
	me, err := v.CurrentPlayer()
	if err != nil {
		return 0
	}
	mine, err := v.Score(me)
	if err != nil {
		return 0
	}
	theirs, err := v.Score(me.Opponent())
	if err != nil {
		return 0
	}
	return normalize(float64(mine), float64(theirs))
}

// EvaluateBoard only counts cells held on the board, ignoring hands.
func EvaluateBoard(v View) float64 {
	me, err := v.CurrentPlayer()
	if err != nil {
		return 0
	}
	var mine, theirs float64
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			cell, err := v.Cell(r, c)
			if err != nil || !cell.Occupied() {
				continue
			}
			if cell.Owner() == me {
				mine++
			} else {
				theirs++
			}
		}
	}
	return normalize(mine, theirs)
}

func normalize(value float64, otherValue float64) float64 {
	if value+otherValue == 0 {
		return 0
	}
	return (value - otherValue) / (value + otherValue)
}
