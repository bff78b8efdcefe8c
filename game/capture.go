package game

// captureGrid is what the capture routine needs from a board.
type captureGrid interface {
	InBounds(Position) bool
	At(Position) Cell
	SetOwner(Position, Player) error
}

// resolveCaptures runs the chain reaction from origin, which must hold a placed card,
// and returns the positions it flipped in the order they flipped. Each cell is
// expanded at most once.
func resolveCaptures(g captureGrid, rules Rules, origin Position) []Position {
	visited := map[Position]bool{origin: true}
	queue := []Position{origin}
	var flipped []Position

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		cell := g.At(pos)
		attacker, ok := cell.Card()
		if !ok {
			continue
		}
		for _, d := range Directions {
			next := pos.Step(d)
			if !g.InBounds(next) {
				continue
			}
			adj := g.At(next)
			defender, ok := adj.Card()
			if !ok || adj.Owner() == cell.Owner() {
				continue
			}
			if !rules.Captures(attacker.Attack(d), defender.Attack(d.Opposite())) {
				continue
			}
			// adj is occupied, so SetOwner cannot fail
			_ = g.SetOwner(next, cell.Owner())
			flipped = append(flipped, next)
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return flipped
}
