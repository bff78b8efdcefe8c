package game

type Player int

const (
	None Player = iota
	Red
	Blue
)

func (p Player) String() string {
	switch p {
	case Red:
		return "RED"
	case Blue:
		return "BLUE"
	default:
		return "NONE"
	}
}

// Opponent returns the other player, or None for None.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return None
	}
}
