package game

import "fmt"

// Move is a card from the mover's hand and the position it goes to.
type Move struct {
	Card     Card
	Position Position
}

func (m Move) String() string {
	return fmt.Sprintf("%s at %s", m.Card.Name, m.Position)
}
