package game

import "fmt"

type CellType int

const (
	CardCell CellType = iota
	Hole
)

func (t CellType) String() string {
	if t == Hole {
		return "HOLE"
	}
	return "CARD_CELL"
}

// Cell is either a Hole or a CardCell. Only an occupied CardCell carries a card and an owner.
type Cell struct {
	kind     CellType
	occupied bool
	card     Card
	owner    Player
}

func NewCardCell() Cell {
	return Cell{kind: CardCell}
}

func NewHole() Cell {
	return Cell{kind: Hole}
}

func (c Cell) Type() CellType {
	return c.kind
}

func (c Cell) IsHole() bool {
	return c.kind == Hole
}

func (c Cell) Occupied() bool {
	return c.occupied
}

// CanPlace reports whether a card may be placed here.
func (c Cell) CanPlace() bool {
	return c.kind == CardCell && !c.occupied
}

func (c Cell) Card() (Card, bool) {
	return c.card, c.occupied
}

func (c Cell) Owner() Player {
	return c.owner
}

func (c *Cell) place(card Card, owner Player) error {
	switch {
	case c.kind == Hole:
		return fmt.Errorf("%w: cannot place a card on a hole", ErrInvalidOperation)
	case c.occupied:
		return fmt.Errorf("%w: cell already holds %s", ErrInvalidOperation, c.card.Name)
	case owner == None:
		return fmt.Errorf("%w: placed card needs an owner", ErrInvalidArgument)
	}
	c.card = card
	c.owner = owner
	c.occupied = true
	return nil
}

func (c *Cell) setOwner(owner Player) error {
	switch {
	case c.kind == Hole:
		return fmt.Errorf("%w: a hole has no owner", ErrInvalidOperation)
	case !c.occupied:
		return fmt.Errorf("%w: cannot own an empty cell", ErrInvalidOperation)
	case owner == None:
		return fmt.Errorf("%w: an occupied cell needs an owner", ErrInvalidArgument)
	}
	c.owner = owner
	return nil
}
