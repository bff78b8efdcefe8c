package game

import (
	"fmt"
	"strconv"
	"strings"
)

// AttackValue is the strength of one side of a card, between 1 and 10.
type AttackValue int

const (
	MinAttack AttackValue = 1
	MaxAttack AttackValue = 10
)

// ParseAttackValue accepts 1-9 or A/a for 10.
func ParseAttackValue(s string) (AttackValue, error) {
	if strings.EqualFold(s, "A") {
		return MaxAttack, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || len(s) != 1 || n < int(MinAttack) || n > 9 {
		return 0, fmt.Errorf("%w: attack value %q", ErrFormat, s)
	}
	return AttackValue(n), nil
}

func (v AttackValue) Valid() bool {
	return v >= MinAttack && v <= MaxAttack
}

func (v AttackValue) String() string {
	if v == MaxAttack {
		return "A"
	}
	return strconv.Itoa(int(v))
}

type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in the order captures are checked.
var Directions = [...]Direction{North, South, East, West}

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case South:
		return "SOUTH"
	case East:
		return "EAST"
	case West:
		return "WEST"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Card is an immutable value. Two cards are the same card when all fields match.
type Card struct {
	Name  string
	North AttackValue
	South AttackValue
	East  AttackValue
	West  AttackValue
}

func NewCard(name string, north, south, east, west AttackValue) (Card, error) {
	if name == "" {
		return Card{}, fmt.Errorf("%w: card name is empty", ErrInvalidArgument)
	}
	for _, v := range []AttackValue{north, south, east, west} {
		if !v.Valid() {
			return Card{}, fmt.Errorf("%w: attack value %d out of range for card %s", ErrInvalidArgument, v, name)
		}
	}
	return Card{Name: name, North: north, South: south, East: east, West: west}, nil
}

// IsZero reports whether c is the absent card.
func (c Card) IsZero() bool {
	return c == Card{}
}

func (c Card) Attack(d Direction) AttackValue {
	switch d {
	case North:
		return c.North
	case South:
		return c.South
	case East:
		return c.East
	default:
		return c.West
	}
}

// Total sums all four sides.
func (c Card) Total() int {
	return int(c.North + c.South + c.East + c.West)
}

// String renders the card the way it appears in a card config line.
func (c Card) String() string {
	return fmt.Sprintf("%s %s %s %s %s", c.Name, c.North, c.South, c.East, c.West)
}
