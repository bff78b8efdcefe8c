package game

import "fmt"

// Rules decides whether an attacking side beats the defending side it faces.
type Rules interface {
	Name() string
	Captures(attack, defense AttackValue) bool
}

// StandardRules captures when the attacker is strictly stronger.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (StandardRules) Name() string { return "standard" }

func (StandardRules) Captures(attack, defense AttackValue) bool {
	return attack > defense
}

// ReverseRules captures when the attacker is strictly weaker.
type ReverseRules struct{}

func NewReverseRules() *ReverseRules {
	return &ReverseRules{}
}

func (ReverseRules) Name() string { return "reverse" }

func (ReverseRules) Captures(attack, defense AttackValue) bool {
	return attack < defense
}

// RulesByName resolves a configured rule set.
func RulesByName(name string) (Rules, error) {
	switch name {
	case "", "standard":
		return NewStandardRules(), nil
	case "reverse":
		return NewReverseRules(), nil
	}
	return nil, fmt.Errorf("%w: unknown rules %q", ErrInvalidArgument, name)
}
