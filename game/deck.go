package game

import (
	"fmt"
	"io"
	"strings"
)

// ParseCards reads one card per line as "<name> <north> <south> <east> <west>".
// Blank lines are skipped and names must be unique.
func ParseCards(r io.Reader) ([]Card, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no card source", ErrInvalidArgument)
	}
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}

	seen := make(map[string]bool)
	var cards []Card
	for i, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 5", ErrFormat, i+1, len(fields))
		}
		name := fields[0]
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate card name %s", ErrFormat, name)
		}
		var values [4]AttackValue
		for j, f := range fields[1:] {
			v, err := ParseAttackValue(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			values[j] = v
		}
		seen[name] = true
		cards = append(cards, Card{Name: name, North: values[0], South: values[1], East: values[2], West: values[3]})
	}
	return cards, nil
}
