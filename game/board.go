package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseBoard reads a board config: a "<rows> <cols>" header followed by rows lines
// of exactly cols characters, C/c for a card cell and X/x for a hole.
func ParseBoard(r io.Reader) (*Grid, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no board source", ErrInvalidArgument)
	}
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read board: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: board is empty", ErrFormat)
	}

	header := strings.Fields(lines[0])
	if len(header) != 2 {
		return nil, fmt.Errorf("%w: board header %q, want \"<rows> <cols>\"", ErrFormat, lines[0])
	}
	rows, err := strconv.Atoi(header[0])
	if err != nil || rows <= 0 {
		return nil, fmt.Errorf("%w: invalid row count %q", ErrFormat, header[0])
	}
	cols, err := strconv.Atoi(header[1])
	if err != nil || cols <= 0 {
		return nil, fmt.Errorf("%w: invalid column count %q", ErrFormat, header[1])
	}
	if len(lines)-1 != rows {
		return nil, fmt.Errorf("%w: expected %d board rows, got %d", ErrFormat, rows, len(lines)-1)
	}

	cells := make([]Cell, 0, rows*cols)
	for r, line := range lines[1:] {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrFormat, r, len(line), cols)
		}
		for c, ch := range line {
			switch ch {
			case 'C', 'c':
				cells = append(cells, NewCardCell())
			case 'X', 'x':
				cells = append(cells, NewHole())
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d column %d", ErrFormat, ch, r, c)
			}
		}
	}
	return NewGrid(rows, cols, cells)
}

// readLines returns trimmed lines with trailing blank lines dropped.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
