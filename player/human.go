package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"trios/game"
	"trios/textview"
)

// HumanPlayer reads moves as "<card index> <row> <col>" lines, all zero-based.
// Unparseable or illegal input is reported and asked for again.
type HumanPlayer struct {
	color  game.Player
	reader *bufio.Reader
	out    io.Writer
}

func NewHuman(color game.Player, in io.Reader, out io.Writer) (*HumanPlayer, error) {
	if in == nil || out == nil {
		return nil, fmt.Errorf("%w: a human player needs input and output", game.ErrInvalidArgument)
	}
	return &HumanPlayer{
		color:  color,
		reader: bufio.NewReader(in),
		out:    out,
	}, nil
}

func (h *HumanPlayer) Name() string       { return Human }
func (h *HumanPlayer) Color() game.Player { return h.color }
func (h *HumanPlayer) IsHuman() bool      { return true }

func (h *HumanPlayer) ChooseMove(v game.View) (game.Move, error) {
	if v == nil {
		return game.Move{}, fmt.Errorf("%w: no game", game.ErrInvalidArgument)
	}
	hand, err := v.Hand(h.color)
	if err != nil {
		return game.Move{}, err
	}
	if err := textview.Render(h.out, v); err != nil {
		return game.Move{}, err
	}

	for {
		fmt.Fprintf(h.out, "%s> ", h.color)
		line, err := h.reader.ReadString('\n')
		if strings.TrimSpace(line) == "" && err != nil {
			return game.Move{}, fmt.Errorf("failed to read move: %w", err)
		}

		move, perr := parseMove(line, hand)
		if perr == nil {
			legal, lerr := v.IsLegalMove(move.Position.Row, move.Position.Col)
			if lerr != nil {
				return game.Move{}, lerr
			}
			if legal {
				return move, nil
			}
			perr = fmt.Errorf("%s is not open", move.Position)
		}
		fmt.Fprintf(h.out, "invalid move: %v\n", perr)
		if err != nil {
			return game.Move{}, fmt.Errorf("failed to read move: %w", err)
		}
	}
}

func parseMove(line string, hand []game.Card) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return game.Move{}, fmt.Errorf("want \"<card index> <row> <col>\"")
	}
	var values [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return game.Move{}, fmt.Errorf("%q is not a number", f)
		}
		values[i] = n
	}
	if values[0] < 0 || values[0] >= len(hand) {
		return game.Move{}, fmt.Errorf("card index %d out of range", values[0])
	}
	return game.Move{
		Card:     hand[values[0]],
		Position: game.Position{Row: values[1], Col: values[2]},
	}, nil
}
