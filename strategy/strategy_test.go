package strategy

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"trios/experiments/metrics"
	"trios/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// captureLog points the global logger at a buffer for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestCorner(t *testing.T) {
	t.Run("board of isolated corners falls back to the top left", func(t *testing.T) {
		v := newMockView(3, 3, card("a", 1, 1, 1, 1), card("b", 9, 9, 9, 9))
		for _, p := range []game.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}} {
			v.holes[p] = true
		}
		s := NewCorner()

		c, ok, err := s.ChooseCard(v, game.Red)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "a", c.Name, "Without a corner the first card is played")

		pos, ok, err := s.ChoosePosition(v, c, game.Red)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, game.Position{Row: 0, Col: 0}, pos)
	})

	t.Run("picks the top left corner and the card strongest on its exposed sides", func(t *testing.T) {
		// (0,0) exposes north and west
		v := newMockView(3, 3,
			card("eastern", 1, 9, 9, 1),
			card("northwest", 5, 1, 1, 5),
			card("tie", 5, 1, 1, 5),
		)
		s := NewCorner()

		c, ok, err := s.ChooseCard(v, game.Red)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "northwest", c.Name, "Ties go to the lowest hand index")

		pos, _, err := s.ChoosePosition(v, c, game.Red)
		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 0, Col: 0}, pos)
	})

	t.Run("skips occupied corners", func(t *testing.T) {
		v := newMockView(3, 3, card("a", 1, 1, 1, 1))
		v.occupied[game.Position{Row: 0, Col: 0}] = true

		pos, ok, err := NewCorner().ChoosePosition(v, v.hand[0], game.Red)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, game.Position{Row: 0, Col: 2}, pos)
	})

	t.Run("holes make corners", func(t *testing.T) {
		// Only (1,1) is open, and the hole to its north and west leaves two exposed sides
		v := newMockView(3, 3, card("south", 1, 9, 1, 1), card("north", 9, 1, 1, 9))
		v.holes[game.Position{Row: 0, Col: 1}] = true
		v.holes[game.Position{Row: 1, Col: 0}] = true
		for _, p := range []game.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}} {
			v.occupied[p] = true
		}

		c, _, err := NewCorner().ChooseCard(v, game.Red)
		require.NoError(t, err)
		require.Equal(t, "north", c.Name)
	})

	t.Run("empty hand has no card", func(t *testing.T) {
		_, ok, err := NewCorner().ChooseCard(newMockView(3, 3), game.Red)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("counts each legal position it looks at once", func(t *testing.T) {
		v := newMockView(3, 3, card("a", 1, 1, 1, 1))
		for _, p := range []game.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}} {
			v.holes[p] = true
		}
		c := metrics.NewCollector()
		c.Start("corner")
		_, _, err := NewCorner(WithMetrics(c)).ChoosePosition(v, v.hand[0], game.Red)
		require.NoError(t, err)
		require.Equal(t, 4, c.Complete().Candidates, "Four open cells and none is a corner")

		c.Start("corner")
		_, _, err = NewCorner(WithMetrics(c)).ChoosePosition(newMockView(3, 3, v.hand[0]), v.hand[0], game.Red)
		require.NoError(t, err)
		require.Equal(t, 1, c.Complete().Candidates, "The first open cell is already a corner")
	})
}

func TestMaxFlip(t *testing.T) {
	high := card("high", 9, 9, 9, 9)
	low1 := card("low1", 1, 1, 1, 1)
	low2 := card("low2", 2, 2, 2, 2)

	t.Run("picks the high flip card at its best position", func(t *testing.T) {
		v := newMockView(3, 3, low1, high, low2)
		v.flips = func(c game.Card, pos game.Position) int {
			if c == high {
				if pos == (game.Position{Row: 1, Col: 1}) {
					return 3
				}
				return 0
			}
			return 1
		}
		s := NewMaxFlip()

		c, ok, err := s.ChooseCard(v, game.Red)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, high, c)

		pos, ok, err := s.ChoosePosition(v, c, game.Red)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, game.Position{Row: 1, Col: 1}, pos)
	})

	t.Run("ties go to the uppermost then leftmost position", func(t *testing.T) {
		v := newMockView(3, 3, low1, high)
		v.flips = func(c game.Card, pos game.Position) int {
			if c == high && (pos == game.Position{Row: 1, Col: 1} || pos == game.Position{Row: 0, Col: 1}) {
				return 3
			}
			return 1
		}

		pos, _, err := NewMaxFlip().ChoosePosition(v, high, game.Red)
		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 0, Col: 1}, pos)

		pos, _, err = NewMaxFlip().ChoosePosition(v, low1, game.Red)
		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 0, Col: 0}, pos)
	})

	t.Run("no flips anywhere plays the first card top left", func(t *testing.T) {
		v := newMockView(2, 2, low1, low2)
		move, ok, err := Decide(NewMaxFlip(), v, game.Red)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, game.Move{Card: low1, Position: game.Position{Row: 0, Col: 0}}, move)
	})

	t.Run("empty hand returns no card", func(t *testing.T) {
		_, ok, err := NewMaxFlip().ChooseCard(newMockView(3, 3), game.Red)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("counts one simulation per pair", func(t *testing.T) {
		c := metrics.NewCollector()
		c.Start("maxflip")
		_, _, err := NewMaxFlip(WithMetrics(c)).ChooseCard(newMockView(3, 3, low1, high, low2), game.Red)
		require.NoError(t, err)
		require.Equal(t, 27, c.Complete().Simulations)
	})
}

func TestHardToFlip(t *testing.T) {
	t.Run("picks the highest total, ties to the lowest index", func(t *testing.T) {
		v := newMockView(3, 3, card("weak", 1, 1, 1, 1), card("strong", 9, 1, 1, 9), card("also", 1, 9, 9, 1))
		c, ok, err := NewHardToFlip().ChooseCard(v, game.Red)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "strong", c.Name)
	})

	t.Run("picks the position with the fewest card cell neighbours", func(t *testing.T) {
		v := newMockView(3, 3, card("a", 1, 1, 1, 1))
		v.holes[game.Position{Row: 0, Col: 1}] = true

		s := NewHardToFlip()
		pos, ok, err := s.ChoosePosition(v, v.hand[0], game.Red)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, game.Position{Row: 0, Col: 0}, pos)

		v.occupied[game.Position{Row: 0, Col: 0}] = true
		pos, _, err = s.ChoosePosition(v, v.hand[0], game.Red)
		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 0, Col: 2}, pos, "Occupied neighbours still count but the cell itself is taken")
	})

	t.Run("full board has no position", func(t *testing.T) {
		v := newMockView(1, 1, card("a", 1, 1, 1, 1))
		v.occupied[game.Position{}] = true
		_, ok, err := NewHardToFlip().ChoosePosition(v, v.hand[0], game.Red)
		require.NoError(t, err)
		require.False(t, ok)
	})
	t.Run("logs its choices", func(t *testing.T) {
		buf := captureLog(t)
		v := newMockView(3, 3, card("weak", 1, 1, 1, 1), card("strong", 9, 1, 1, 9))
		s := NewHardToFlip()

		c, _, err := s.ChooseCard(v, game.Red)
		require.NoError(t, err)
		pos, _, err := s.ChoosePosition(v, c, game.Red)
		require.NoError(t, err)

		require.Contains(t, buf.String(), "hardtoflip strategy picked strong")
		require.Contains(t, buf.String(), "hardtoflip strategy picked "+pos.String())
		require.Contains(t, buf.String(), `"level":"debug"`)
	})
}

func TestValidation(t *testing.T) {
	a := card("a", 1, 1, 1, 1)
	for _, s := range []Strategy{NewCorner(), NewMaxFlip(), NewHardToFlip()} {
		t.Run(s.Name()+" rejects a finished game", func(t *testing.T) {
			v := newMockView(3, 3, a)
			v.over = true
			_, _, err := s.ChooseCard(v, game.Red)
			require.ErrorIs(t, err, game.ErrIllegalState)
			_, _, err = s.ChoosePosition(v, a, game.Red)
			require.ErrorIs(t, err, game.ErrIllegalState)
		})

		t.Run(s.Name()+" rejects an unstarted game", func(t *testing.T) {
			v := newMockView(3, 3, a)
			v.notStarted = true
			_, _, err := s.ChooseCard(v, game.Red)
			require.ErrorIs(t, err, game.ErrIllegalState)
		})

		t.Run(s.Name()+" rejects absent inputs", func(t *testing.T) {
			v := newMockView(3, 3, a)
			_, _, err := s.ChooseCard(nil, game.Red)
			require.ErrorIs(t, err, game.ErrInvalidArgument)
			_, _, err = s.ChooseCard(v, game.None)
			require.ErrorIs(t, err, game.ErrInvalidArgument)
			_, _, err = s.ChoosePosition(v, game.Card{}, game.Red)
			require.ErrorIs(t, err, game.ErrInvalidArgument)
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("builds by name or alias", func(t *testing.T) {
		for name, want := range map[string]string{
			"corner": "corner", "MaxFlip": "maxflip", "hardtoflip": "hardtoflip",
			"strategy1": "corner", "strategy2": "maxflip", "strategy3": "hardtoflip",
		} {
			s, err := New(name)
			require.NoError(t, err)
			require.Equal(t, want, s.Name())
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := New("random")
		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})

	t.Run("lists names in order", func(t *testing.T) {
		require.Equal(t, []string{"corner", "hardtoflip", "maxflip"}, Names())
	})
}

func deckConfig(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "c%d %d %d %d %d\n", i, i%9+1, (i+4)%9+1, (i+2)%9+1, (i+6)%9+1)
	}
	return b.String()
}

func TestExecute(t *testing.T) {
	newGame := func(t *testing.T) *game.GameState {
		gs := game.NewGameState(game.WithSeed(3))
		require.NoError(t, gs.Start(strings.NewReader(deckConfig(16)), strings.NewReader("4 4\nCCCC\nCXXC\nCCCC\nCCCC\n")))
		return gs
	}

	t.Run("plays the decided move", func(t *testing.T) {
		gs := newGame(t)
		move, err := Execute(NewCorner(), gs, game.Red)
		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 0, Col: 0}, move.Position)

		cell, _ := gs.Cell(0, 0)
		require.Equal(t, game.Red, cell.Owner())
		current, _ := gs.CurrentPlayer()
		require.Equal(t, game.Blue, current)
	})

	t.Run("strategies play a whole game", func(t *testing.T) {
		gs := newGame(t)
		players := map[game.Player]Strategy{game.Red: NewMaxFlip(), game.Blue: NewHardToFlip()}
		for !gs.IsGameOver() {
			current, err := gs.CurrentPlayer()
			require.NoError(t, err)
			_, err = Execute(players[current], gs, current)
			require.NoError(t, err)
		}
		_, err := Execute(NewCorner(), gs, game.Red)
		require.ErrorIs(t, err, game.ErrIllegalState)
	})

	t.Run("decisions do not change the view", func(t *testing.T) {
		gs := newGame(t)
		before, _ := gs.LegalMoves()
		_, _, err := Decide(NewMaxFlip(), gs, game.Red)
		require.NoError(t, err)
		after, _ := gs.LegalMoves()
		require.Equal(t, before, after)
	})
}
