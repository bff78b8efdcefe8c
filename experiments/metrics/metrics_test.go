package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts simulations and candidates", func(t *testing.T) {
		c := NewCollector()
		c.Start("maxflip")
		c.AddSimulation()
		c.AddSimulation()
		c.AddCandidate()

		m := c.Complete()
		require.Equal(t, "maxflip", m.Strategy)
		require.Equal(t, 2, m.Simulations)
		require.Equal(t, 1, m.Candidates)
	})

	t.Run("start resets the counts", func(t *testing.T) {
		c := NewCollector()
		c.Start("a")
		c.AddSimulation()
		c.Start("b")

		require.Zero(t, c.Complete().Simulations)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("a")
		c.AddSimulation()
		require.Equal(t, DecisionMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "tournament")
	require.NoError(t, err)

	now := time.Now()
	err = w.WriteGameRecords([]GameRecord{{
		ID: 1, Red: "corner", Blue: "maxflip",
		GameMetric: GameMetric{MatchID: "m1", StartingPlayer: "RED", Winner: "BLUE", FinalScore: 6, StartTime: now, EndTime: now, TotalMoves: 9},
	}})
	require.NoError(t, err)

	err = w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Player: "RED", Card: "dragon", Flips: 2, DecisionMetric: DecisionMetric{Strategy: "corner"}},
	}})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "match_id", rows[0][1])
	require.Equal(t, []string{"1", "m1", "corner", "maxflip", "RED", "BLUE", "6"}, rows[1][:7])

	moves, err := os.ReadFile(filepath.Join(w.Dir(), "move_records.csv"))
	require.NoError(t, err)
	require.Contains(t, string(moves), "1,1,RED,corner,dragon,0,0,2,")
}
