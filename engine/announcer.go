package engine

import (
	"fmt"
	"io"

	"trios/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// announcer reports turn changes and the result of one match. The result is
// written at most once.
type announcer struct {
	match     uuid.UUID
	out       io.Writer
	announced bool
}

func newAnnouncer(match uuid.UUID, out io.Writer) *announcer {
	return &announcer{match: match, out: out}
}

func (a *announcer) OnTurnChanged(current game.Player) {
	log.Debug().Msgf("match %s: %s to move", a.match, current)
}

func (a *announcer) OnGameOver(winner game.Player, finalScore int) {
	if a.announced {
		return
	}
	a.announced = true
	if winner == game.None {
		fmt.Fprintf(a.out, "Game over! It's a tie at %d.\n", finalScore)
		return
	}
	fmt.Fprintf(a.out, "Game over! Winner: %s with %d.\n", winner, finalScore)
}
