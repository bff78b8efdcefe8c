package game

// Listener observes a match. Callbacks run synchronously at the end of a
// successful PlayCard, in registration order.
type Listener interface {
	OnTurnChanged(current Player)
	OnGameOver(winner Player, finalScore int)
}
