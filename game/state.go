package game

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type Phase int

const (
	NotStarted Phase = iota
	Started
	Over
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NOT_STARTED"
	case Started:
		return "STARTED"
	default:
		return "OVER"
	}
}

// GameState is the single authoritative state of a match. It is not safe for
// concurrent use; strategies and hints work on a Copy.
type GameState struct {
	phase      Phase
	grid       *Grid
	red        []Card // Hand order is significant
	blue       []Card
	deck       []Card // Cards left over after dealing
	catalog    []Card // Every configured card, in config order
	current    Player
	winner     Player
	finalScore int
	rules      Rules
	rng        *rand.Rand
	seed       uint64
	seeded     bool // rng was built from seed
	listeners  []Listener
}

type Option func(*GameState)

// WithRand sets the source used to shuffle the deck.
func WithRand(r *rand.Rand) Option {
	return func(gs *GameState) {
		gs.rng = r
		gs.seeded = false
	}
}

// WithSeed shuffles with a deterministic source seeded from seed.
func WithSeed(seed uint64) Option {
	return func(gs *GameState) {
		gs.rng = rand.New(rand.NewSource(seed))
		gs.seed, gs.seeded = seed, true
	}
}

func WithRules(r Rules) Option {
	return func(gs *GameState) {
		gs.rules = r
	}
}

func WithListener(l Listener) Option {
	return func(gs *GameState) {
		gs.listeners = append(gs.listeners, l)
	}
}

// NewGameState returns a match that has not started yet.
func NewGameState(options ...Option) *GameState {
	gs := &GameState{}
	for _, option := range options {
		option(gs)
	}
	gs.defaults()
	return gs
}

func (gs *GameState) defaults() {
	if gs.rules == nil {
		gs.rules = NewStandardRules()
	}
	if gs.rng == nil {
		gs.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
}

// AddListener registers l to be notified after every successful PlayCard.
func (gs *GameState) AddListener(l Listener) {
	gs.listeners = append(gs.listeners, l)
}

// Start parses both configs, shuffles the deck and deals (cardCells+1)/2 cards
// to each player, alternating and starting with Red.
func (gs *GameState) Start(cards, board io.Reader) error {
	if gs.phase != NotStarted {
		return fmt.Errorf("%w: game already started", ErrIllegalState)
	}
	gs.defaults()
	grid, err := ParseBoard(board)
	if err != nil {
		return err
	}
	deck, err := ParseCards(cards)
	if err != nil {
		return err
	}
	cardCells := grid.CardCells()
	if len(deck) < cardCells+1 {
		return fmt.Errorf("%w: %d cards for %d card cells, need at least %d", ErrInsufficientCards, len(deck), cardCells, cardCells+1)
	}

	gs.catalog = slices.Clone(deck)
	gs.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	handSize := (cardCells + 1) / 2
	gs.red = make([]Card, 0, handSize)
	gs.blue = make([]Card, 0, handSize)
	for i := 0; i < handSize; i++ {
		gs.red = append(gs.red, deck[2*i])
		gs.blue = append(gs.blue, deck[2*i+1])
	}
	gs.deck = slices.Clone(deck[2*handSize:])
	gs.grid = grid
	gs.current = Red
	gs.phase = Started

	log.Debug().Msgf("game started on a %dx%d board with %d card cells, %d cards per hand", grid.Rows(), grid.Cols(), cardCells, handSize)

	if grid.Full() {
		gs.finish()
	}
	return nil
}

// StartFromFiles is Start over two config files.
func (gs *GameState) StartFromFiles(cardPath, boardPath string) error {
	cards, err := os.Open(cardPath)
	if err != nil {
		return fmt.Errorf("failed to open card config: %w", err)
	}
	defer cards.Close()

	board, err := os.Open(boardPath)
	if err != nil {
		return fmt.Errorf("failed to open board config: %w", err)
	}
	defer board.Close()

	return gs.Start(cards, board)
}

// PlayCard places card from the current player's hand at (row, col), resolves
// captures and passes the turn. On error nothing changes.
func (gs *GameState) PlayCard(card Card, row, col int) error {
	if err := gs.requirePlaying(); err != nil {
		return err
	}
	if card.IsZero() {
		return fmt.Errorf("%w: no card given", ErrInvalidArgument)
	}
	pos := Position{row, col}
	if !gs.grid.InBounds(pos) {
		return fmt.Errorf("%w: position %s out of bounds", ErrIllegalMove, pos)
	}
	cell := gs.grid.At(pos)
	if cell.IsHole() {
		return fmt.Errorf("%w: position %s is a hole", ErrIllegalMove, pos)
	}
	if cell.Occupied() {
		return fmt.Errorf("%w: position %s is occupied", ErrIllegalMove, pos)
	}
	hand := gs.handOf(gs.current)
	idx := slices.Index(*hand, card)
	if idx < 0 {
		return fmt.Errorf("%w: %s is not in %s's hand", ErrIllegalMove, card.Name, gs.current)
	}

	if err := gs.grid.Place(pos, card, gs.current); err != nil {
		return err
	}
	*hand = slices.Delete(*hand, idx, idx+1)
	flipped := resolveCaptures(gs.grid, gs.rules, pos)

	log.Debug().Msgf("%s played %s at %s and captured %d", gs.current, card.Name, pos, len(flipped))

	gs.current = gs.current.Opponent()
	if gs.grid.Full() {
		gs.finish()
	}
	gs.notify()
	return nil
}

func (gs *GameState) finish() {
	red, blue := gs.total(Red), gs.total(Blue)
	switch {
	case red > blue:
		gs.winner, gs.finalScore = Red, red
	case blue > red:
		gs.winner, gs.finalScore = Blue, blue
	default:
		gs.winner, gs.finalScore = None, red
	}
	gs.phase = Over
	log.Debug().Msgf("game over: RED %d, BLUE %d, winner %s", red, blue, gs.winner)
}

func (gs *GameState) notify() {
	for _, l := range gs.listeners {
		l.OnTurnChanged(gs.current)
	}
	if gs.phase != Over {
		return
	}
	for _, l := range gs.listeners {
		l.OnGameOver(gs.winner, gs.finalScore)
	}
}

func (gs *GameState) requireStarted() error {
	if gs.phase == NotStarted {
		return fmt.Errorf("%w: game has not started", ErrIllegalState)
	}
	return nil
}

func (gs *GameState) requirePlaying() error {
	if err := gs.requireStarted(); err != nil {
		return err
	}
	if gs.phase == Over {
		return fmt.Errorf("%w: game is over", ErrIllegalState)
	}
	return nil
}

func (gs *GameState) handOf(p Player) *[]Card {
	switch p {
	case Red:
		return &gs.red
	case Blue:
		return &gs.blue
	}
	return nil
}

func (gs *GameState) total(p Player) int {
	return len(*gs.handOf(p)) + gs.grid.Owned(p)
}

func (gs *GameState) position(row, col int) (Position, error) {
	if err := gs.requireStarted(); err != nil {
		return Position{}, err
	}
	pos := Position{row, col}
	if !gs.grid.InBounds(pos) {
		return Position{}, fmt.Errorf("%w: position %s out of bounds", ErrInvalidArgument, pos)
	}
	return pos, nil
}

func (gs *GameState) Phase() Phase     { return gs.phase }
func (gs *GameState) IsStarted() bool  { return gs.phase != NotStarted }
func (gs *GameState) IsGameOver() bool { return gs.phase == Over }
func (gs *GameState) Rules() Rules     { return gs.rules }

// Rows is 0 before the game starts.
func (gs *GameState) Rows() int {
	if gs.grid == nil {
		return 0
	}
	return gs.grid.Rows()
}

// Cols is 0 before the game starts.
func (gs *GameState) Cols() int {
	if gs.grid == nil {
		return 0
	}
	return gs.grid.Cols()
}

func (gs *GameState) CurrentPlayer() (Player, error) {
	if err := gs.requireStarted(); err != nil {
		return None, err
	}
	return gs.current, nil
}

func (gs *GameState) Cell(row, col int) (Cell, error) {
	pos, err := gs.position(row, col)
	if err != nil {
		return Cell{}, err
	}
	return gs.grid.At(pos), nil
}

func (gs *GameState) CellType(row, col int) (CellType, error) {
	cell, err := gs.Cell(row, col)
	if err != nil {
		return CardCell, err
	}
	return cell.Type(), nil
}

// Hand returns a copy of p's hand in dealt order.
func (gs *GameState) Hand(p Player) ([]Card, error) {
	if err := gs.requireStarted(); err != nil {
		return nil, err
	}
	hand := gs.handOf(p)
	if hand == nil {
		return nil, fmt.Errorf("%w: player %s has no hand", ErrInvalidArgument, p)
	}
	return slices.Clone(*hand), nil
}

// Deck returns a copy of the cards left undealt.
func (gs *GameState) Deck() ([]Card, error) {
	if err := gs.requireStarted(); err != nil {
		return nil, err
	}
	return slices.Clone(gs.deck), nil
}

func (gs *GameState) DeckSize() int {
	return len(gs.deck)
}

// CardByName looks a card up among every configured card.
func (gs *GameState) CardByName(name string) (Card, error) {
	if err := gs.requireStarted(); err != nil {
		return Card{}, err
	}
	idx := slices.IndexFunc(gs.catalog, func(c Card) bool { return c.Name == name })
	if idx < 0 {
		return Card{}, fmt.Errorf("%w: card %q", ErrNotFound, name)
	}
	return gs.catalog[idx], nil
}

// Winner is None on a tie.
func (gs *GameState) Winner() (Player, error) {
	if gs.phase != Over {
		return None, fmt.Errorf("%w: game is not over", ErrIllegalState)
	}
	return gs.winner, nil
}

// FinalScore is the winner's score, or Red's on a tie.
func (gs *GameState) FinalScore() (int, error) {
	if gs.phase != Over {
		return 0, fmt.Errorf("%w: game is not over", ErrIllegalState)
	}
	return gs.finalScore, nil
}

// Score is p's hand size plus the cells p owns.
func (gs *GameState) Score(p Player) (int, error) {
	if err := gs.requireStarted(); err != nil {
		return 0, err
	}
	if gs.handOf(p) == nil {
		return 0, fmt.Errorf("%w: player %s has no score", ErrInvalidArgument, p)
	}
	return gs.total(p), nil
}

// LegalMoves lists open card cells, uppermost then leftmost. It is empty once the game is over.
func (gs *GameState) LegalMoves() ([]Position, error) {
	if err := gs.requireStarted(); err != nil {
		return nil, err
	}
	if gs.phase == Over {
		return []Position{}, nil
	}
	return gs.grid.Open(), nil
}

func (gs *GameState) IsLegalMove(row, col int) (bool, error) {
	if err := gs.requireStarted(); err != nil {
		return false, err
	}
	pos := Position{row, col}
	return gs.grid.InBounds(pos) && gs.grid.At(pos).CanPlace(), nil
}

func (gs *GameState) PotentialFlips(card Card, row, col int) (int, error) {
	pos, err := gs.position(row, col)
	if err != nil {
		return 0, err
	}
	if card.IsZero() {
		return 0, fmt.Errorf("%w: no card given", ErrInvalidArgument)
	}
	if !gs.grid.At(pos).CanPlace() {
		return 0, fmt.Errorf("%w: position %s cannot take a card", ErrInvalidArgument, pos)
	}
	scratch := gs.grid.Clone()
	if err := scratch.Place(pos, card, gs.current); err != nil {
		return 0, err
	}
	return len(resolveCaptures(scratch, gs.rules, pos)), nil
}

// Hints maps every legal position to the number of cards card would capture there.
func (gs *GameState) Hints(card Card) (map[Position]int, error) {
	moves, err := gs.LegalMoves()
	if err != nil {
		return nil, err
	}
	hints := make(map[Position]int, len(moves))
	for _, pos := range moves {
		n, err := gs.PotentialFlips(card, pos.Row, pos.Col)
		if err != nil {
			return nil, err
		}
		hints[pos] = n
	}
	return hints, nil
}

// Copy returns an independent clone. Listeners stay with the original.
func (gs *GameState) Copy() *GameState {
	c := &GameState{
		phase:      gs.phase,
		red:        slices.Clone(gs.red),
		blue:       slices.Clone(gs.blue),
		deck:       slices.Clone(gs.deck),
		catalog:    slices.Clone(gs.catalog),
		current:    gs.current,
		winner:     gs.winner,
		finalScore: gs.finalScore,
		rules:      gs.rules, // Rules are stateless
	}
	if gs.grid != nil {
		c.grid = gs.grid.Clone()
	}
	// The clone still has to shuffle, so it gets its own source. Drawing from
	// gs.rng here would change the original's deal.
	switch {
	case gs.phase != NotStarted:
	case gs.seeded:
		c.rng = rand.New(rand.NewSource(gs.seed))
		c.seed, c.seeded = gs.seed, true
	case gs.rng != nil:
		c.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return c
}

var _ Playable = (*GameState)(nil)
