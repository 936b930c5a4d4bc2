package gomoku

import (
	"fmt"
	"sync"
)

// Move describes an accepted placement and the state it produced.
type Move struct {
	Player Player
	Point  Point
	State  State
}

// Snapshot is a consistent copy of a game's state.
type Snapshot struct {
	Board *Board
	Turn  Player
	State State
	Moves int
}

// GameController owns the turn and the game state and mediates placements
// onto its Board. Placements are serialized, so it is safe to share.
type GameController struct {
	mu sync.Mutex

	board *Board
	turn  Player
	state State
	moves int

	listeners []func(Move)
}

func NewGameController(width, height int) (*GameController, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &GameController{
		board: board,
		turn:  Black,
		state: Playing,
	}, nil
}

// OnPlace registers fn to be called after every accepted placement.
func (that *GameController) OnPlace(fn func(Move)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listeners = append(that.listeners, fn)
}

// Place puts the current player's stone at pt. It returns false when the game
// is over or the point is occupied; neither the board nor the turn change then.
// An out-of-bounds point is reported as an error.
func (that *GameController) Place(pt Point) (bool, error) {
	that.mu.Lock()

	if that.state.IsTerminal() {
		that.mu.Unlock()
		return false, nil
	}

	player := that.turn

	ok, err := that.board.Place(player, pt)
	if err != nil || !ok {
		that.mu.Unlock()
		return false, err
	}

	// board.Place has already checked pt against the bounds
	state := that.board.evaluate(pt)

	that.moves++
	if state == Playing {
		that.turn = player.Opponent()
	} else {
		that.state = state
	}

	listeners := that.listeners
	that.mu.Unlock()

	move := Move{Player: player, Point: pt, State: state}
	for _, fn := range listeners {
		fn(move)
	}

	return true, nil
}

// Turn returns the player who moves next. It stays fixed once the game is over.
func (that *GameController) Turn() Player {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.turn
}

func (that *GameController) State() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

// Moves returns the number of accepted placements.
func (that *GameController) Moves() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.moves
}

func (that *GameController) OccupantAt(pt Point) (Player, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.OccupantAt(pt)
}

// Board returns a snapshot of the current board.
func (that *GameController) Board() *Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.Snapshot()
}

func (that *GameController) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return Snapshot{
		Board: that.board.Snapshot(),
		Turn:  that.turn,
		State: that.state,
		Moves: that.moves,
	}
}
