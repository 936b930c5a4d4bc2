package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

// Game is a registered match: an id plus the controller that owns its board.
type Game struct {
	ID        string
	CreatedAt time.Time

	controller *gomoku.GameController
}

// GameView is the read-only shape of a game handed to the presentation layer.
type GameView struct {
	ID       string     `json:"id"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Board    [][]string `json:"board"`
	Turn     string     `json:"player_turn"`
	State    string     `json:"state"`
	Status   string     `json:"status"`
	Moves    int        `json:"moves"`
	Finished bool       `json:"finished"`
}

func NewGame(id string, width, height int) (*Game, error) {
	controller, err := gomoku.NewGameController(width, height)
	if err != nil {
		if errors.Is(err, gomoku.ErrInvalidDimensions) {
			return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, width, height)
		}
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &Game{
		ID:         id,
		CreatedAt:  time.Now(),
		controller: controller,
	}, nil
}

// MakeTurn places the current player's stone at (x, y).
func (that *Game) MakeTurn(x, y int) error {
	ok, err := that.controller.Place(gomoku.Point{X: x, Y: y})
	if err != nil {
		if errors.Is(err, gomoku.ErrOutOfBounds) {
			return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, x, y)
		}
		return fmt.Errorf("failed to place stone: %w", err)
	}

	if !ok {
		if that.IsFinished() {
			return apperror.ErrGameFinished
		}
		return apperror.ErrCellOccupied
	}

	return nil
}

// OnPlace registers a listener for accepted placements.
func (that *Game) OnPlace(fn func(gomoku.Move)) {
	that.controller.OnPlace(fn)
}

func (that *Game) State() gomoku.State {
	return that.controller.State()
}

func (that *Game) Turn() gomoku.Player {
	return that.controller.Turn()
}

func (that *Game) IsFinished() bool {
	return that.controller.State().IsTerminal()
}

func (that *Game) View() GameView {
	snapshot := that.controller.Snapshot()
	board, state := snapshot.Board, snapshot.State

	rows := board.Rows()
	cells := make([][]string, len(rows))
	for y, row := range rows {
		cells[y] = make([]string, len(row))
		for x, p := range row {
			cells[y][x] = p.String()
		}
	}

	return GameView{
		ID:       that.ID,
		Width:    board.Width(),
		Height:   board.Height(),
		Board:    cells,
		Turn:     snapshot.Turn.String(),
		State:    state.String(),
		Status:   state.Message(),
		Moves:    snapshot.Moves,
		Finished: state.IsTerminal(),
	}
}
