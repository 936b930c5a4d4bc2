package gomoku

import (
	"errors"
	"fmt"
)

const (
	// WinLength is the number of consecutive same-owner stones that wins the game.
	WinLength = 5

	// MaxSide bounds both board dimensions.
	MaxSide = 100
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrOutOfBounds       = errors.New("point is out of bounds")
	ErrInvalidPlayer     = errors.New("invalid player")
)

// Player identifies the owner of a stone. None marks an empty point.
type Player uint8

const (
	None Player = iota
	Black
	White
)

func (that Player) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return ""
	}
}

// Opponent returns the other player.
func (that Player) Opponent() Player {
	if that == Black {
		return White
	}
	return Black
}

// Point is a zero-indexed board position: X is the column, Y is the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// State is the overall outcome of a game.
type State uint8

const (
	Playing State = iota
	BlackWin
	WhiteWin
	Draw
)

func (that State) String() string {
	switch that {
	case BlackWin:
		return "blackWin"
	case WhiteWin:
		return "whiteWin"
	case Draw:
		return "draw"
	default:
		return "playing"
	}
}

// Message is the human-readable status shown to players.
func (that State) Message() string {
	switch that {
	case BlackWin:
		return "black wins"
	case WhiteWin:
		return "white wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// IsTerminal reports whether no further placements are accepted.
func (that State) IsTerminal() bool {
	return that != Playing
}

// Board is a fixed-size grid of points stored row-major.
type Board struct {
	width  int
	height int
	points []Player
}

func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d is not positive", ErrInvalidDimensions, width, height)
	}

	if width > MaxSide || height > MaxSide {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d per side", ErrInvalidDimensions, width, height, MaxSide)
	}

	return &Board{
		width:  width,
		height: height,
		points: make([]Player, width*height),
	}, nil
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) Height() int {
	return that.height
}

// Contains reports whether pt lies on the board.
func (that *Board) Contains(pt Point) bool {
	return pt.X >= 0 && pt.X < that.width && pt.Y >= 0 && pt.Y < that.height
}

// Place puts a stone of player at pt. It returns false without touching the
// board when the point is already occupied.
func (that *Board) Place(player Player, pt Point) (bool, error) {
	if player != Black && player != White {
		return false, fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}

	idx, err := that.index(pt)
	if err != nil {
		return false, err
	}

	if that.points[idx] != None {
		return false, nil
	}

	that.points[idx] = player

	return true, nil
}

// OccupantAt returns the owner of the stone at pt, or None.
func (that *Board) OccupantAt(pt Point) (Player, error) {
	idx, err := that.index(pt)
	if err != nil {
		return None, err
	}

	return that.points[idx], nil
}

// Full reports whether every point is occupied.
func (that *Board) Full() bool {
	for _, p := range that.points {
		if p == None {
			return false
		}
	}
	return true
}

// Evaluate computes the game state after a placement at pt. Only the four
// lines through pt are scanned for five-in-a-row; black is checked first.
func (that *Board) Evaluate(pt Point) (State, error) {
	if !that.Contains(pt) {
		return Playing, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, pt.X, pt.Y)
	}

	return that.evaluate(pt), nil
}

// evaluate expects pt to be on the board.
func (that *Board) evaluate(pt Point) State {
	lines := that.Lines(pt)

	cells := make([][]Player, 0, len(lines))
	for _, line := range lines {
		cells = append(cells, that.occupants(line))
	}

	for _, player := range []Player{Black, White} {
		for _, line := range cells {
			if hasRun(line, player, WinLength) {
				return winState(player)
			}
		}
	}

	if that.Full() {
		return Draw
	}

	return Playing
}

// Snapshot returns an independent copy of the board.
func (that *Board) Snapshot() *Board {
	points := make([]Player, len(that.points))
	copy(points, that.points)

	return &Board{
		width:  that.width,
		height: that.height,
		points: points,
	}
}

// Rows returns the occupants row by row, for rendering.
func (that *Board) Rows() [][]Player {
	rows := make([][]Player, that.height)
	for y := range rows {
		rows[y] = make([]Player, that.width)
		copy(rows[y], that.points[y*that.width:(y+1)*that.width])
	}
	return rows
}

func (that *Board) index(pt Point) (int, error) {
	if !that.Contains(pt) {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, pt.X, pt.Y, that.width, that.height)
	}
	return pt.Y*that.width + pt.X, nil
}

func (that *Board) occupants(line []Point) []Player {
	cells := make([]Player, len(line))
	for i, pt := range line {
		cells[i] = that.points[pt.Y*that.width+pt.X]
	}
	return cells
}

// hasRun reports whether line holds at least n consecutive stones of player.
func hasRun(line []Player, player Player, n int) bool {
	count := 0
	for _, cell := range line {
		if cell != player {
			count = 0
			continue
		}

		count++
		if count >= n {
			return true
		}
	}
	return false
}

func winState(player Player) State {
	if player == Black {
		return BlackWin
	}
	return WhiteWin
}
