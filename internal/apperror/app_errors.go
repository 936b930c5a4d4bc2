package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameNotFound      = errors.New("game not found")
	ErrOutOfBounds       = errors.New("point is out of bounds")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)
