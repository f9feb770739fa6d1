package apperror

import "errors"

var (
	ErrGameNotActive = errors.New("game is not active")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell coordinates")
	ErrInvalidMark   = errors.New("invalid player mark")
)
