package apperror

import "errors"

var (
	ErrInvalidColumn     = errors.New("invalid column index")
	ErrInvalidCell       = errors.New("invalid cell coordinates")
	ErrColumnFull        = errors.New("column is full")
	ErrGameOver          = errors.New("game is already over")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrGameNotFound      = errors.New("game not found")
)

// IsRejection reports whether err is a move the rules refused. The game
// state is untouched in that case.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidColumn) ||
		errors.Is(err, ErrInvalidCell) ||
		errors.Is(err, ErrColumnFull) ||
		errors.Is(err, ErrGameOver)
}
