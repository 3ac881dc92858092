package apperror

import "errors"

var (
	ErrOutOfBounds        = errors.New("move out of bounds")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrNoLegalMoves       = errors.New("no legal moves")
	ErrInvalidMark        = errors.New("invalid mark")
	ErrDuplicateMark      = errors.New("players must use distinct marks")
	ErrUnknownMark        = errors.New("mark does not belong to this board")
	ErrUnknownPlayerKind  = errors.New("unknown player type")
	ErrGameFinished       = errors.New("game is already finished")
	ErrInvariantViolation = errors.New("internal invariant violated")

	ErrCorruptResume    = errors.New("cannot resume saved game")
	ErrSnapshotNotFound = errors.New("no saved game found")
	ErrAutoSave         = errors.New("auto-save failed")

	ErrInvalidInput = errors.New("invalid input")
)
