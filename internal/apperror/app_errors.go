package apperror

import "errors"

// error kinds.
var (
	ErrInvalidAction        = errors.New("invalid action")
	ErrPreconditionViolated = errors.New("precondition violated")
)

// invalid action causes.
var (
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidCounter = errors.New("counter must be either X or O")
)

// precondition causes.
var (
	ErrGameFinished     = errors.New("game is already finished, call reset before taking further steps")
	ErrGameIsNotStarted = errors.New("game is not started, call reset first")
	ErrNotYourTurn      = errors.New("it's not your turn")
)

var ErrNoAvailableMoves = errors.New("no available moves")
