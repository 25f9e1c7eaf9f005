package session

import "errors"

var (
	// ErrWrongPhase indicates an operation that is not valid in the current phase.
	ErrWrongPhase = errors.New("session: operation not valid in current phase")

	// ErrInvalidCommand indicates a command rejected at the boundary.
	ErrInvalidCommand = errors.New("session: invalid command")

	// ErrPaused indicates a run that cannot make progress because the
	// session is paused and nothing external will resume it.
	ErrPaused = errors.New("session: paused")
)
