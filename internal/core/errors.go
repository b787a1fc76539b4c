package core

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned by writes outside the grid or writes of the
	// wall material.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrUnknownAutomaton is returned when no factory is registered under a
	// requested name.
	ErrUnknownAutomaton = errors.New("unknown automaton")
)
