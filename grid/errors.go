package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRow is raised when a cell is declared before any row
	ErrNoRow = errors.New("no row has been started")

	// ErrNoCell is raised when a declaration refers to a cell that does not exist
	ErrNoCell = errors.New("no such cell")

	// ErrTooManyCells is raised when a consumer claims more cells than were declared
	ErrTooManyCells = errors.New("more cells claimed than were pre-allocated")
)

// violation panics with an error wrapping err. Contract violations leave the
// layout in an undefined state, so they are never returned as values.
func violation(err error, format string, args ...any) {
	panic(fmt.Errorf("grid: %w: "+format, append([]any{err}, args...)...))
}
