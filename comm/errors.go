// Package comm: sentinel error set.
// All operations return these sentinels and callers match them via
// errors.Is. Wrap with fmt.Errorf("ctx: %w", ErrX) only at boundaries.

package comm

import "errors"

var (
	// ErrShapeMismatch indicates that a buffer length is inconsistent with
	// the collective: a gather whose receive buffer is not Size() times the
	// contribution, a layout that does not fit its array, or an incoming
	// message whose length differs from the receive window.
	ErrShapeMismatch = errors.New("comm: buffer shape mismatch")

	// ErrInvalidRoot indicates a root rank outside [0, Size()).
	ErrInvalidRoot = errors.New("comm: invalid root rank")

	// ErrInvalidRank indicates a rank outside [0, Size()).
	ErrInvalidRank = errors.New("comm: invalid rank")

	// ErrClosed indicates an operation on a World that has been shut down.
	// A request completing with ErrClosed poisons the plan that issued it.
	ErrClosed = errors.New("comm: world is closed")
)
