// Package tridiag: sentinel error set.
// Kernels return these sentinels and tests match them via errors.Is.

package tridiag

import "errors"

var (
	// ErrShapeMismatch indicates that the coefficient slices disagree in
	// length, or that a batch slice length is not nSys*nRow.
	ErrShapeMismatch = errors.New("tridiag: coefficient shape mismatch")

	// ErrEmptySystem indicates a system of zero rows.
	ErrEmptySystem = errors.New("tridiag: empty system")

	// ErrSystemTooSmall indicates a cyclic system with fewer than three
	// rows; the Sherman-Morrison decomposition needs n >= 3.
	ErrSystemTooSmall = errors.New("tridiag: cyclic system needs at least 3 rows")

	// ErrBlockTooSmall indicates a local block of fewer than three rows
	// passed to the modified-Thomas reducer. Partitions producing such
	// blocks must be rejected when the plan is created.
	ErrBlockTooSmall = errors.New("tridiag: reduction block needs at least 3 rows")

	// ErrBadBatch indicates non-positive batch dimensions.
	ErrBadBatch = errors.New("tridiag: batch dimensions must be positive")

	// ErrNumericalBreakdown indicates that a pivot magnitude fell below
	// the configured epsilon. The sweep continued with the pivot clamped
	// to the signed epsilon; the output is complete but suspect, and the
	// caller may choose to reject it (see Residual).
	ErrNumericalBreakdown = errors.New("tridiag: numerical breakdown, pivot below epsilon")
)
