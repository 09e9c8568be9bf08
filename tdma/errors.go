// Package tdma: sentinel error set.
// Configuration errors are detected at plan creation or solve entry,
// before any communication is issued. Callers match via errors.Is.

package tdma

import "errors"

var (
	// ErrNilCommunicator indicates a nil communicator at plan creation.
	ErrNilCommunicator = errors.New("tdma: communicator is nil")

	// ErrBadPartition indicates an impossible range partition:
	// p <= 0 or n < p.
	ErrBadPartition = errors.New("tdma: bad partition")

	// ErrInvalidRank indicates a rank outside [0, p).
	ErrInvalidRank = errors.New("tdma: rank out of range")

	// ErrInvalidGatherRank indicates a gather rank outside [0, Size()).
	ErrInvalidGatherRank = errors.New("tdma: gather rank out of range")

	// ErrBlockTooSmall indicates a local block of fewer than three rows.
	// The modified-Thomas reduction needs n >= 3, so such partitions are
	// rejected when the plan is created.
	ErrBlockTooSmall = errors.New("tdma: local block needs at least 3 rows")

	// ErrBadBatch indicates a non-positive number of systems at Many
	// plan creation.
	ErrBadBatch = errors.New("tdma: batch size must be positive")

	// ErrShapeMismatch indicates that a solve call's slice lengths do
	// not match the shapes the plan was created with.
	ErrShapeMismatch = errors.New("tdma: solve shape differs from plan")

	// ErrPlanClosed indicates use of a plan after Close.
	ErrPlanClosed = errors.New("tdma: plan is closed")

	// ErrPlanPoisoned indicates use of a plan after a transport failure.
	// The plan must be closed; the solve that observed the failure
	// already returned the underlying error.
	ErrPlanPoisoned = errors.New("tdma: plan poisoned by transport failure")
)
