package tdma

import (
	"errors"
	"fmt"

	"github.com/cold-young/PaScaL-TDMA/comm"
	"github.com/cold-young/PaScaL-TDMA/tridiag"
)

// Single is the plan for one global tridiagonal system partitioned
// across the communicator's ranks. Every rank reduces its local block
// to two boundary rows; the boundary rows of all ranks are gathered to
// the plan's gather rank, which solves the reduced system of 2·P rows
// and scatters the per-rank endpoints back.
//
// A Single is not safe for concurrent use; see the package doc.
type Single struct {
	comm       comm.Communicator
	gatherRank int
	nRow       int
	opts       []tridiag.Option

	// Boundary summary scratch, two values per coefficient stream.
	bndA, bndB, bndC, bndD []float64

	// Gathered reduced system of 2·P rows, allocated on the gather
	// rank only.
	redA, redB, redC, redD []float64

	closed   bool
	poisoned bool
}

// NewSingle creates the plan for a single-system solve. nRow is the
// caller's local block length and must be at least 3; every rank must
// call NewSingle collectively with the same gatherRank. Options set
// the numeric policy of the underlying kernels.
//
// Errors: ErrNilCommunicator, ErrInvalidGatherRank, ErrBlockTooSmall.
func NewSingle(c comm.Communicator, gatherRank, nRow int, opts ...tridiag.Option) (*Single, error) {
	if c == nil {
		return nil, ErrNilCommunicator
	}
	if gatherRank < 0 || gatherRank >= c.Size() {
		return nil, ErrInvalidGatherRank
	}
	if nRow < 3 {
		return nil, ErrBlockTooSmall
	}
	p := &Single{
		comm:       c,
		gatherRank: gatherRank,
		nRow:       nRow,
		opts:       opts,
		bndA:       make([]float64, 2),
		bndB:       make([]float64, 2),
		bndC:       make([]float64, 2),
		bndD:       make([]float64, 2),
	}
	if c.Rank() == gatherRank && c.Size() > 1 {
		m := 2 * c.Size()
		p.redA = make([]float64, m)
		p.redB = make([]float64, m)
		p.redC = make([]float64, m)
		p.redD = make([]float64, m)
	}
	return p, nil
}

// Solve solves the partitioned system in place: on return d holds the
// local slice of the global solution, and a, b, c hold reduction state.
// All ranks must enter Solve collectively.
//
// Errors: ErrPlanClosed, ErrPlanPoisoned, ErrShapeMismatch,
// tridiag.ErrNumericalBreakdown (solution completed but suspect), or a
// wrapped transport error (plan poisoned).
func (p *Single) Solve(a, b, c, d []float64) error {
	return p.solve(a, b, c, d, false)
}

// SolveCyclic solves the periodic variant: a[0] on rank 0 and c[n-1]
// on the last rank are the wrap couplings of the global system. The
// reduced system is solved with the cyclic kernel; everything else
// matches Solve.
func (p *Single) SolveCyclic(a, b, c, d []float64) error {
	return p.solve(a, b, c, d, true)
}

func (p *Single) solve(a, b, c, d []float64, cyclic bool) error {
	switch {
	case p.closed:
		return ErrPlanClosed
	case p.poisoned:
		return ErrPlanPoisoned
	case len(a) != p.nRow || len(b) != p.nRow || len(c) != p.nRow || len(d) != p.nRow:
		return ErrShapeMismatch
	}

	// Degenerate world: no peers, no reduced system, no collectives.
	if p.comm.Size() == 1 {
		if cyclic {
			return tridiag.SolveCyclic(a, b, c, d, p.opts...)
		}
		return tridiag.Solve(a, b, c, d, p.opts...)
	}

	var breakdown error
	if err := tridiag.Reduce(a, b, c, d, p.opts...); err != nil {
		if !errors.Is(err, tridiag.ErrNumericalBreakdown) {
			return err
		}
		breakdown = err
	}

	n := p.nRow
	p.bndA[0], p.bndA[1] = a[0], a[n-1]
	p.bndB[0], p.bndB[1] = b[0], b[n-1]
	p.bndC[0], p.bndC[1] = c[0], c[n-1]
	p.bndD[0], p.bndD[1] = d[0], d[n-1]

	// Four concurrent stream gathers, one join.
	err := comm.WaitAll(
		p.comm.Igather(p.bndA, p.redA, p.gatherRank, tagStreamA),
		p.comm.Igather(p.bndB, p.redB, p.gatherRank, tagStreamB),
		p.comm.Igather(p.bndC, p.redC, p.gatherRank, tagStreamC),
		p.comm.Igather(p.bndD, p.redD, p.gatherRank, tagStreamD),
	)
	if err != nil {
		p.poisoned = true
		return fmt.Errorf("tdma: gathering reduced system: %w", err)
	}

	if p.comm.Rank() == p.gatherRank {
		if cyclic {
			err = tridiag.SolveCyclic(p.redA, p.redB, p.redC, p.redD, p.opts...)
		} else {
			err = tridiag.Solve(p.redA, p.redB, p.redC, p.redD, p.opts...)
		}
		if err != nil && breakdown == nil {
			breakdown = err
		}
	}

	if err := p.comm.Iscatter(p.redD, p.bndD, p.gatherRank, tagSolution).Wait(); err != nil {
		p.poisoned = true
		return fmt.Errorf("tdma: scattering solution: %w", err)
	}

	tridiag.BackSubstitute(a, c, d, p.bndD[0], p.bndD[1])

	return breakdown
}

// Close releases the plan's scratch. Every rank must call Close
// collectively, after its last solve. Closing twice returns
// ErrPlanClosed.
func (p *Single) Close() error {
	if p.closed {
		return ErrPlanClosed
	}
	p.closed = true
	p.bndA, p.bndB, p.bndC, p.bndD = nil, nil, nil, nil
	p.redA, p.redB, p.redC, p.redD = nil, nil, nil, nil
	return nil
}
