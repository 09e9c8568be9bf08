package tdma

import (
	"errors"
	"fmt"

	"github.com/cold-young/PaScaL-TDMA/comm"
	"github.com/cold-young/PaScaL-TDMA/tridiag"
)

// Many is the plan for a batch of nSys independent tridiagonal systems
// sharing a solving axis, each partitioned across the communicator's
// ranks. Instead of routing every reduced system to one rank, the
// boundary rows are transposed: rank r ends up owning its partition
// share of the batch as complete reduced systems of length 2·P, solves
// them with the batched kernel, and the solution stream is transposed
// back.
//
// All batch data uses the system-innermost layout of package tridiag:
// row i of system s at index i*nSys + s.
//
// A Many is not safe for concurrent use; see the package doc.
type Many struct {
	comm comm.Communicator
	nSys int
	nRow int
	opts []tridiag.Option

	// nSysRT is this rank's share of reduced systems after the block
	// transpose: len(Partition(nSys, P, rank)).
	nSysRT int

	// Transpose descriptors, one pair per peer. sendL[k] is the tile of
	// the (2 × nSys) boundary scratch holding the systems owned by peer
	// k; recvL[r] is the stripe of the (2·P × nSysRT) transposed
	// scratch at column pair r. The inverse transpose swaps the two
	// sets. Immutable for the plan's lifetime.
	sendL, recvL []comm.Layout

	// Boundary summary scratch per stream: plane 0 holds row 0 of every
	// system, plane 1 holds row nRow-1, each plane nSys wide.
	bndA, bndB, bndC, bndD []float64

	// Transposed reduced scratch per stream, nSysRT systems of 2·P
	// rows.
	rtA, rtB, rtC, rtD []float64

	closed   bool
	poisoned bool
}

// NewMany creates the plan for a many-systems solve. nSys is the
// number of independent systems held by every rank and nRow the local
// block length along the solving axis; nRow must be at least 3 and
// nSys at least the number of ranks (every rank must own a nonempty
// share of the reduced systems). Creation is collective: it allgathers
// the per-rank tile heights to build the transpose descriptors.
//
// Errors: ErrNilCommunicator, ErrBadBatch, ErrBlockTooSmall,
// ErrBadPartition, or a wrapped transport error.
func NewMany(c comm.Communicator, nSys, nRow int, opts ...tridiag.Option) (*Many, error) {
	if c == nil {
		return nil, ErrNilCommunicator
	}
	if nSys <= 0 {
		return nil, ErrBadBatch
	}
	if nRow < 3 {
		return nil, ErrBlockTooSmall
	}
	p := &Many{comm: c, nSys: nSys, nRow: nRow, opts: opts}

	np := c.Size()
	if np == 1 {
		// Degenerate world: the solve runs the serial batched kernel
		// directly, so no scratch or descriptors are needed.
		p.nSysRT = nSys
		return p, nil
	}

	lo, hi, err := Partition(nSys, np, c.Rank())
	if err != nil {
		return nil, err
	}
	p.nSysRT = hi - lo

	tiles, err := c.AllGather(p.nSysRT, tagPlanCreate)
	if err != nil {
		return nil, fmt.Errorf("tdma: gathering tile heights: %w", err)
	}

	p.sendL = make([]comm.Layout, np)
	p.recvL = make([]comm.Layout, np)
	off := 0
	for k := 0; k < np; k++ {
		p.sendL[k] = comm.Layout{Offset: off, Rows: 2, Cols: tiles[k], Stride: nSys}
		p.recvL[k] = comm.Layout{Offset: 2 * k * p.nSysRT, Rows: 1, Cols: 2 * p.nSysRT, Stride: 2 * p.nSysRT}
		off += tiles[k]
	}

	p.bndA = make([]float64, 2*nSys)
	p.bndB = make([]float64, 2*nSys)
	p.bndC = make([]float64, 2*nSys)
	p.bndD = make([]float64, 2*nSys)

	m := p.nSysRT * 2 * np
	p.rtA = make([]float64, m)
	p.rtB = make([]float64, m)
	p.rtC = make([]float64, m)
	p.rtD = make([]float64, m)

	return p, nil
}

// Solve solves the whole batch in place: on return d holds the local
// slices of every system's solution, and a, b, c hold reduction state.
// Slice lengths must be nSys*nRow. All ranks must enter Solve
// collectively.
//
// Errors: ErrPlanClosed, ErrPlanPoisoned, ErrShapeMismatch,
// tridiag.ErrNumericalBreakdown (solutions completed but suspect), or
// a wrapped transport error (plan poisoned).
func (p *Many) Solve(a, b, c, d []float64) error {
	return p.solve(a, b, c, d, false)
}

// SolveCyclic solves the periodic variant: per system, a[s] on rank 0
// and c[(nRow-1)*nSys+s] on the last rank are the wrap couplings. The
// owned reduced systems are solved with the cyclic batched kernel;
// everything else matches Solve.
func (p *Many) SolveCyclic(a, b, c, d []float64) error {
	return p.solve(a, b, c, d, true)
}

func (p *Many) solve(a, b, c, d []float64, cyclic bool) error {
	n := p.nSys * p.nRow
	switch {
	case p.closed:
		return ErrPlanClosed
	case p.poisoned:
		return ErrPlanPoisoned
	case len(a) != n || len(b) != n || len(c) != n || len(d) != n:
		return ErrShapeMismatch
	}

	// Degenerate world: serial batched kernel, no collectives.
	if p.comm.Size() == 1 {
		if cyclic {
			return tridiag.SolveCyclicBatch(a, b, c, d, p.nSys, p.nRow, p.opts...)
		}
		return tridiag.SolveBatch(a, b, c, d, p.nSys, p.nRow, p.opts...)
	}

	var breakdown error
	if err := tridiag.ReduceBatch(a, b, c, d, p.nSys, p.nRow, p.opts...); err != nil {
		if !errors.Is(err, tridiag.ErrNumericalBreakdown) {
			return err
		}
		breakdown = err
	}

	// Boundary summary: rows 0 and nRow-1 of every stream.
	last := (p.nRow - 1) * p.nSys
	copy(p.bndA[:p.nSys], a[:p.nSys])
	copy(p.bndA[p.nSys:], a[last:])
	copy(p.bndB[:p.nSys], b[:p.nSys])
	copy(p.bndB[p.nSys:], b[last:])
	copy(p.bndC[:p.nSys], c[:p.nSys])
	copy(p.bndC[p.nSys:], c[last:])
	copy(p.bndD[:p.nSys], d[:p.nSys])
	copy(p.bndD[p.nSys:], d[last:])

	// Four concurrent stream transposes, one join.
	err := comm.WaitAll(
		p.comm.Ialltoall(p.bndA, p.rtA, p.sendL, p.recvL, tagStreamA),
		p.comm.Ialltoall(p.bndB, p.rtB, p.sendL, p.recvL, tagStreamB),
		p.comm.Ialltoall(p.bndC, p.rtC, p.sendL, p.recvL, tagStreamC),
		p.comm.Ialltoall(p.bndD, p.rtD, p.sendL, p.recvL, tagStreamD),
	)
	if err != nil {
		p.poisoned = true
		return fmt.Errorf("tdma: transposing reduced systems: %w", err)
	}

	// Solve the owned reduced systems, nSysRT of length 2·P each.
	if cyclic {
		err = tridiag.SolveCyclicBatch(p.rtA, p.rtB, p.rtC, p.rtD, p.nSysRT, 2*p.comm.Size(), p.opts...)
	} else {
		err = tridiag.SolveBatch(p.rtA, p.rtB, p.rtC, p.rtD, p.nSysRT, 2*p.comm.Size(), p.opts...)
	}
	if err != nil && breakdown == nil {
		breakdown = err
	}

	// Inverse transpose on the solution stream only: swap the
	// descriptor sets.
	if err := p.comm.Ialltoall(p.rtD, p.bndD, p.recvL, p.sendL, tagSolution).Wait(); err != nil {
		p.poisoned = true
		return fmt.Errorf("tdma: returning solutions: %w", err)
	}

	tridiag.BackSubstituteBatch(a, c, d, p.nSys, p.nRow, p.bndD[:p.nSys], p.bndD[p.nSys:])

	return breakdown
}

// Close releases the plan's scratch and descriptors. Every rank must
// call Close collectively, after its last solve. Closing twice returns
// ErrPlanClosed.
func (p *Many) Close() error {
	if p.closed {
		return ErrPlanClosed
	}
	p.closed = true
	p.sendL, p.recvL = nil, nil
	p.bndA, p.bndB, p.bndC, p.bndD = nil, nil, nil, nil
	p.rtA, p.rtB, p.rtC, p.rtD = nil, nil, nil, nil
	return nil
}
