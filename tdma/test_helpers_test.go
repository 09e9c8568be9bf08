package tdma_test

// Shared fixtures for the plan tests: global system builders, block
// slicing along the solving axis, and SPMD drivers over the in-process
// world.

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/cold-young/PaScaL-TDMA/comm"
	"github.com/cold-young/PaScaL-TDMA/tdma"
	"github.com/cold-young/PaScaL-TDMA/tridiag"
)

// globalSystem builds one n-row diagonally dominant system with known
// solution x and d = T·x; a[0] and c[n-1] are zero (or the wrap
// couplings when cyclic).
func globalSystem(n int, rng *rand.Rand, cyclic bool) (a, b, c, d, x []float64) {
	a = make([]float64, n)
	b = make([]float64, n)
	c = make([]float64, n)
	d = make([]float64, n)
	x = make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = -1 + 0.1*rng.Float64()
		c[i] = -1 + 0.1*rng.Float64()
		b[i] = 3 + rng.Float64()
		x[i] = rng.Float64()
	}
	if !cyclic {
		a[0] = 0
		c[n-1] = 0
	}
	for i := 0; i < n; i++ {
		prev, next := i-1, i+1
		if prev < 0 {
			prev = n - 1
		}
		if next == n {
			next = 0
		}
		d[i] = a[i]*x[prev] + b[i]*x[i] + c[i]*x[next]
	}
	return a, b, c, d, x
}

// constSystem builds the constant-coefficient system of the end-to-end
// scenarios: a = av, b = bv, c = cv with zeroed outer couplings, known
// solution x and d = T·x.
func constSystem(av, bv, cv float64, x []float64) (a, b, c, d []float64) {
	n := len(x)
	a = make([]float64, n)
	b = make([]float64, n)
	c = make([]float64, n)
	d = make([]float64, n)
	for i := 0; i < n; i++ {
		a[i], b[i], c[i] = av, bv, cv
	}
	a[0] = 0
	c[n-1] = 0
	for i := 0; i < n; i++ {
		d[i] = b[i] * x[i]
		if i > 0 {
			d[i] += a[i] * x[i-1]
		}
		if i < n-1 {
			d[i] += c[i] * x[i+1]
		}
	}
	return a, b, c, d
}

// block clones v[lo:hi] so each rank owns private coefficient storage.
func block(v []float64, lo, hi int) []float64 {
	out := make([]float64, hi-lo)
	copy(out, v[lo:hi])
	return out
}

// solveSingleParallel solves one global system across p in-process
// ranks with a Single plan and returns the assembled solution.
func solveSingleParallel(t *testing.T, p, gatherRank int, a, b, c, d []float64, cyclic bool) []float64 {
	t.Helper()
	n := len(d)
	out := make([]float64, n)
	var mu sync.Mutex

	err := comm.Run(p, func(cm *comm.Comm) error {
		lo, hi, err := tdma.Partition(n, p, cm.Rank())
		if err != nil {
			return err
		}
		la, lb, lc, ld := block(a, lo, hi), block(b, lo, hi), block(c, lo, hi), block(d, lo, hi)

		plan, err := tdma.NewSingle(cm, gatherRank, hi-lo)
		if err != nil {
			return err
		}
		defer plan.Close()

		if cyclic {
			err = plan.SolveCyclic(la, lb, lc, ld)
		} else {
			err = plan.Solve(la, lb, lc, ld)
		}
		if err != nil {
			return err
		}

		mu.Lock()
		copy(out[lo:hi], ld)
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	return out
}

// globalBatch builds nSys independent global systems of n rows each
// and returns per-system coefficients plus the known solutions.
func globalBatch(nSys, n int, rng *rand.Rand, cyclic bool) (a, b, c, d, x [][]float64) {
	a = make([][]float64, nSys)
	b = make([][]float64, nSys)
	c = make([][]float64, nSys)
	d = make([][]float64, nSys)
	x = make([][]float64, nSys)
	for s := 0; s < nSys; s++ {
		a[s], b[s], c[s], d[s], x[s] = globalSystem(n, rng, cyclic)
	}
	return a, b, c, d, x
}

// localBatch extracts rank-local batch slices in the system-innermost
// layout: rows [lo, hi) of every system.
func localBatch(global [][]float64, lo, hi int) []float64 {
	nSys := len(global)
	nRow := hi - lo
	out := make([]float64, nSys*nRow)
	for s := 0; s < nSys; s++ {
		for i := 0; i < nRow; i++ {
			out[i*nSys+s] = global[s][lo+i]
		}
	}
	return out
}

// solveManyParallel solves a batch of global systems across p
// in-process ranks with a Many plan and returns the assembled
// per-system solutions.
func solveManyParallel(t *testing.T, p int, a, b, c, d [][]float64, cyclic bool) [][]float64 {
	t.Helper()
	nSys := len(d)
	n := len(d[0])
	out := make([][]float64, nSys)
	for s := range out {
		out[s] = make([]float64, n)
	}
	var mu sync.Mutex

	err := comm.Run(p, func(cm *comm.Comm) error {
		lo, hi, err := tdma.Partition(n, p, cm.Rank())
		if err != nil {
			return err
		}
		la, lb := localBatch(a, lo, hi), localBatch(b, lo, hi)
		lc, ld := localBatch(c, lo, hi), localBatch(d, lo, hi)

		plan, err := tdma.NewMany(cm, nSys, hi-lo)
		if err != nil {
			return err
		}
		defer plan.Close()

		if cyclic {
			err = plan.SolveCyclic(la, lb, lc, ld)
		} else {
			err = plan.Solve(la, lb, lc, ld)
		}
		if err != nil {
			return err
		}

		mu.Lock()
		for s := 0; s < nSys; s++ {
			for i := 0; i < hi-lo; i++ {
				out[s][lo+i] = ld[i*nSys+s]
			}
		}
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	return out
}

// serialReference solves each global system with the serial kernel.
func serialReference(t *testing.T, a, b, c, d [][]float64, cyclic bool) [][]float64 {
	t.Helper()
	out := make([][]float64, len(d))
	for s := range d {
		ca := append([]float64(nil), a[s]...)
		cb := append([]float64(nil), b[s]...)
		cc := append([]float64(nil), c[s]...)
		cd := append([]float64(nil), d[s]...)
		var err error
		if cyclic {
			err = tridiag.SolveCyclic(ca, cb, cc, cd)
		} else {
			err = tridiag.Solve(ca, cb, cc, cd)
		}
		require.NoError(t, err)
		out[s] = cd
	}
	return out
}
