package tdma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/cold-young/PaScaL-TDMA/comm"
	"github.com/cold-young/PaScaL-TDMA/tdma"
	"github.com/cold-young/PaScaL-TDMA/tridiag"
)

// TestNewSingle_Validation verifies configuration errors at creation.
func TestNewSingle_Validation(t *testing.T) {
	w := comm.NewWorld(2)
	defer w.Close()
	c, err := w.Comm(0)
	require.NoError(t, err)

	_, err = tdma.NewSingle(nil, 0, 5)
	assert.ErrorIs(t, err, tdma.ErrNilCommunicator)
	_, err = tdma.NewSingle(c, 2, 5)
	assert.ErrorIs(t, err, tdma.ErrInvalidGatherRank)
	_, err = tdma.NewSingle(c, 0, 2)
	assert.ErrorIs(t, err, tdma.ErrBlockTooSmall)
}

// TestSingle_TwoRanks is the first end-to-end scenario: P = 2, N = 10,
// constant coefficients a = c = 1, b = 2, random right-hand side built
// from a known solution. ‖D−x‖₂/N must stay below 1e-14, checked on
// the squared norm as ‖D−x‖₂² < (1e-14·N)².
func TestSingle_TwoRanks(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	const n = 10
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()
	}
	a, b, c, d := constSystem(1, 2, 1, x)

	got := solveSingleParallel(t, 2, 0, a, b, c, d, false)
	var sum float64
	for i := range x {
		diff := got[i] - x[i]
		sum += diff * diff
	}
	assert.Less(t, sum, (1e-14*n)*(1e-14*n), "‖D−x‖₂/N too large")
}

// TestSingle_MatchesSerial verifies parallel/serial agreement on random
// systems for several process counts and gather ranks.
func TestSingle_MatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	const n = 257
	a, b, c, d, x := globalSystem(n, rng, false)

	for _, p := range []int{1, 2, 3, 5, 8} {
		gather := (p - 1) / 2
		got := solveSingleParallel(t, p, gather, a, b, c, d, false)
		for i := range x {
			assert.InDelta(t, x[i], got[i], 1e-10, "p=%d row %d", p, i)
		}
	}
}

// TestSingle_ScalingInvariance verifies that P and 2·P runs over the
// same data agree far below the solve tolerance.
func TestSingle_ScalingInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	const n = 120
	a, b, c, d, _ := globalSystem(n, rng, false)

	got2 := solveSingleParallel(t, 2, 0, a, b, c, d, false)
	got4 := solveSingleParallel(t, 4, 0, a, b, c, d, false)
	for i := 0; i < n; i++ {
		assert.InDelta(t, got2[i], got4[i], 1e-11, "row %d", i)
	}
}

// TestSingle_Cyclic solves a periodic diagonally dominant system with
// random coefficients and checks the residual of the returned solution
// (scenario S5).
func TestSingle_Cyclic(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	const n = 10
	a, b, c, d, x := globalSystem(n, rng, true)

	got := solveSingleParallel(t, 2, 0, a, b, c, d, true)
	for i := range x {
		assert.InDelta(t, x[i], got[i], 1e-12, "row %d", i)
	}
	assert.Less(t, tridiag.CyclicResidual(a, b, c, d, got), 1e-12)
}

// TestSingle_DegenerateWorld verifies the P = 1 bypass matches the
// serial kernel bit-exactly (scenario S6).
func TestSingle_DegenerateWorld(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	const n = 33
	a, b, c, d, _ := globalSystem(n, rng, false)

	ref := serialReference(t, [][]float64{a}, [][]float64{b}, [][]float64{c}, [][]float64{d}, false)[0]
	got := solveSingleParallel(t, 1, 0, a, b, c, d, false)
	assert.Equal(t, ref, got, "P=1 must bypass collectives and match the serial kernel exactly")
}

// TestSingle_PlanReuse verifies that two successive solves on one plan
// with identical inputs produce identical outputs (idempotent reuse).
func TestSingle_PlanReuse(t *testing.T) {
	rng := rand.New(rand.NewSource(25))
	const n, p = 64, 4
	a, b, c, d, _ := globalSystem(n, rng, false)

	first := make([]float64, n)
	second := make([]float64, n)

	err := comm.Run(p, func(cm *comm.Comm) error {
		lo, hi, err := tdma.Partition(n, p, cm.Rank())
		if err != nil {
			return err
		}
		plan, err := tdma.NewSingle(cm, 0, hi-lo)
		if err != nil {
			return err
		}
		defer plan.Close()

		for _, out := range [][]float64{first, second} {
			la, lb, lc, ld := block(a, lo, hi), block(b, lo, hi), block(c, lo, hi), block(d, lo, hi)
			if err := plan.Solve(la, lb, lc, ld); err != nil {
				return err
			}
			copy(out[lo:hi], ld)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestSingle_SolveValidation verifies solve-entry configuration errors
// and closed-plan behavior.
func TestSingle_SolveValidation(t *testing.T) {
	w := comm.NewWorld(1)
	defer w.Close()
	c, err := w.Comm(0)
	require.NoError(t, err)

	plan, err := tdma.NewSingle(c, 0, 5)
	require.NoError(t, err)

	short := make([]float64, 4)
	full := make([]float64, 5)
	assert.ErrorIs(t, plan.Solve(short, full, full, full), tdma.ErrShapeMismatch)

	require.NoError(t, plan.Close())
	assert.ErrorIs(t, plan.Solve(full, full, full, full), tdma.ErrPlanClosed)
	assert.ErrorIs(t, plan.Close(), tdma.ErrPlanClosed)
}
