package tridiag

// Solve runs the Thomas algorithm in place on one tridiagonal system
//
//	a[i]·x[i-1] + b[i]·x[i] + c[i]·x[i+1] = d[i]
//
// On return d holds the solution and c holds normalized upper
// coefficients; a and b are left untouched. a[0] is never read and
// c[n-1] never enters the solution, so wrap entries from a cyclic
// formulation are ignored.
//
// Algorithm outline:
//  1. Forward sweep: normalize row 0 by b[0]; for i = 1..n-1 divide by
//     the pivot b[i] − a[i]·c'[i-1] and eliminate a[i].
//  2. Back sweep: d[i] −= c'[i]·d[i+1] for i = n-2..0.
//
// Complexity: O(n) time, O(1) extra memory.
//
// Errors:
//   - ErrShapeMismatch    — slice lengths disagree.
//   - ErrEmptySystem      — n == 0.
//   - ErrNumericalBreakdown — a pivot fell below the epsilon; the
//     solve still completed with the pivot clamped.
func Solve(a, b, c, d []float64, opts ...Option) error {
	n := len(d)
	if len(a) != n || len(b) != n || len(c) != n {
		return ErrShapeMismatch
	}
	if n == 0 {
		return ErrEmptySystem
	}
	o := gatherOptions(opts...)

	var broke bool
	r := 1 / o.guard(b[0], &broke)
	d[0] *= r
	c[0] *= r
	for i := 1; i < n; i++ {
		r = 1 / o.guard(b[i]-a[i]*c[i-1], &broke)
		d[i] = r * (d[i] - a[i]*d[i-1])
		c[i] = r * c[i]
	}
	for i := n - 2; i >= 0; i-- {
		d[i] -= c[i] * d[i+1]
	}

	if broke {
		return ErrNumericalBreakdown
	}
	return nil
}
