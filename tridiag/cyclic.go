package tridiag

// SolveCyclic solves one cyclic tridiagonal system in place, treating
// a[0] and c[n-1] as the wrap couplings
//
//	a[0]·x[n-1] + b[0]·x[0] + c[0]·x[1]       = d[0]
//	a[n-1]·x[n-2] + b[n-1]·x[n-1] + c[n-1]·x[0] = d[n-1]
//
// with ordinary tridiagonal rows in between. On return d holds T⁻¹·d
// for the cyclic matrix T.
//
// Algorithm outline (Sherman-Morrison two-solve decomposition):
//  1. Write T = T' + u·vᵀ with
//     u = (γ, 0, …, 0, β)ᵀ, v = (1, 0, …, 0, α/γ)ᵀ,
//     where α = a[0], β = c[n-1], γ = −b[0]. T' is non-cyclic with
//     b'[0] = b[0] − γ and b'[n-1] = b[n-1] − α·β/γ.
//  2. Solve T'·y = d and T'·z = u with the non-cyclic kernel.
//  3. Combine: x = y − z·(v·y)/(1 + v·z).
//
// Complexity: O(n) time, O(n) scratch for the correction solve.
//
// Errors:
//   - ErrShapeMismatch     — slice lengths disagree.
//   - ErrSystemTooSmall    — n < 3.
//   - ErrNumericalBreakdown — a pivot (in either sub-solve) or the
//     Sherman-Morrison denominator fell below the epsilon; the solve
//     still completed with the offending value clamped.
func SolveCyclic(a, b, c, d []float64, opts ...Option) error {
	n := len(d)
	if len(a) != n || len(b) != n || len(c) != n {
		return ErrShapeMismatch
	}
	if n < 3 {
		return ErrSystemTooSmall
	}
	o := gatherOptions(opts...)

	alpha := a[0]
	beta := c[n-1]
	gamma := -b[0]

	var broke bool
	g := o.guard(gamma, &broke)

	bb := make([]float64, n)
	copy(bb, b)
	bb[0] = b[0] - g
	bb[n-1] = b[n-1] - alpha*beta/g

	// T'·y = d, reusing d in place; the upper diagonal is consumed by
	// the sweep, so each sub-solve gets its own copy.
	cw := make([]float64, n)
	copy(cw, c)
	if err := Solve(a, bb, cw, d, opts...); err != nil {
		broke = true
	}

	// T'·z = u.
	z := make([]float64, n)
	z[0] = g
	z[n-1] = beta
	copy(cw, c)
	if err := Solve(a, bb, cw, z, opts...); err != nil {
		broke = true
	}

	vy := d[0] + alpha/g*d[n-1]
	vz := z[0] + alpha/g*z[n-1]
	f := vy / o.guard(1+vz, &broke)
	for i := 0; i < n; i++ {
		d[i] -= f * z[i]
	}

	if broke {
		return ErrNumericalBreakdown
	}
	return nil
}
