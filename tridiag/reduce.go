package tridiag

// Reduce runs the modified Thomas elimination in place on one local
// block of a partitioned tridiagonal system. Afterwards the block's
// unknowns are expressed through its two boundary unknowns only:
//
//	row 0:       x[0]   + a[0]·x[prev] + c[0]·x[n-1] = d[0]
//	row i:       a[i]·x[0] + x[i] + c[i]·x[n-1]      = d[i]   (0 < i < n-1)
//	row n-1:     a[n-1]·x[0] + x[n-1] + c[n-1]·x[next] = d[n-1]
//
// where x[prev] and x[next] are the last unknown of the previous block
// and the first unknown of the next block. The diagonal is normalized
// to one and b is overwritten accordingly; the two boundary rows
// (index 0 and n-1) are the block's contribution to the reduced system.
//
// Algorithm outline:
//  1. Forward sweep: rows 0 and 1 are normalized by their diagonal;
//     for i = 2..n-1, with r = 1/(b[i] − a[i]·c[i-1]),
//     d[i] ← r·(d[i] − a[i]·d[i-1]), c[i] ← r·c[i],
//     a[i] ← −r·a[i]·a[i-1].
//  2. Backward sweep: for i = n-3..1,
//     d[i] ← d[i] − c[i]·d[i+1], a[i] ← a[i] − c[i]·a[i+1],
//     c[i] ← −c[i]·c[i+1].
//  3. Row-0 coupling through row 1: with r = 1/(1 − a[1]·c[0]),
//     d[0] ← r·(d[0] − c[0]·d[1]), a[0] ← r·a[0],
//     c[0] ← −r·c[0]·c[1].
//
// Complexity: O(n) time, O(1) extra memory.
//
// Errors:
//   - ErrShapeMismatch     — slice lengths disagree.
//   - ErrBlockTooSmall     — n < 3.
//   - ErrNumericalBreakdown — a pivot fell below the epsilon; the
//     reduction still completed with the pivot clamped.
func Reduce(a, b, c, d []float64, opts ...Option) error {
	n := len(d)
	if len(a) != n || len(b) != n || len(c) != n {
		return ErrShapeMismatch
	}
	if n < 3 {
		return ErrBlockTooSmall
	}
	o := gatherOptions(opts...)

	var broke bool
	for i := 0; i < 2; i++ {
		r := 1 / o.guard(b[i], &broke)
		a[i] *= r
		c[i] *= r
		d[i] *= r
		b[i] = 1
	}
	for i := 2; i < n; i++ {
		r := 1 / o.guard(b[i]-a[i]*c[i-1], &broke)
		d[i] = r * (d[i] - a[i]*d[i-1])
		c[i] = r * c[i]
		a[i] = -r * a[i] * a[i-1]
		b[i] = 1
	}
	for i := n - 3; i >= 1; i-- {
		d[i] -= c[i] * d[i+1]
		a[i] -= c[i] * a[i+1]
		c[i] = -c[i] * c[i+1]
	}
	r := 1 / o.guard(1-a[1]*c[0], &broke)
	d[0] = r * (d[0] - c[0]*d[1])
	a[0] = r * a[0]
	c[0] = -r * c[0] * c[1]

	if broke {
		return ErrNumericalBreakdown
	}
	return nil
}

// ReduceBatch runs Reduce on every system of a batch in place, in the
// system-innermost layout of SolveBatch. Semantics are pointwise
// identical to calling Reduce on each system.
//
// Errors: ErrBadBatch, ErrShapeMismatch, ErrBlockTooSmall (nRow < 3),
// ErrNumericalBreakdown.
func ReduceBatch(a, b, c, d []float64, nSys, nRow int, opts ...Option) error {
	if err := checkBatch(a, b, c, d, nSys, nRow); err != nil {
		return err
	}
	if nRow < 3 {
		return ErrBlockTooSmall
	}
	o := gatherOptions(opts...)

	var broke bool
	for i := 0; i < 2; i++ {
		row := i * nSys
		for s := 0; s < nSys; s++ {
			r := 1 / o.guard(b[row+s], &broke)
			a[row+s] *= r
			c[row+s] *= r
			d[row+s] *= r
			b[row+s] = 1
		}
	}
	for i := 2; i < nRow; i++ {
		row, prev := i*nSys, (i-1)*nSys
		for s := 0; s < nSys; s++ {
			r := 1 / o.guard(b[row+s]-a[row+s]*c[prev+s], &broke)
			d[row+s] = r * (d[row+s] - a[row+s]*d[prev+s])
			c[row+s] = r * c[row+s]
			a[row+s] = -r * a[row+s] * a[prev+s]
			b[row+s] = 1
		}
	}
	for i := nRow - 3; i >= 1; i-- {
		row, next := i*nSys, (i+1)*nSys
		for s := 0; s < nSys; s++ {
			d[row+s] -= c[row+s] * d[next+s]
			a[row+s] -= c[row+s] * a[next+s]
			c[row+s] = -c[row+s] * c[next+s]
		}
	}
	for s := 0; s < nSys; s++ {
		r := 1 / o.guard(1-a[nSys+s]*c[s], &broke)
		d[s] = r * (d[s] - c[s]*d[nSys+s])
		a[s] = r * a[s]
		c[s] = -r * c[s] * c[nSys+s]
	}

	if broke {
		return ErrNumericalBreakdown
	}
	return nil
}

// BackSubstitute lifts the reduced solution of one block back to its
// interior rows. x0 and xn are the block's boundary unknowns obtained
// from the reduced system; a, c, d must be the outputs of Reduce.
// On return d holds the block's full solution.
func BackSubstitute(a, c, d []float64, x0, xn float64) {
	n := len(d)
	d[0] = x0
	d[n-1] = xn
	for i := 1; i < n-1; i++ {
		d[i] -= a[i]*x0 + c[i]*xn
	}
}

// BackSubstituteBatch lifts the reduced solutions of a batch back to
// the interior rows. x0 and xn hold, per system, the first and last
// boundary unknowns; a, c, d must be the outputs of ReduceBatch.
func BackSubstituteBatch(a, c, d []float64, nSys, nRow int, x0, xn []float64) {
	last := (nRow - 1) * nSys
	copy(d[:nSys], x0)
	copy(d[last:], xn)
	for i := 1; i < nRow-1; i++ {
		row := i * nSys
		for s := 0; s < nSys; s++ {
			d[row+s] -= a[row+s]*x0[s] + c[row+s]*xn[s]
		}
	}
}
