package tridiag

// Batched kernels: nSys independent systems of nRow rows, stored
// system-innermost. Row i of system s lives at index i*nSys + s, so
// the inner loop over systems walks contiguous memory. Semantics are
// pointwise identical to applying the scalar kernel to each system.

// checkBatch validates batch dimensions and slice lengths.
func checkBatch(a, b, c, d []float64, nSys, nRow int) error {
	if nSys <= 0 || nRow <= 0 {
		return ErrBadBatch
	}
	n := nSys * nRow
	if len(a) != n || len(b) != n || len(c) != n || len(d) != n {
		return ErrShapeMismatch
	}
	return nil
}

// SolveBatch runs the Thomas algorithm on every system of the batch in
// place. On return d holds the solutions and c the normalized upper
// coefficients. See Solve for the per-system contract.
//
// Errors: ErrBadBatch, ErrShapeMismatch, ErrNumericalBreakdown (if any
// system broke down; all systems are still completed).
func SolveBatch(a, b, c, d []float64, nSys, nRow int, opts ...Option) error {
	if err := checkBatch(a, b, c, d, nSys, nRow); err != nil {
		return err
	}
	o := gatherOptions(opts...)

	var broke bool
	for s := 0; s < nSys; s++ {
		r := 1 / o.guard(b[s], &broke)
		d[s] *= r
		c[s] *= r
	}
	for i := 1; i < nRow; i++ {
		row, prev := i*nSys, (i-1)*nSys
		for s := 0; s < nSys; s++ {
			r := 1 / o.guard(b[row+s]-a[row+s]*c[prev+s], &broke)
			d[row+s] = r * (d[row+s] - a[row+s]*d[prev+s])
			c[row+s] = r * c[row+s]
		}
	}
	for i := nRow - 2; i >= 0; i-- {
		row, next := i*nSys, (i+1)*nSys
		for s := 0; s < nSys; s++ {
			d[row+s] -= c[row+s] * d[next+s]
		}
	}

	if broke {
		return ErrNumericalBreakdown
	}
	return nil
}

// SolveCyclicBatch runs the cyclic kernel on every system of the batch
// in place; a[0·nSys+s] and c[(nRow-1)·nSys+s] are the wrap couplings
// of system s. See SolveCyclic for the per-system contract.
//
// Errors: ErrBadBatch, ErrShapeMismatch, ErrSystemTooSmall (nRow < 3),
// ErrNumericalBreakdown.
func SolveCyclicBatch(a, b, c, d []float64, nSys, nRow int, opts ...Option) error {
	if err := checkBatch(a, b, c, d, nSys, nRow); err != nil {
		return err
	}
	if nRow < 3 {
		return ErrSystemTooSmall
	}
	o := gatherOptions(opts...)
	last := (nRow - 1) * nSys

	var broke bool

	// Per-system Sherman-Morrison setup, vectorized over the batch.
	gam := make([]float64, nSys)
	bb := make([]float64, nSys*nRow)
	copy(bb, b)
	for s := 0; s < nSys; s++ {
		gam[s] = o.guard(-b[s], &broke)
		bb[s] = b[s] - gam[s]
		bb[last+s] = b[last+s] - a[s]*c[last+s]/gam[s]
	}

	// T'·y = d.
	cw := make([]float64, nSys*nRow)
	copy(cw, c)
	if err := SolveBatch(a, bb, cw, d, nSys, nRow, opts...); err != nil {
		broke = true
	}

	// T'·z = u, u = (γ, 0, …, 0, β) per system.
	z := make([]float64, nSys*nRow)
	for s := 0; s < nSys; s++ {
		z[s] = gam[s]
		z[last+s] = c[last+s]
	}
	copy(cw, c)
	if err := SolveBatch(a, bb, cw, z, nSys, nRow, opts...); err != nil {
		broke = true
	}

	f := make([]float64, nSys)
	for s := 0; s < nSys; s++ {
		ag := a[s] / gam[s]
		vy := d[s] + ag*d[last+s]
		vz := z[s] + ag*z[last+s]
		f[s] = vy / o.guard(1+vz, &broke)
	}
	for i := 0; i < nRow; i++ {
		row := i * nSys
		for s := 0; s < nSys; s++ {
			d[row+s] -= f[s] * z[row+s]
		}
	}

	if broke {
		return ErrNumericalBreakdown
	}
	return nil
}
