package comm

// Layout describes an immutable strided window into a contiguous
// []float64: Rows runs of Cols consecutive elements, the first run
// starting at Offset, consecutive runs Stride elements apart.
//
// Layouts play the role of typed subarray descriptors in the all-to-all
// block transpose: the plan derives, for every peer, which tile of its
// boundary scratch is sent and which stripe of its transposed scratch
// is received. The transport packs and unpacks around each exchange
// using the layout as the iteration rule, so per-peer counts are always
// one window and displacements are always zero.
//
// A Layout with Rows == 1 is a plain contiguous run; Stride is then
// irrelevant.
type Layout struct {
	// Offset is the index of the first element of the window.
	Offset int

	// Rows is the number of contiguous runs.
	Rows int

	// Cols is the number of elements per run.
	Cols int

	// Stride is the distance, in elements, between starts of
	// consecutive runs. Must be >= Cols when Rows > 1.
	Stride int
}

// Count returns the number of elements the window covers.
func (l Layout) Count() int { return l.Rows * l.Cols }

// fits reports whether the window lies inside an array of length n.
func (l Layout) fits(n int) bool {
	if l.Offset < 0 || l.Rows < 0 || l.Cols < 0 {
		return false
	}
	if l.Rows == 0 || l.Cols == 0 {
		return true
	}
	if l.Rows > 1 && l.Stride < l.Cols {
		return false
	}
	last := l.Offset + (l.Rows-1)*l.Stride + l.Cols
	return last <= n
}

// Pack copies the window out of src into the first Count() elements of
// dst, row by row.
func (l Layout) Pack(src, dst []float64) {
	at := l.Offset
	out := 0
	for r := 0; r < l.Rows; r++ {
		copy(dst[out:out+l.Cols], src[at:at+l.Cols])
		out += l.Cols
		at += l.Stride
	}
}

// Unpack copies the first Count() elements of src into the window of
// dst, row by row. It is the exact inverse of Pack over the same
// layout.
func (l Layout) Unpack(src, dst []float64) {
	at := l.Offset
	in := 0
	for r := 0; r < l.Rows; r++ {
		copy(dst[at:at+l.Cols], src[in:in+l.Cols])
		in += l.Cols
		at += l.Stride
	}
}
