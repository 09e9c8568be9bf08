package tridiag

import "gonum.org/v1/gonum/floats"

// Residual returns ‖T·x − d‖₂ for the non-cyclic tridiagonal matrix T
// given by a, b, c. a[0] and c[n-1] are ignored, mirroring Solve.
//
// This is the companion to the breakdown policy: a caller that received
// ErrNumericalBreakdown can measure how far the clamped solve drifted
// before deciding to reject it.
func Residual(a, b, c, d, x []float64) float64 {
	n := len(d)
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		v := b[i]*x[i] - d[i]
		if i > 0 {
			v += a[i] * x[i-1]
		}
		if i < n-1 {
			v += c[i] * x[i+1]
		}
		r[i] = v
	}
	return floats.Norm(r, 2)
}

// CyclicResidual returns ‖T·x − d‖₂ for the cyclic tridiagonal matrix
// T, with a[0] and c[n-1] taken as the wrap couplings as in
// SolveCyclic.
func CyclicResidual(a, b, c, d, x []float64) float64 {
	n := len(d)
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		prev, next := i-1, i+1
		if prev < 0 {
			prev = n - 1
		}
		if next == n {
			next = 0
		}
		r[i] = a[i]*x[prev] + b[i]*x[i] + c[i]*x[next] - d[i]
	}
	return floats.Norm(r, 2)
}
