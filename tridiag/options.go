// Package tridiag: functional configuration for the numeric policy.
// Defaults are documented constants (single source of truth); public
// kernels accept ...Option and resolve them via gatherOptions.

package tridiag

import "math"

// DefaultPivotEpsilon is the default lower bound on pivot magnitude.
// It guards the divisions only: diagonally dominant inputs never come
// near it, and a genuine zero pivot is clamped rather than producing
// Inf/NaN. Breakdown is still reported via ErrNumericalBreakdown.
const DefaultPivotEpsilon = 1e-30

const panicPivotEpsilonInvalid = "tridiag: WithPivotEpsilon: eps must be finite and positive"

// Option mutates the kernel options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective numeric policy after applying setters.
type Options struct {
	pivotEps float64
}

// WithPivotEpsilon sets the pivot guard threshold. A pivot p with
// |p| < eps is replaced by eps carrying p's sign (a zero pivot becomes
// +eps) and the kernel reports ErrNumericalBreakdown after finishing.
//
// Panics if eps is not finite and positive (programmer error).
func WithPivotEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicPivotEpsilonInvalid)
	}
	return func(o *Options) { o.pivotEps = eps }
}

// DefaultOptions returns the documented default policy.
func DefaultOptions() Options {
	return Options{pivotEps: DefaultPivotEpsilon}
}

// gatherOptions applies setters on top of defaults, last writer wins.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}
	return o
}

// guard clamps pivot p to the signed epsilon and records breakdown.
// The returned value is always safe to divide by.
func (o Options) guard(p float64, broke *bool) float64 {
	if math.Abs(p) < o.pivotEps {
		*broke = true
		if math.Signbit(p) {
			return -o.pivotEps
		}
		return o.pivotEps
	}
	return p
}
