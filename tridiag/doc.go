// Package tridiag provides serial tridiagonal kernels: the Thomas
// algorithm, its cyclic (periodic) variant, batched forms of both, and
// the modified-Thomas reduction that prepares a partitioned block for
// the parallel solver in package tdma.
//
// 🚀 What lives here?
//
//	Every kernel operates in place on four caller-owned coefficient
//	slices a, b, c, d (lower, diagonal, upper, right-hand side):
//	  • Solve            — Thomas elimination; d becomes the solution
//	  • SolveCyclic      — wrap-coupled system via Sherman-Morrison
//	  • SolveBatch / SolveCyclicBatch — many independent systems at once
//	  • Reduce / ReduceBatch — eliminate a local block down to a
//	    two-row boundary system (first and last row couplings only)
//	  • BackSubstitute / BackSubstituteBatch — lift a reduced solution
//	    back to the interior rows
//	  • Residual / CyclicResidual — ‖T·x − d‖₂ validation helpers
//
// Batched kernels use the system-innermost layout: a batch of nSys
// systems of nRow rows is a single slice of length nSys*nRow where row
// i of system s lives at index i*nSys + s. The inner loop over systems
// is contiguous, which is the intended axis for any vectorization or
// intra-process threading.
//
// Numeric policy:
//
//	The matrices are assumed diagonally dominant or SPD; there is no
//	pivoting. A pivot whose magnitude falls below the configured
//	epsilon (WithPivotEpsilon, default DefaultPivotEpsilon) is replaced
//	by the signed epsilon, the sweep continues, and the kernel returns
//	ErrNumericalBreakdown. Callers that receive the error can either
//	reject the output or validate it with Residual.
package tridiag
