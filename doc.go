// Package pascaltdma solves large tridiagonal linear systems that are
// partitioned across many compute processes, using a parallel reduction
// of the Thomas algorithm.
//
// 🚀 What is PaScaL-TDMA?
//
//	A distributed-memory tridiagonal solver: each process eliminates its
//	local block down to a two-row boundary system, the boundary rows are
//	assembled into a small reduced tridiagonal system of 2·P rows, the
//	reduced system is solved, and the reduced solution is lifted back to
//	the local block. Both non-cyclic and cyclic (periodic) systems are
//	supported, in single-system and many-systems (batched) shapes.
//
// ✨ Key features:
//   - Modified-Thomas local reduction with O(n/P) work per process
//   - Gather-based assembly for one global system
//   - All-to-all block transpose for batches of independent systems,
//     so every process solves its own share of reduced systems
//   - Cyclic variants via a Sherman-Morrison two-solve decomposition
//   - Reusable plans: communicator metadata, transpose layouts and
//     scratch buffers are derived once and reused across solves
//
// Under the hood, everything is organized under three subpackages:
//
//	comm/    — message-passing substrate: Communicator, Request, Layout,
//	           and an in-process World for running P ranks as goroutines
//	tridiag/ — serial kernels: Thomas, cyclic Thomas, batched variants,
//	           the modified-Thomas reducer and back-substitution
//	tdma/    — plans: the range partitioner, Single and Many plan types
//	           with Solve / SolveCyclic / Close
//
// Quick sketch of one solve across P processes:
//
//	local block      reduce        boundary rows      assemble
//	[A B C | D]  ──────────────▶  2 rows per rank  ─────────────▶  2·P rows
//	                                                                 │ solve
//	[  x   ]  ◀──────────────  endpoints per rank  ◀─────────────  reduced x
//	            back-substitute      scatter
//
// See tdma/example_test.go for runnable multi-rank examples.
package pascaltdma
