// Package tdma implements the distributed tridiagonal solver: plans
// that tie a communicator, partition metadata, transpose layouts and
// scratch buffers together so that many solves reuse one setup.
//
// 🚀 How a solve works
//
//	Each of the P ranks owns a contiguous block of the solving axis.
//	One solve runs five phases:
//	  1. modified-Thomas reduction of the local block (tridiag.Reduce),
//	     leaving a two-row boundary summary per system;
//	  2. assembly of the reduced system of 2·P rows — a gather to one
//	     rank (Single) or an all-to-all block transpose that hands each
//	     rank its share of reduced systems (Many);
//	  3. serial (batched) Thomas on the reduced form, cyclic when the
//	     original system is periodic;
//	  4. the inverse movement of the solution stream;
//	  5. local back-substitution (no communication).
//
// ✨ Plan shapes:
//   - Single — every rank holds one slice of one global system. The
//     reduced system is gathered to a designated rank, solved there,
//     and the two endpoints are scattered back.
//   - Many — every rank holds slices of nSys independent systems that
//     share the solving axis. The boundary rows are transposed across
//     ranks so that rank r owns its partition share of complete
//     reduced systems, each of length 2·P, and solves them with the
//     batched kernel. The transpose is driven by comm.Layout
//     descriptors cached in the plan; forward-then-inverse reproduces
//     the original data layout exactly.
//
// Plans are created and destroyed collectively over the communicator,
// in the same order on every rank, and a solve's slice shapes must
// match the shapes the plan was created with. With P = 1 both plans
// degenerate: the serial kernel runs directly and no collective is
// ever entered. A plan is single-threaded: one solve at a time; give
// each worker goroutine its own plan (and, with the in-process world,
// its own communicator).
//
// A transport error poisons the plan: the failed solve returns the
// error and every later solve fails with ErrPlanPoisoned until the
// plan is closed.
package tdma
