// Package comm is the message-passing substrate for the parallel
// tridiagonal solver: a small, MPI-flavored collective surface over a
// caller-supplied communicator.
//
// The package deliberately does not follow the MPI standard; it exposes
// exactly the operations the solver plans need:
//
//   - Igather / Iscatter — non-blocking rooted collectives over equal
//     per-rank contributions of float64 values.
//   - Ialltoall — non-blocking all-to-all exchange driven by Layout
//     descriptors, one send and one receive window per peer.
//   - AllGather — blocking all-gather of a single integer, used once
//     during plan creation.
//
// Non-blocking calls return a *Request; a batch of requests is joined
// with WaitAll and a single request with Request.Wait. Waiting on
// requests is the only suspension point in a solve. The four
// per-stream collectives of one exchange may complete in any order, but
// WaitAll does not return until all of them have.
//
// Collectives on one communicator must be entered by every rank in the
// same program order. Concurrent in-flight collectives are
// disambiguated by caller-chosen tags; messages under one tag match in
// issue order, so successive collectives may reuse a tag, but two
// collectives in flight at the same time must use distinct tags.
//
// World is the in-process implementation: P ranks connected by
// tag-matched mailboxes, one communicator per rank. Run spawns one
// goroutine per rank and joins their errors, which is how the tests,
// benchmarks and examples in this module execute SPMD programs. Any
// transport with the same collective surface (e.g. an MPI binding) can
// stand in behind the Communicator interface.
package comm
