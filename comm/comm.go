package comm

// Communicator is the transport boundary of the solver: the collective
// surface a plan needs, over a fixed group of P ranks. Implementations
// must guarantee that a collective entered by every rank in the same
// program order completes on every rank or fails on every waiter.
//
// The caller owns every buffer passed in; buffers must not be touched
// between a non-blocking issue and the completion of its Wait.
type Communicator interface {
	// Rank returns the caller's rank, 0 <= Rank() < Size().
	Rank() int

	// Size returns the number of ranks in the group.
	Size() int

	// AllGather distributes one integer from every rank to every rank.
	// The result is indexed by rank. Blocking; used at plan creation.
	AllGather(v, tag int) ([]int, error)

	// Igather starts a gather of equal per-rank contributions to root.
	// Every rank passes its contribution in send; on root, recv must
	// hold Size()*len(send) elements and is filled in rank order. On
	// non-root ranks recv is ignored and may be nil.
	Igather(send, recv []float64, root, tag int) *Request

	// Iscatter starts the inverse of Igather: root's send buffer holds
	// Size() equal slices in rank order, and every rank receives its
	// slice into recv. On non-root ranks send is ignored and may be nil.
	Iscatter(send, recv []float64, root, tag int) *Request

	// Ialltoall starts an all-to-all exchange driven by layouts: for
	// every peer k, the window sendLayouts[k] of send is delivered into
	// the window recvLayouts[k-as-source] of the peer's recv. Window
	// counts must agree pairwise: sendLayouts[k].Count() on this rank
	// equals recvLayouts[Rank()].Count() on rank k.
	Ialltoall(send, recv []float64, sendLayouts, recvLayouts []Layout, tag int) *Request
}
