package tdma

import "github.com/cold-young/PaScaL-TDMA/comm"

// TransposeLayouts exposes the many-plan descriptor sets so tests can
// verify the round-trip property of the block transpose.
func (p *Many) TransposeLayouts() (send, recv []comm.Layout) {
	return p.sendL, p.recvL
}

// ReducedShare exposes the plan's share of reduced systems.
func (p *Many) ReducedShare() int { return p.nSysRT }
