//go:build arm64 && !cgo

package cacheflush

// Without cgo there's no __builtin___clear_cache, so do what it does.

// cacheType is CTR_EL0. It's the same on every core Linux will schedule us on.
var cacheType = ctr(readCTR())

func flush(start, end uintptr) {
	syncRange(asmOps{}, cacheType, start, end)
}

type asmOps struct{}

func (asmOps) cleanDataLine(addr uintptr)      { dcCVAU(addr) }
func (asmOps) invalidateInstLine(addr uintptr) { icIVAU(addr) }
func (asmOps) barrier()                        { dsbISH() }
func (asmOps) syncInstructions()               { isb() }

// Implemented in cache_arm64.s.
func readCTR() uint32
func dcCVAU(addr uintptr)
func icIVAU(addr uintptr)
func dsbISH()
func isb()
