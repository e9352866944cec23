package cacheflush

// cacheOps are the arm64 cache maintenance instructions.
type cacheOps interface {
	cleanDataLine(addr uintptr)      // DC CVAU
	invalidateInstLine(addr uintptr) // IC IVAU
	barrier()                        // DSB ISH
	syncInstructions()               // ISB
}

// ctr is the arm64 cache type register, CTR_EL0.
type ctr uint32

const (
	ctrIDC = 1 << 28 // D-cache clean not required for I/D coherence
	ctrDIC = 1 << 29 // I-cache invalidate not required for I/D coherence
)

// dataLine returns the smallest data cache line size in bytes.
func (c ctr) dataLine() uintptr {
	return 4 << ((c >> 16) & 0xf)
}

// instLine returns the smallest instruction cache line size in bytes.
func (c ctr) instLine() uintptr {
	return 4 << (c & 0xf)
}

// syncRange makes writes to [start, end) visible to instruction fetch on
// every core. This is the same sequence as libgcc's
// __aarch64_sync_cache_range.
func syncRange(ops cacheOps, c ctr, start, end uintptr) {
	if c&ctrIDC == 0 {
		walkLines(start, end, c.dataLine(), ops.cleanDataLine)
	}
	ops.barrier()

	if c&ctrDIC == 0 {
		walkLines(start, end, c.instLine(), ops.invalidateInstLine)
	}
	ops.barrier()
	ops.syncInstructions()
}
