//go:build 386 || amd64

package cacheflush

// stride is how far apart the flushed addresses are. Lines are 64 bytes on
// anything recent, but 32 divides every x86 line size, so no line can be
// stepped over.
const stride = 32

// flushLine is replaced in tests to record the addresses.
var flushLine = clflush

func flush(start, end uintptr) {
	walkLines(start, end, stride, flushLine)
}

// clflush evicts the cache line containing addr. Implemented in
// clflush_$GOARCH.s.
func clflush(addr uintptr)
