package cacheflush

import "unsafe"

// Flush writes back every cache line that overlaps [start, start+length) and
// makes it visible to instruction fetch.
//
// Neither start nor length needs to be aligned. A length of zero (or less)
// does nothing. The range isn't checked, so it must be mapped and readable.
func Flush(start unsafe.Pointer, length int) {
	if length <= 0 {
		return
	}
	addr := uintptr(start)
	flush(addr, addr+uintptr(length))
}

// FlushSlice flushes the memory backing s[:len(s)].
func FlushSlice[T any](s []T) {
	var zero T
	Flush(unsafe.Pointer(unsafe.SliceData(s)), len(s)*int(unsafe.Sizeof(zero)))
}
