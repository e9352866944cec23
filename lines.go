package cacheflush

// walkLines calls fn once for every line-sized block that overlaps
// [start, end), passing the block's aligned address. line must be a power of
// two. Blocks are aligned, so they nest inside any larger power-of-two cache
// line and every real line that overlaps the range is visited at least once.
func walkLines(start, end, line uintptr, fn func(uintptr)) {
	if end <= start {
		return
	}
	for p := alignDown(start, line); p < end; p += line {
		fn(p)
		// Stop before wrapping at the top of the address space.
		if p+line < p {
			return
		}
	}
}

func alignDown(addr, align uintptr) uintptr {
	return addr &^ (align - 1)
}
