//go:build arm64 && cgo

package cacheflush

/*
#include <stdint.h>

static void clear_cache(uintptr_t start, uintptr_t end) {
	__builtin___clear_cache((char *)start, (char *)end);
}
*/
import "C"

func flush(start, end uintptr) {
	C.clear_cache(C.uintptr_t(start), C.uintptr_t(end))
}
