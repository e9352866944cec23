// Flush CPU caches over a range of memory
//
// Code written through the data side of the CPU isn't necessarily visible to
// instruction fetch. On x86 the caches are coherent for code, but the lines
// can still be forced out to memory, which is useful before handing a buffer
// to something outside the coherency domain or before timing a cold lookup.
// On arm64 the instruction cache has to be synchronized with the data cache
// before freshly written code is executed.
//
// Supported architectures:
//   - 386 and amd64: one CLFLUSH every 32 bytes
//   - arm64: __builtin___clear_cache when built with cgo, otherwise the same
//     DC CVAU / IC IVAU sequence in assembly
//
// Any other GOARCH fails to compile.
package cacheflush
