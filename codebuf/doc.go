// Package codebuf runs machine code written at runtime.
//
// Code is copied into executable memory, flushed with cacheflush so that
// instruction fetch sees it, then the memory is made read-only and
// executable. Func turns the result into a callable Go func value.
//
// The code has to follow the Go internal ABI for the function type it's
// called as. Nothing checks that.
package codebuf
