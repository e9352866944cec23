//go:build !(386 || amd64 || arm64)

package cacheflush

// There's no known way to flush the cache here. Failing the build is better
// than a binary that silently runs stale code.
func flush(start, end uintptr) {
	cacheflush_is_not_supported_on_this_architecture()
}
