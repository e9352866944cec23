//go:build windows

package codebuf

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	protExec = windows.PAGE_EXECUTE
	protRW   = windows.PAGE_READWRITE
	protRX   = windows.PAGE_EXECUTE_READ
	protRWX  = windows.PAGE_EXECUTE_READWRITE
)

func mmap(size int) ([]byte, error) {
	pageSize := syscall.Getpagesize()
	size = (size + pageSize - 1) &^ (pageSize - 1)

	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, protRW)
	if err != nil {
		return nil, err
	}
	// The memory comes from VirtualAlloc, not the Go heap, so the address
	// can't move. unsafe.Add keeps the uintptr out of a direct conversion.
	return unsafe.Slice((*byte)(unsafe.Add(unsafe.Pointer(nil), addr)), size), nil
}

func mprotect(mem []byte, prot int) error {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(mem)))

	var oldFlags uint32
	return windows.VirtualProtect(addr, uintptr(len(mem)), uint32(prot), &oldFlags)
}

func munmap(mem []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(mem))), 0, windows.MEM_RELEASE)
}
