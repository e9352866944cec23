//go:build unix

package codebuf

import "golang.org/x/sys/unix"

const (
	protExec = unix.PROT_EXEC
	protRW   = unix.PROT_READ | unix.PROT_WRITE
	protRX   = unix.PROT_READ | unix.PROT_EXEC
	protRWX  = unix.PROT_READ | unix.PROT_WRITE | unix.PROT_EXEC
)

func mmap(size int) ([]byte, error) {
	pageSize := unix.Getpagesize()
	size = (size + pageSize - 1) / pageSize * pageSize

	return unix.Mmap(-1, 0, size, protRW, unix.MAP_PRIVATE|unix.MAP_ANON)
}

func mprotect(mem []byte, prot int) error {
	return unix.Mprotect(mem, prot)
}

func munmap(mem []byte) error {
	return unix.Munmap(mem)
}
