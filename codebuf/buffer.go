//go:build unix || windows

package codebuf

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pboyd/malloc"

	"github.com/pboyd/cacheflush"
)

// ErrEmpty is returned when there's no code to write.
var ErrEmpty = errors.New("no code")

// Buffer is an arena of executable memory for many small pieces of code.
//
// The arena is writable only while a Write or Free is in progress. The rest of
// the time it's read-only and executable.
type Buffer struct {
	arena   *malloc.Arena
	protect func(int) error
	mu      sync.Mutex
	mutable bool
}

// New returns a Buffer with room for at least size bytes to start with. The
// arena grows as needed.
func New(size int) (*Buffer, error) {
	// The backend adds read and write to the protection, so the arena starts
	// out mutable.
	be := malloc.MmapBackend(malloc.MmapProt(protExec))

	b := &Buffer{mutable: true}
	if protBE, ok := be.(malloc.ProtectedArenaBackend); ok {
		b.protect = protBE.Protect
	} else {
		b.protect = func(int) error {
			return nil
		}
	}

	b.arena = malloc.NewArena(uint64(size), malloc.Backend(be))
	if b.arena == nil {
		return nil, errors.New("unable to initialize arena")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.endMutate(); err != nil {
		return nil, fmt.Errorf("error protecting arena: %w", err)
	}

	return b, nil
}

// Write copies code into the buffer and returns the executable copy.
func (b *Buffer) Write(code []byte) (_ []byte, err error) {
	if len(code) == 0 {
		return nil, ErrEmpty
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.beginMutate(); err != nil {
		return nil, fmt.Errorf("error unprotecting arena: %w", err)
	}
	defer func() {
		if perr := b.endMutate(); perr != nil && err == nil {
			err = fmt.Errorf("error protecting arena: %w", perr)
		}
	}()

	buf, err := malloc.MallocSlice[byte](b.arena, len(code))
	if err != nil {
		return nil, fmt.Errorf("error allocating code: %w", err)
	}
	copy(buf, code)

	// Make sure instruction fetch doesn't see whatever used to be here.
	cacheflush.FlushSlice(buf)

	return buf, nil
}

// Free releases code returned by Write. Calling anything made from it
// afterwards is undefined.
func (b *Buffer) Free(code []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.beginMutate(); err != nil {
		return fmt.Errorf("error unprotecting arena: %w", err)
	}

	malloc.FreeSlice(b.arena, code)

	if err := b.endMutate(); err != nil {
		return fmt.Errorf("error protecting arena: %w", err)
	}
	return nil
}

// beginMutate and endMutate must be called with mu held.

func (b *Buffer) beginMutate() error {
	if b.mutable {
		return nil
	}

	err := b.protect(protRWX)
	if err == nil {
		b.mutable = true
	}
	return err
}

func (b *Buffer) endMutate() error {
	if !b.mutable {
		return nil
	}

	err := b.protect(protRX)
	if err == nil {
		b.mutable = false
	}
	return err
}
