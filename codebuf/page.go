//go:build unix || windows

package codebuf

import (
	"fmt"

	"github.com/pboyd/cacheflush"
)

// Page holds code in pages of its own, outside of any Buffer. It's for code
// that lives as long as the program, or when a Buffer would be overkill.
type Page struct {
	mem  []byte
	code []byte
}

// MapPage copies code into freshly mapped memory and makes it executable.
func MapPage(code []byte) (*Page, error) {
	if len(code) == 0 {
		return nil, ErrEmpty
	}

	mem, err := mmap(len(code))
	if err != nil {
		return nil, fmt.Errorf("error mapping memory: %w", err)
	}

	copy(mem, code)
	cacheflush.FlushSlice(mem[:len(code)])

	err = mprotect(mem, protRX)
	if err != nil {
		munmap(mem)
		return nil, fmt.Errorf("error protecting memory: %w", err)
	}

	return &Page{
		mem:  mem,
		code: mem[:len(code)],
	}, nil
}

// Code returns the executable copy of the code.
func (p *Page) Code() []byte {
	return p.code
}

// Close unmaps the page. Anything made from Code must not be called after.
func (p *Page) Close() error {
	if p.mem == nil {
		return nil
	}
	err := munmap(p.mem)
	p.mem = nil
	p.code = nil
	return err
}
