package cacheflush

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(start, end, line uintptr) []uintptr {
	var addrs []uintptr
	walkLines(start, end, line, func(addr uintptr) {
		addrs = append(addrs, addr)
	})
	return addrs
}

// covered reports whether every byte of [start, end) is in a line of size
// lineSize that contains one of addrs.
func covered(addrs []uintptr, start, end, lineSize uintptr) bool {
	lines := map[uintptr]bool{}
	for _, addr := range addrs {
		lines[alignDown(addr, lineSize)] = true
	}
	for b := start; b < end; b++ {
		if !lines[alignDown(b, lineSize)] {
			return false
		}
	}
	return true
}

func TestWalkLines(t *testing.T) {
	cases := map[string]struct {
		start, end, line uintptr
		want             []uintptr
	}{
		"empty": {
			start: 0x1000, end: 0x1000, line: 32,
			want: nil,
		},
		"end before start": {
			start: 0x1000, end: 0x0fff, line: 32,
			want: nil,
		},
		"one byte": {
			start: 0x1005, end: 0x1006, line: 32,
			want: []uintptr{0x1000},
		},
		"exact lines": {
			start: 0x1000, end: 0x1040, line: 32,
			want: []uintptr{0x1000, 0x1020},
		},
		"one byte into the next line": {
			start: 0x1000, end: 0x1041, line: 32,
			want: []uintptr{0x1000, 0x1020, 0x1040},
		},
		"straddles a boundary": {
			start: 0x101f, end: 0x1021, line: 32,
			want: []uintptr{0x1000, 0x1020},
		},
		"64 byte lines": {
			start: 0x103c, end: 0x103c + 10, line: 64,
			want: []uintptr{0x1000, 0x1040},
		},
		"top of address space": {
			start: ^uintptr(0) - 40, end: ^uintptr(0), line: 32,
			want: []uintptr{^uintptr(0) - 63, ^uintptr(0) - 31},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, collect(tc.start, tc.end, tc.line))
		})
	}
}

func TestWalkLines_Unaligned(t *testing.T) {
	const base = uintptr(0x10000)
	start := base + 5
	end := start + 10

	for _, lineSize := range []uintptr{32, 64} {
		addrs := collect(start, end, 32)
		assert.True(t, covered(addrs, start, start+1, lineSize), "line of base+5 with %d byte lines", lineSize)
		assert.True(t, covered(addrs, end-1, end, lineSize), "line of base+14 with %d byte lines", lineSize)
	}
}

func TestWalkLines_CoversEveryByte(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		start := uintptr(0x100000 + rng.Intn(4096))
		end := start + uintptr(rng.Intn(1024))

		for _, lineSize := range []uintptr{32, 64, 128} {
			// The x86 walk is always 32 bytes, whatever the line size.
			addrs := collect(start, end, 32)
			if !assert.True(t, covered(addrs, start, end, lineSize), "stride 32, line %d, range [%#x, %#x)", lineSize, start, end) {
				return
			}

			addrs = collect(start, end, lineSize)
			if !assert.True(t, covered(addrs, start, end, lineSize), "line %d, range [%#x, %#x)", lineSize, start, end) {
				return
			}
		}
	}
}

func TestWalkLines_LargerStrideSkipsLines(t *testing.T) {
	// A walk coarser than the real line size misses lines, which is why the
	// x86 stride isn't the discovered line size.
	start, end := uintptr(0x1000), uintptr(0x1080)
	assert.False(t, covered(collect(start, end, 64), start, end, 32))
}
