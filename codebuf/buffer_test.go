//go:build unix

package codebuf

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	require := require.New(t)

	b, err := New(4096)
	require.NoError(err)

	for _, v := range []uint16{0, 1, 42, 0xffff} {
		code, err := b.Write(ReturnConst(v))
		require.NoError(err)

		fn, err := Func[func() int](code)
		require.NoError(err)
		assert.Equal(t, int(v), fn(), "value %d", v)
	}
}

func TestBuffer_Protection(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	b, err := New(4096)
	require.NoError(err)
	assert.False(b.mutable, "arena left writable after New")

	code, err := b.Write(ReturnConst(3))
	require.NoError(err)
	assert.False(b.mutable, "arena left writable after Write")

	fn, err := Func[func() int](code)
	require.NoError(err)
	assert.Equal(3, fn())

	require.NoError(b.Free(code))
	assert.False(b.mutable, "arena left writable after Free")
}

func TestBuffer_Rewrite(t *testing.T) {
	// Freed memory is reused, so stale instructions would show up here as
	// the previous constant.
	require := require.New(t)

	b, err := New(4096)
	require.NoError(err)

	for v := uint16(1); v <= 100; v++ {
		code, err := b.Write(ReturnConst(v))
		require.NoError(err)

		fn, err := Func[func() int](code)
		require.NoError(err)
		require.Equal(int(v), fn())

		require.NoError(b.Free(code))
	}
}

func TestBuffer_Empty(t *testing.T) {
	b, err := New(4096)
	require.NoError(t, err)

	_, err = b.Write(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBuffer_Concurrent(t *testing.T) {
	b, err := New(4096)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v uint16) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				code, err := b.Write(ReturnConst(v))
				if !assert.NoError(t, err) {
					return
				}
				fn, err := Func[func() int](code)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, int(v), fn())
				assert.NoError(t, b.Free(code))
			}
		}(uint16(i * 1000))
	}
	wg.Wait()
}

func TestPage(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p, err := MapPage(ReturnConst(7))
	require.NoError(err)
	t.Cleanup(func() { p.Close() })

	assert.Len(p.Code(), len(ReturnConst(7)))

	fn, err := Func[func() int](p.Code())
	require.NoError(err)
	assert.Equal(7, fn())

	assert.NoError(p.Close())
	assert.NoError(p.Close())
	assert.Nil(p.Code())
}

func TestPage_Empty(t *testing.T) {
	_, err := MapPage([]byte{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestFunc_NotAFunction(t *testing.T) {
	_, err := Func[int](ReturnConst(1))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "not a function")
	}

	_, err = Func[func() int](nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDisassemble(t *testing.T) {
	p, err := MapPage(ReturnConst(42))
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })

	listing, err := Disassemble(p.Code())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(listing), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, strings.ToUpper(lines[0]), "MOV")
	assert.Contains(t, strings.ToUpper(lines[1]), "RET")
}
