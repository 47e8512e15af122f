//go:build unix

package kioku

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMmapBackedArena(t *testing.T) {
	a := New(WithBlockSize(4096), WithMmap())
	defer a.Release()

	p := Alloc(a, int64(7))
	s := CopyString(a, "hello")
	require.Equal(t, int64(7), *p)
	require.Equal(t, "hello", s)
	require.Equal(t, 1, a.Stats().Blocks)

	// Reset unmaps every block; the arena is reusable afterwards.
	a.Reset()
	require.Equal(t, Stats{}, a.Stats())

	q := Alloc(a, int64(9))
	require.Equal(t, int64(9), *q)
}

func TestMmapStandaloneBlock(t *testing.T) {
	a := New(WithBlockSize(4096), WithMmap())
	defer a.Release()

	// The first request reserves the head block; a request past the next
	// shared size then gets its own mapping.
	big := AllocArrayUninit[byte](a, 1<<16)
	require.Len(t, big, 1<<16)
	require.Equal(t, 2, a.Stats().Blocks)

	big[0] = 1
	big[len(big)-1] = 2
	require.Equal(t, byte(1), big[0])
	require.Equal(t, byte(2), big[len(big)-1])
}
