package kioku

import (
	"runtime"
	"unsafe"
)

// nonZeroLayout is the gate for every typed allocation: zero-sized element
// types are rejected before any arena state is touched.
func nonZeroLayout[T any]() layout {
	l := layoutOf[T]()
	if l.size == 0 {
		panic(ErrUnsupportedType)
	}
	return l
}

// Alloc allocates a T initialized to value and returns a pointer to it.
// The pointer is valid until the arena is Reset or Released.
func Alloc[T any](a *Arena, value T) *T {
	p := AllocUninit[T](a)
	*p = value
	return p
}

// AllocAligned allocates a T initialized to value, aligned to at least
// align bytes. align must be a nonzero power of two; it can only tighten
// the natural alignment of T, never loosen it.
func AllocAligned[T any](a *Arena, value T, align uintptr) *T {
	p := AllocAlignedUninit[T](a, align)
	*p = value
	return p
}

// AllocUninit allocates a T without initializing it. The contents are
// unspecified; write before reading.
func AllocUninit[T any](a *Arena) *T {
	l := nonZeroLayout[T]()
	return (*T)(a.AllocRaw(l.size, l.align))
}

// AllocAlignedUninit allocates an uninitialized T aligned to at least
// align bytes.
func AllocAlignedUninit[T any](a *Arena, align uintptr) *T {
	l := nonZeroLayout[T]().withMinAlign(align)
	return (*T)(a.AllocRaw(l.size, l.align))
}

// AllocArray allocates a slice of n elements, each initialized to value.
// n may be zero, yielding an empty slice that claims no arena space.
func AllocArray[T any](a *Arena, value T, n int) []T {
	s := AllocArrayUninit[T](a, n)
	for i := range s {
		s[i] = value
	}
	return s
}

// AllocArrayAligned is AllocArray with the head of the array aligned to at
// least align bytes. Elements beyond the first follow standard array
// layout.
func AllocArrayAligned[T any](a *Arena, value T, n int, align uintptr) []T {
	s := AllocArrayAlignedUninit[T](a, n, align)
	for i := range s {
		s[i] = value
	}
	return s
}

// AllocArrayUninit allocates a slice of n elements without initializing
// them.
func AllocArrayUninit[T any](a *Arena, n int) []T {
	l := arrayLayout(nonZeroLayout[T](), n)
	return unsafe.Slice((*T)(a.AllocRaw(l.size, l.align)), n)
}

// AllocArrayAlignedUninit allocates an uninitialized slice of n elements
// with its head aligned to at least align bytes.
func AllocArrayAlignedUninit[T any](a *Arena, n int, align uintptr) []T {
	l := arrayLayout(nonZeroLayout[T](), n).withMinAlign(align)
	return unsafe.Slice((*T)(a.AllocRaw(l.size, l.align)), n)
}

// CopySlice allocates a copy of src inside the arena.
func CopySlice[T any](a *Arena, src []T) []T {
	dst := AllocArrayUninit[T](a, len(src))
	copy(dst, src)
	return dst
}

// CopySliceAligned allocates a copy of src with its head aligned to at
// least align bytes.
func CopySliceAligned[T any](a *Arena, src []T, align uintptr) []T {
	dst := AllocArrayAlignedUninit[T](a, len(src), align)
	copy(dst, src)
	return dst
}

// CopyBytes allocates a copy of b inside the arena.
func CopyBytes(a *Arena, b []byte) []byte {
	return CopySlice(a, b)
}

// CopyString allocates a copy of s inside the arena and returns it as a
// string. The arena never writes those bytes again, so exposing them as
// an immutable string is sound.
func CopyString(a *Arena, s string) string {
	if len(s) == 0 {
		return ""
	}
	b := AllocArrayUninit[byte](a, len(s))
	copy(b, s)
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// PtrAndKeepAlive returns p and keeps the arena reachable up to this
// point. Useful when the last visible use of the arena is before unsafe
// pointer arithmetic on its memory.
func PtrAndKeepAlive[T any](a *Arena, p *T) *T {
	runtime.KeepAlive(a)
	return p
}
