package kioku

import "unsafe"

// layout describes the size and alignment of a pending allocation.
type layout struct {
	size  uintptr
	align uintptr
}

func layoutOf[T any]() layout {
	var zero T
	return layout{size: unsafe.Sizeof(zero), align: unsafe.Alignof(zero)}
}

// checkAlign panics with ErrInvalidAlignment unless align is a nonzero
// power of two.
func checkAlign(align uintptr) {
	if align == 0 || align&(align-1) != 0 {
		panic(ErrInvalidAlignment)
	}
}

// paddingFor returns the smallest non-negative offset such that addr+offset
// is a multiple of align.
func paddingFor(addr, align uintptr) uintptr {
	checkAlign(align)
	return (align - addr%align) % align
}

// withMinAlign tightens l's alignment to at least align. A requested
// alignment weaker than the natural one is ignored.
func (l layout) withMinAlign(align uintptr) layout {
	checkAlign(align)
	if align > l.align {
		l.align = align
	}
	return l
}

// arrayLayout returns the layout of n consecutive elements of l: the
// element size padded up to a multiple of its alignment, times n. Panics
// with ErrOverflow if the result exceeds the address space (or n is
// negative).
func arrayLayout(l layout, n int) layout {
	if n < 0 {
		panic(ErrOverflow)
	}
	padded := l.size + paddingFor(l.size, l.align)
	if padded < l.size {
		panic(ErrOverflow)
	}
	if padded > 0 && uintptr(n) > ^uintptr(0)/padded {
		panic(ErrOverflow)
	}
	return layout{size: padded * uintptr(n), align: l.align}
}
