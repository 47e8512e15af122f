package kioku

import "errors"

// All failures in this package are contract violations by the caller, not
// runtime conditions to recover from. They are reported by panicking with
// one of these sentinel values.
var (
	// ErrUnsupportedType is the panic value for allocations of zero-sized
	// element types.
	ErrUnsupportedType = errors.New("kioku: zero-sized types are not supported")

	// ErrInvalidAlignment is the panic value for alignment arguments that
	// are zero or not a power of two.
	ErrInvalidAlignment = errors.New("kioku: alignment must be a power of two greater than zero")

	// ErrOverflow is the panic value for size computations that exceed the
	// address space.
	ErrOverflow = errors.New("kioku: allocation size overflows the address space")
)
