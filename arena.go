package kioku

import "unsafe"

const (
	// DefaultBlockSize is the default minimum block size (1 KiB).
	DefaultBlockSize = 1 << 10

	// DefaultMaxWastePercentage bounds how much of the arena's occupied
	// space may be slack before a miss stops producing shared blocks.
	DefaultMaxWastePercentage = 10
)

// maxAlloc is the largest representable allocation size.
const maxAlloc = ^uintptr(0) >> 1

// Arena is a growable bump allocator. Not goroutine-safe; see the package
// documentation.
type Arena struct {
	store  blockStore
	source blockSource
	growth growthStrategy

	minBlockSize       uintptr
	maxWastePercentage uintptr

	occupied  uintptr // sum of all block capacities
	allocated uintptr // sum of granted request sizes, excluding padding

	released bool
}

// Option configures an Arena at construction time. The configuration is
// immutable afterwards; changing it means building a new arena.
type Option func(*Arena)

// WithBlockSize sets the minimum block size in bytes. size must be
// greater than zero.
func WithBlockSize(size int) Option {
	if size <= 0 {
		panic("kioku: block size must be greater than zero")
	}
	return func(a *Arena) { a.minBlockSize = uintptr(size) }
}

// WithMaxWastePercentage sets the waste bound used by the shared-vs-
// standalone decision. pct must be in 1..100.
func WithMaxWastePercentage(pct int) Option {
	if pct < 1 || pct > 100 {
		panic("kioku: max waste percentage must be in 1..100")
	}
	return func(a *Arena) { a.maxWastePercentage = uintptr(pct) }
}

// WithGrowthPercentage sizes new shared blocks as pct percent of current
// occupancy (rounded down to a multiple of the block size, never below
// it) instead of the default constant block size. pct must be in 1..100.
func WithGrowthPercentage(pct int) Option {
	if pct < 1 || pct > 100 {
		panic("kioku: growth percentage must be in 1..100")
	}
	return func(a *Arena) { a.growth = percentageGrowth{pct: uintptr(pct)} }
}

// WithMmap backs blocks with anonymous memory mappings instead of the Go
// heap. Reset and Release then unmap block memory immediately, so any
// reference surviving them dangles for real. On platforms without mmap
// this option keeps heap backing.
func WithMmap() Option {
	return func(a *Arena) { a.source = newMmapSource() }
}

// New creates an empty arena. No block is reserved until the first
// allocation request.
func New(opts ...Option) *Arena {
	a := &Arena{
		source:             heapSource{},
		growth:             constantGrowth{},
		minBlockSize:       DefaultBlockSize,
		maxWastePercentage: DefaultMaxWastePercentage,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AllocRaw allocates size bytes aligned to align and returns their
// address. align must be a nonzero power of two.
//
// The returned memory is valid until Reset or Release. No bounds or type
// safety is provided: callers must not read or write past size bytes, nor
// assume any particular layout. The typed allocation functions are the
// safe way in.
func (a *Arena) AllocRaw(size, align uintptr) unsafe.Pointer {
	checkAlign(align)
	a.panicIfReleased()
	if align > maxAlloc || size > maxAlloc-(align-1) {
		panic(ErrOverflow)
	}

	if a.store.empty() {
		a.addHead(a.minBlockSize)
	}
	head := a.store.head()

	// A zero-size request points at the head block without claiming space.
	if size == 0 {
		return unsafe.Pointer(unsafe.SliceData(head.buf))
	}

	// Fast path: bump the head cursor.
	start := head.filled + paddingFor(head.base()+head.filled, align)
	if start <= head.capacity() && size <= head.capacity()-start {
		head.filled = start + size
		a.allocated += size
		return unsafe.Pointer(&head.buf[start])
	}

	return a.allocSlow(size, align)
}

// allocSlow creates a new block for a request that missed the head. A
// request that fits the next shared block size, when current waste is
// within bounds, gets a fresh shared head; anything else gets a standalone
// frozen block sized for it alone.
func (a *Arena) allocSlow(size, align uintptr) unsafe.Pointer {
	next := a.growth.nextSharedSize(a.occupied, a.minBlockSize)

	// Waste is the lesser of the head block's slack and the whole arena's
	// slack: a nearly full head may still grow even when historical waste
	// is high, since growing it doesn't worsen the active working set.
	head := a.store.head()
	wasteHead := (head.capacity() - head.filled) * 100 / head.capacity()
	wasteArena := (a.occupied - a.allocated) * 100 / a.occupied
	waste := min(wasteHead, wasteArena)

	var b *block
	if size+align <= next && waste <= a.maxWastePercentage {
		b = a.addHead(next)
	} else {
		// Worst-case padding for an alignment-unaware placement of exactly
		// one oversized value.
		b = a.addFrozen(size + align - 1)
	}

	start := paddingFor(b.base(), align)
	b.filled = start + size
	a.allocated += size
	return unsafe.Pointer(&b.buf[start])
}

// addHead creates a block of the given capacity and designates it the
// head, freezing the previous head if any.
func (a *Arena) addHead(capacity uintptr) *block {
	b := &block{buf: a.source.acquire(capacity)}
	a.occupied += capacity
	a.store.pushHead(b)
	return b
}

// addFrozen creates a standalone block of the given capacity. It never
// becomes head.
func (a *Arena) addFrozen(capacity uintptr) *block {
	b := &block{buf: a.source.acquire(capacity)}
	a.occupied += capacity
	a.store.pushFrozen(b)
	return b
}

// Reset discards every block and returns the arena to its freshly
// constructed state: zero blocks, zero counters, same configuration.
//
// Reset is unchecked: the caller must guarantee that no pointer, slice, or
// string previously returned by this arena is still in use. With mmap
// backing the old memory is unmapped immediately and surviving references
// dangle; with heap backing they keep dead blocks alive but are equally
// invalid by contract.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for _, b := range a.store.blocks {
		a.source.release(b.buf)
	}
	a.store.clear()
	a.occupied = 0
	a.allocated = 0
}

// Release frees all memory and makes the arena unusable. Any subsequent
// operation panics. Safe to call more than once.
func (a *Arena) Release() {
	if a.released {
		return
	}
	a.Reset()
	a.released = true
}

func (a *Arena) panicIfReleased() {
	if a.released {
		panic("kioku: use after Release()")
	}
}
