package kioku

import "unsafe"

// block is a fixed-capacity buffer with a monotonically advancing fill
// cursor. The buffer's base address never changes after creation.
type block struct {
	buf    []byte
	filled uintptr
}

func (b *block) capacity() uintptr { return uintptr(len(b.buf)) }

// base returns the address of the buffer's first byte.
func (b *block) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
}

// blockStore is the ordered set of blocks owned by an arena. The head
// block, the only one still receiving bump allocations, is kept at index
// 0; every other block is frozen and never written again.
type blockStore struct {
	blocks []*block
}

func (s *blockStore) empty() bool  { return len(s.blocks) == 0 }
func (s *blockStore) count() int   { return len(s.blocks) }
func (s *blockStore) head() *block { return s.blocks[0] }

// pushHead installs b as the new head. The previous head, if any, freezes
// in place; its trailing capacity becomes permanent waste.
func (s *blockStore) pushHead(b *block) {
	s.blocks = append(s.blocks, b)
	last := len(s.blocks) - 1
	s.blocks[0], s.blocks[last] = s.blocks[last], s.blocks[0]
}

// pushFrozen appends b without touching the head. Standalone blocks for
// oversized requests enter this way and are never designated head.
func (s *blockStore) pushFrozen(b *block) {
	s.blocks = append(s.blocks, b)
}

func (s *blockStore) clear() { s.blocks = nil }
