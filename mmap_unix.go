//go:build unix

package kioku

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mmapSource backs blocks with anonymous memory mappings, keeping block
// memory out of the garbage collector's working set. Reset and Release
// unmap the blocks immediately.
type mmapSource struct{}

func (mmapSource) acquire(size uintptr) []byte {
	buf, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		panic(fmt.Errorf("kioku: mmap of %d bytes failed: %w", size, err))
	}
	return buf
}

func (mmapSource) release(buf []byte) {
	if err := unix.Munmap(buf); err != nil {
		panic(fmt.Errorf("kioku: munmap failed: %w", err))
	}
}

func newMmapSource() blockSource { return mmapSource{} }
