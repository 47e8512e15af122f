package kioku

// blockSource provides and reclaims the raw buffers backing blocks.
type blockSource interface {
	acquire(size uintptr) []byte
	release(buf []byte)
}

// heapSource backs blocks with garbage-collected memory. release is a
// no-op; a discarded buffer is reclaimed once nothing points into it.
type heapSource struct{}

func (heapSource) acquire(size uintptr) []byte { return make([]byte, size) }

func (heapSource) release([]byte) {}
