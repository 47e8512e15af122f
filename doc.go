// Package kioku implements a growable bump-pointer memory arena for plain,
// bit-copyable data.
//
// # Overview
//
// The arena allocates memory in blocks of slowly increasing size and doles
// it out with a bump cursor until a request doesn't fit in the remainder of
// the current block, at which point a new block is created. Requests too
// large for the next block get a standalone block of their own. A waste
// heuristic keeps the fraction of reserved-but-ungranted memory bounded
// (10% by default). There is no per-object deallocation: everything is
// freed at once by Reset or Release. This suits workloads that create many
// short-lived values with a shared lifetime, such as:
//
//   - Parsers and compilers building per-pass data
//   - Per-frame allocations in simulations
//   - Request-scoped allocations with batch cleanup
//
// # Basic Usage
//
//	a := kioku.New()
//	defer a.Release()
//
//	// Allocate typed values.
//	n := kioku.Alloc(a, 42)
//	buf := kioku.AllocArray(a, byte(0), 1024)
//	s := kioku.CopyString(a, "hello")
//
//	// Inspect usage.
//	st := a.Stats()
//	fmt.Printf("occupied=%d allocated=%d\n", st.Occupied, st.Allocated)
//
//	// Free everything at once.
//	a.Reset()
//
// # Memory Layout
//
// Exactly one block, the head, receives bump allocations. When a request
// misses the head, the arena either creates a new shared head block (sized
// by the configured growth strategy) or, for oversized requests, a
// standalone frozen block holding just that request. A superseded head is
// frozen permanently; its trailing capacity is never reused. Returned
// pointers therefore never move and stay valid until Reset or Release.
//
// # Zero-Sized Types
//
// Zero-sized element types such as struct{} are unsupported and panic with
// ErrUnsupportedType. Zero-length arrays of non-zero-sized elements are
// fine and allocate nothing.
//
// # Thread Safety
//
// An Arena is not safe for concurrent use. Give each goroutine its own
// arena or serialize access externally.
package kioku
