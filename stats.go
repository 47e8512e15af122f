package kioku

// Stats is a point-in-time snapshot of an arena's memory accounting.
type Stats struct {
	// Occupied is the total capacity in bytes of all blocks the arena
	// owns, not counting bookkeeping.
	Occupied int
	// Allocated is the portion of Occupied actually granted to requests:
	// the sum of all request sizes, excluding alignment padding and block
	// slack. Occupied >= Allocated always.
	Allocated int
	// Blocks is the number of blocks currently owned by the arena.
	Blocks int
}

// Utilization returns Allocated/Occupied as a ratio from 0.0 to 1.0, or 0
// for an empty arena.
func (s Stats) Utilization() float64 {
	if s.Occupied == 0 {
		return 0
	}
	return float64(s.Allocated) / float64(s.Occupied)
}

// Stats returns a snapshot of the arena's current usage. It has no side
// effects.
func (a *Arena) Stats() Stats {
	return Stats{
		Occupied:  int(a.occupied),
		Allocated: int(a.allocated),
		Blocks:    a.store.count(),
	}
}
