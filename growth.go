package kioku

// growthStrategy sizes the next shared block from the arena's current
// occupancy. Strategies are fixed at construction time.
type growthStrategy interface {
	nextSharedSize(occupied, minBlockSize uintptr) uintptr
}

// constantGrowth always proposes minBlockSize.
type constantGrowth struct{}

func (constantGrowth) nextSharedSize(_, minBlockSize uintptr) uintptr {
	return minBlockSize
}

// percentageGrowth proposes pct percent of current occupancy, rounded down
// to a multiple of minBlockSize so shared blocks land on block-size
// boundaries, and never below minBlockSize.
type percentageGrowth struct {
	pct uintptr // 1..100
}

func (g percentageGrowth) nextSharedSize(occupied, minBlockSize uintptr) uintptr {
	a := occupied * g.pct / 100
	a -= a % minBlockSize
	if a < minBlockSize {
		return minBlockSize
	}
	return a
}
