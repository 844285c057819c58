package scheduler

import "time"

// BusyInterval is an occupied period [Start, End) drawn from existing
// calendar events. The engine never mutates these.
type BusyInterval struct {
	Start time.Time
	End   time.Time
	Label string // event summary, used for conflict messaging
}

// FreeSlot is a fixed-length open period offered as an alternative:
// End is always Start plus the requested duration, not the whole gap.
type FreeSlot struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the busy interval intersects [start, end).
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && start.Before(b.End)
}
