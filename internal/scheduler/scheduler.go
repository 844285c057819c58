// Package scheduler reconciles a requested meeting window against existing
// busy periods: conflict detection plus free-slot suggestions within working
// hours. Pure computation, safe for concurrent use.
package scheduler

import (
	"sort"
	"time"
)

// Default working hours and suggestion count.
const (
	WorkdayStartHour       = 8
	WorkdayEndHour         = 18
	DefaultSuggestionLimit = 3
)

// Workday returns the working-hours window [08:00, 18:00) of the given day.
func Workday(day time.Time, loc *time.Location) (time.Time, time.Time) {
	day = day.In(loc)
	start := time.Date(day.Year(), day.Month(), day.Day(), WorkdayStartHour, 0, 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), WorkdayEndHour, 0, 0, 0, loc)
	return start, end
}

// CheckConflict returns the first busy interval (by start order) overlapping
// [start, end), or nil when the window is free. A conflict is a normal
// outcome, not an error.
func CheckConflict(start, end time.Time, busy []BusyInterval) *BusyInterval {
	ordered := sortedByStart(busy)
	for i := range ordered {
		if ordered[i].Overlaps(start, end) {
			return &ordered[i]
		}
	}
	return nil
}

// SuggestSlots sweeps the day for gaps of at least duration and emits one
// fixed-length slot at the start of each, chronologically, stopping at limit.
// No slot starts before dayStart or ends after dayEnd.
func SuggestSlots(dayStart, dayEnd time.Time, duration time.Duration, busy []BusyInterval, limit int) []FreeSlot {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	if duration <= 0 || !dayStart.Before(dayEnd) {
		return nil
	}

	slots := make([]FreeSlot, 0, limit)
	cursor := dayStart

	for _, b := range sortedByStart(busy) {
		if len(slots) == limit {
			return slots
		}
		gapEnd := b.Start
		if gapEnd.After(dayEnd) {
			gapEnd = dayEnd
		}
		if gapEnd.Sub(cursor) >= duration {
			slots = append(slots, FreeSlot{Start: cursor, End: cursor.Add(duration)})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}

	if len(slots) < limit && dayEnd.Sub(cursor) >= duration {
		slots = append(slots, FreeSlot{Start: cursor, End: cursor.Add(duration)})
	}

	return slots
}

func sortedByStart(busy []BusyInterval) []BusyInterval {
	ordered := make([]BusyInterval, len(busy))
	copy(ordered, busy)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})
	return ordered
}
