package model

import "time"

// Event is the service-level view of a calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	ColorID     string
	Start       time.Time
	End         time.Time
}

// Category recovers the task category encoded in the event color.
func (e Event) Category() Category {
	return CategoryFromColor(e.ColorID)
}

// Priority recovers the priority encoded in the title prefix.
func (e Event) Priority() Priority {
	p, _ := PriorityFromTitle(e.Summary)
	return p
}

// Title returns the event summary with the priority prefix stripped.
func (e Event) Title() string {
	_, title := PriorityFromTitle(e.Summary)
	return title
}
