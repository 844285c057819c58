package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID      string
	Summary         string
	Description     string
	Location        string
	ColorID         string
	StartTime       time.Time
	EndTime         time.Time
	Timezone        string // e.g. "America/Sao_Paulo"
	ReminderMinutes int64  // 0 keeps the calendar's default reminders
}

// ListEventsRequest is the input for listing Google Calendar events.
// Query is passed through as a free-text filter over summary and description.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Query      string
	MaxResults int64
}

// UpdateEventRequest patches an existing event. Nil fields are left untouched.
type UpdateEventRequest struct {
	CalendarID  string
	EventID     string
	Summary     *string
	Description *string
	Location    *string
	ColorID     *string
	StartTime   *time.Time
	EndTime     *time.Time
	Timezone    string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	ColorID     string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
