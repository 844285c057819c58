package repository

import "time"

// CreateTaskOptions holds the parameters for creating a calendar task.
type CreateTaskOptions struct {
	Summary         string // full title, priority prefix included
	Description     string
	Location        string
	ColorID         string
	Start           time.Time
	End             time.Time
	ReminderMinutes int64 // 0 keeps the calendar default
}

// ListTasksOptions holds the parameters for listing calendar tasks.
type ListTasksOptions struct {
	From  time.Time
	To    time.Time
	Query string // free-text filter passed to the calendar API
	Limit int    // max number of results (default 50)
}

// UpdateTaskOptions patches one calendar task. Nil fields are left untouched.
type UpdateTaskOptions struct {
	ID          string
	Summary     *string
	Description *string
	Location    *string
	ColorID     *string
	Start       *time.Time
	End         *time.Time
}
