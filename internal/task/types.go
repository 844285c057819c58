package task

import (
	"time"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/scheduler"
)

// CommandStatus tells the caller what the command execution produced.
type CommandStatus string

const (
	// StatusPreview is returned for write operations without the confirm flag:
	// the output carries the event exactly as it would be written.
	StatusPreview CommandStatus = "preview"
	// StatusCreated means the event was written to the calendar.
	StatusCreated CommandStatus = "criado"
	// StatusScheduled means the meeting slot was free and the event was written.
	StatusScheduled CommandStatus = "agendado"
	// StatusConflict means the requested slot overlaps an existing event; the
	// output carries the conflict and up to three alternative slots.
	StatusConflict CommandStatus = "conflito"
	// StatusUpdated and StatusDeleted report completed patches and removals.
	StatusUpdated CommandStatus = "atualizado"
	StatusDeleted CommandStatus = "excluído"
)

// CommandInput is a free-form natural language command.
type CommandInput struct {
	Sentence string
	// Confirm authorizes the write. Without it, commands that would create an
	// event return a preview instead.
	Confirm bool
}

// CommandOutput is the result of interpreting and executing one command.
type CommandOutput struct {
	Status      CommandStatus
	Message     string
	Intent      model.TaskIntent
	Task        *model.Event
	Conflict    *scheduler.BusyInterval
	Suggestions []scheduler.FreeSlot
}

// ListInput filters the upcoming-task listing. Zero values mean "no filter";
// an empty window defaults to the next seven days.
type ListInput struct {
	From     time.Time
	To       time.Time
	Category model.Category
	Priority model.Priority
	Query    string
	Limit    int
}

// ListOutput is the filtered task listing.
type ListOutput struct {
	Tasks []model.Event
	Count int
}

// UpdateInput patches one task. Nil fields are left untouched.
type UpdateInput struct {
	ID       string
	Title    *string
	Details  *string
	Location *string
	Category *model.Category
	Priority *model.Priority
	Start    *time.Time
	End      *time.Time
	Confirm  bool
}

// UpdateOutput carries the task after the patch, or the preview when the
// confirm flag was absent.
type UpdateOutput struct {
	Status CommandStatus
	Task   model.Event
}

// DeleteInput removes one task.
type DeleteInput struct {
	ID      string
	Confirm bool
}

// DeleteOutput reports the delete result; for a preview it carries the task
// that would be removed.
type DeleteOutput struct {
	Status CommandStatus
	Task   model.Event
}

// MeetingInput schedules a meeting explicitly rather than through a sentence.
type MeetingInput struct {
	Title           string
	Date            string // free-form date fragment, e.g. "amanhã" or "15/03"
	Time            string // free-form time fragment, e.g. "14h30"
	DurationMinutes int
	Location        string
	People          []string
	Confirm         bool
}

// MeetingOutput is the scheduling result: the created event, or the conflict
// with alternative slots, or the unconfirmed preview.
type MeetingOutput struct {
	Status      CommandStatus
	Event       *model.Event
	Conflict    *scheduler.BusyInterval
	Suggestions []scheduler.FreeSlot
}

// Settings groups the tunables the usecase needs. Zero values fall back to
// the package defaults.
type Settings struct {
	WorkdayStartHour int
	WorkdayEndHour   int
	MeetingDuration  time.Duration
	CacheTTL         time.Duration
	Now              func() time.Time
}
