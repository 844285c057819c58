package task

import (
	"context"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// ExecuteCommand interprets a natural language sentence and runs the
	// resulting action against the calendar.
	ExecuteCommand(ctx context.Context, input CommandInput) (CommandOutput, error)

	// List returns upcoming tasks matching the filters.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Update patches one task by ID.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)

	// Delete removes one task by ID.
	Delete(ctx context.Context, input DeleteInput) (DeleteOutput, error)

	// ScheduleMeeting checks the requested slot against the calendar and
	// either books it or returns the conflict with alternative slots.
	ScheduleMeeting(ctx context.Context, input MeetingInput) (MeetingOutput, error)
}
