package repository

import (
	"context"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
)

// CalendarRepository is the interface for calendar data access operations.
// The calendar is the only store: category and priority travel inside the
// event's color and title prefix.
type CalendarRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Event, error)
	GetTask(ctx context.Context, id string) (model.Event, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Event, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Event, error)
	DeleteTask(ctx context.Context, id string) error
	SetReminder(ctx context.Context, id string, minutes int64) (model.Event, error)
}
