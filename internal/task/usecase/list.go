package usecase

import (
	"context"
	"fmt"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
)

// defaultListWindowDays bounds the listing when the caller gives no window.
const defaultListWindowDays = 7

// List returns upcoming tasks, read through the 24h cache. Category and
// priority filters are applied after the fetch since the calendar only
// carries them encoded in color and title prefix.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	from, to := input.From, input.To
	if from.IsZero() {
		from = uc.now()
	}
	if to.IsZero() || !from.Before(to) {
		to = from.AddDate(0, 0, defaultListWindowDays)
	}

	events, err := uc.fetchTasks(ctx, from, to, input.Query)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]model.Event, 0, len(events))
	for _, e := range events {
		if input.Category != "" && e.Category() != input.Category {
			continue
		}
		if input.Priority != "" && e.Priority() != input.Priority {
			continue
		}
		tasks = append(tasks, e)
		if input.Limit > 0 && len(tasks) == input.Limit {
			break
		}
	}

	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}
