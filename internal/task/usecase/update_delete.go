package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
	"github.com/mariasoturna/AssistenteVirtual/internal/task/repository"
)

// Update patches one task. Category and priority changes are translated into
// their stored form (event color and title prefix) before hitting the
// repository; a title or priority change therefore rewrites the summary.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	if input.ID == "" {
		return task.UpdateOutput{}, task.ErrInvalidTaskID
	}
	if input.Title == nil && input.Details == nil && input.Location == nil &&
		input.Category == nil && input.Priority == nil && input.Start == nil && input.End == nil {
		return task.UpdateOutput{}, task.ErrNothingToPatch
	}

	current, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.UpdateOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Update: get: %v", err)
		return task.UpdateOutput{}, fmt.Errorf("failed to load task: %w", err)
	}

	opt := repository.UpdateTaskOptions{
		ID:          input.ID,
		Description: input.Details,
		Location:    input.Location,
		Start:       input.Start,
		End:         input.End,
	}

	if input.Title != nil || input.Priority != nil {
		priority := current.Priority()
		if input.Priority != nil {
			priority = *input.Priority
		}
		title := current.Title()
		if input.Title != nil {
			title = *input.Title
		}
		summary := model.PriorityPrefix(priority) + title
		opt.Summary = &summary
	}
	if input.Category != nil {
		colorID := model.CategoryColor(*input.Category)
		opt.ColorID = &colorID
	}

	if !input.Confirm {
		preview := applyPatch(current, opt)
		return task.UpdateOutput{Status: task.StatusPreview, Task: preview}, nil
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update: %v", err)
		return task.UpdateOutput{}, fmt.Errorf("failed to update task: %w", err)
	}
	uc.invalidateCache()

	return task.UpdateOutput{Status: task.StatusUpdated, Task: updated}, nil
}

// Delete removes one task.
func (uc *implUseCase) Delete(ctx context.Context, input task.DeleteInput) (task.DeleteOutput, error) {
	if input.ID == "" {
		return task.DeleteOutput{}, task.ErrInvalidTaskID
	}

	current, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.DeleteOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Delete: get: %v", err)
		return task.DeleteOutput{}, fmt.Errorf("failed to load task: %w", err)
	}

	if !input.Confirm {
		return task.DeleteOutput{Status: task.StatusPreview, Task: current}, nil
	}

	if err := uc.repo.DeleteTask(ctx, input.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.DeleteOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return task.DeleteOutput{}, fmt.Errorf("failed to delete task: %w", err)
	}
	uc.invalidateCache()

	uc.l.Infof(ctx, "task.usecase.Delete: removed %s (%s)", current.ID, current.Summary)
	return task.DeleteOutput{Status: task.StatusDeleted, Task: current}, nil
}

// applyPatch projects the patch onto the current event for previews.
func applyPatch(current model.Event, opt repository.UpdateTaskOptions) model.Event {
	if opt.Summary != nil {
		current.Summary = *opt.Summary
	}
	if opt.Description != nil {
		current.Description = *opt.Description
	}
	if opt.Location != nil {
		current.Location = *opt.Location
	}
	if opt.ColorID != nil {
		current.ColorID = *opt.ColorID
	}
	if opt.Start != nil {
		current.Start = *opt.Start
	}
	if opt.End != nil {
		current.End = *opt.End
	}
	return current
}
