package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
	"github.com/mariasoturna/AssistenteVirtual/internal/task/repository"
	"github.com/mariasoturna/AssistenteVirtual/pkg/datemath"
)

// createFromIntent turns a non-meeting intent into one calendar event. The
// deadline and time fragments resolve through datemath fallbacks, so this
// always has a concrete window to write.
func (uc *implUseCase) createFromIntent(ctx context.Context, intent model.TaskIntent, confirm bool) (task.CommandOutput, error) {
	start, end := uc.resolveWindow(intent)

	preview := model.Event{
		Summary:     buildSummary(intent.Priority, intent.Details),
		Description: buildDescription(intent),
		Location:    intent.Location,
		ColorID:     model.CategoryColor(intent.Category),
		Start:       start,
		End:         end,
	}

	if !confirm {
		return task.CommandOutput{
			Status:  task.StatusPreview,
			Message: fmt.Sprintf("Confirme para criar a tarefa %q em %s", preview.Title(), start.Format(datemath.DateFormat)),
			Intent:  intent,
			Task:    &preview,
		}, nil
	}

	var reminder int64
	if intent.Action == model.ActionRemind {
		reminder = remindLeadMinutes
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Summary:         preview.Summary,
		Description:     preview.Description,
		Location:        preview.Location,
		ColorID:         preview.ColorID,
		Start:           start,
		End:             end,
		ReminderMinutes: reminder,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.createFromIntent: %v", err)
		return task.CommandOutput{}, fmt.Errorf("failed to create task: %w", err)
	}
	uc.invalidateCache()

	uc.l.Infof(ctx, "task.usecase.createFromIntent: created %s (%s)", created.ID, created.Summary)
	return task.CommandOutput{
		Status:  task.StatusCreated,
		Message: fmt.Sprintf("Tarefa %q criada para %s", created.Title(), start.Format(datemath.DateFormat)),
		Intent:  intent,
		Task:    &created,
	}, nil
}

// resolveWindow maps the intent's deadline/time fragments to a concrete
// [start, end) window using the datemath fallbacks.
func (uc *implUseCase) resolveWindow(intent model.TaskIntent) (start, end time.Time) {
	dateFragment := ""
	if intent.Deadline.Resolved {
		dateFragment = intent.Deadline.Date.Format(datemath.DateFormat)
	} else if !intent.Deadline.IsSoon() {
		dateFragment = intent.Deadline.Literal
	}
	return uc.dateMath.ResolveInstant(dateFragment, intent.Time, uc.now(), uc.meetingDuration)
}
