package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/scheduler"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
	"github.com/mariasoturna/AssistenteVirtual/pkg/datemath"
)

// ScheduleMeeting resolves the requested slot, checks it against the
// calendar's busy intervals and either books it or reports the conflict with
// up to three alternatives. A conflict is a normal outcome, not an error.
func (uc *implUseCase) ScheduleMeeting(ctx context.Context, input task.MeetingInput) (task.MeetingOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.MeetingOutput{}, task.ErrEmptyTitle
	}

	duration := uc.meetingDuration
	if input.DurationMinutes > 0 {
		duration = time.Duration(input.DurationMinutes) * time.Minute
	}

	start, end := uc.dateMath.ResolveInstant(input.Date, input.Time, uc.now(), duration)

	intent := model.TaskIntent{
		Action:   model.ActionMeeting,
		Deadline: datemath.NewResolved(start),
		Time:     start.Format("15:04"),
		Location: input.Location,
		People:   input.People,
		Category: model.CategoryWork,
		Priority: model.PriorityNormal,
		Details:  title,
		RawText:  title,
	}

	return uc.schedule(ctx, intent, start, end, input.Confirm)
}

// scheduleFromIntent is the ExecuteCommand path for meeting sentences.
func (uc *implUseCase) scheduleFromIntent(ctx context.Context, intent model.TaskIntent, confirm bool) (task.CommandOutput, error) {
	start, end := uc.resolveWindow(intent)

	out, err := uc.schedule(ctx, intent, start, end, confirm)
	if err != nil {
		return task.CommandOutput{}, err
	}

	result := task.CommandOutput{
		Status:      out.Status,
		Intent:      intent,
		Task:        out.Event,
		Conflict:    out.Conflict,
		Suggestions: out.Suggestions,
	}
	switch out.Status {
	case task.StatusConflict:
		result.Message = fmt.Sprintf("Horário ocupado por %q; há %d alternativas livres", out.Conflict.Label, len(out.Suggestions))
	case task.StatusPreview:
		result.Message = fmt.Sprintf("Horário livre; confirme para agendar %q", intent.Details)
	default:
		result.Message = fmt.Sprintf("Reunião agendada para %s", start.Format(datemath.DateFormat))
	}
	return result, nil
}

// schedule runs the conflict check and, when the window is free and the
// caller confirmed, writes the event.
func (uc *implUseCase) schedule(ctx context.Context, intent model.TaskIntent, start, end time.Time, confirm bool) (task.MeetingOutput, error) {
	dayStart, dayEnd := uc.workday(start)

	existing, err := uc.fetchTasks(ctx, dayStart, dayEnd, "")
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.schedule: busy fetch: %v", err)
		return task.MeetingOutput{}, fmt.Errorf("failed to load busy intervals: %w", err)
	}

	busy := busyIntervals(existing)
	if conflict := scheduler.CheckConflict(start, end, busy); conflict != nil {
		return task.MeetingOutput{
			Status:      task.StatusConflict,
			Conflict:    conflict,
			Suggestions: scheduler.SuggestSlots(dayStart, dayEnd, end.Sub(start), busy, scheduler.DefaultSuggestionLimit),
		}, nil
	}

	preview := model.Event{
		Summary:     buildSummary(intent.Priority, intent.Details),
		Description: buildDescription(intent),
		Location:    intent.Location,
		ColorID:     model.CategoryColor(intent.Category),
		Start:       start,
		End:         end,
	}
	if !confirm {
		return task.MeetingOutput{Status: task.StatusPreview, Event: &preview}, nil
	}

	created, err := uc.createEvent(ctx, preview)
	if err != nil {
		return task.MeetingOutput{}, err
	}
	return task.MeetingOutput{Status: task.StatusScheduled, Event: &created}, nil
}

// workday returns the working-hours window of start's day, honoring the
// configured hours.
func (uc *implUseCase) workday(start time.Time) (time.Time, time.Time) {
	loc := uc.dateMath.Location()
	day := start.In(loc)
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), uc.workdayStart, 0, 0, 0, loc)
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), uc.workdayEnd, 0, 0, 0, loc)
	return dayStart, dayEnd
}
