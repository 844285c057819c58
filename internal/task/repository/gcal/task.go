package gcal

import (
	"context"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/task/repository"
	"github.com/mariasoturna/AssistenteVirtual/pkg/gcalendar"
)

const defaultListLimit = 50

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Event, error) {
	created, err := r.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:      r.calendarID,
		Summary:         opt.Summary,
		Description:     opt.Description,
		Location:        opt.Location,
		ColorID:         opt.ColorID,
		StartTime:       opt.Start,
		EndTime:         opt.End,
		Timezone:        r.timezone,
		ReminderMinutes: opt.ReminderMinutes,
	})
	if err != nil {
		r.l.Errorf(ctx, "task.repository.gcal.CreateTask: %v", err)
		return model.Event{}, err
	}
	return toModelEvent(created), nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Event, error) {
	event, err := r.client.GetEvent(ctx, r.calendarID, id)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.gcal.GetTask: %v", err)
		return model.Event{}, err
	}
	if event == nil {
		return model.Event{}, repository.ErrNotFound
	}
	return toModelEvent(event), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Event, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	events, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    opt.From,
		TimeMax:    opt.To,
		Query:      opt.Query,
		MaxResults: int64(limit),
	})
	if err != nil {
		r.l.Errorf(ctx, "task.repository.gcal.ListTasks: %v", err)
		return nil, err
	}

	tasks := make([]model.Event, 0, len(events))
	for _, e := range events {
		tasks = append(tasks, toModelEvent(e))
	}
	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Event, error) {
	updated, err := r.client.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		CalendarID:  r.calendarID,
		EventID:     opt.ID,
		Summary:     opt.Summary,
		Description: opt.Description,
		Location:    opt.Location,
		ColorID:     opt.ColorID,
		StartTime:   opt.Start,
		EndTime:     opt.End,
		Timezone:    r.timezone,
	})
	if err != nil {
		r.l.Errorf(ctx, "task.repository.gcal.UpdateTask: %v", err)
		return model.Event{}, err
	}
	return toModelEvent(updated), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	found, err := r.client.DeleteEvent(ctx, r.calendarID, id)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.gcal.DeleteTask: %v", err)
		return err
	}
	if !found {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) SetReminder(ctx context.Context, id string, minutes int64) (model.Event, error) {
	updated, err := r.client.SetReminder(ctx, r.calendarID, id, minutes)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.gcal.SetReminder: %v", err)
		return model.Event{}, err
	}
	return toModelEvent(updated), nil
}

func toModelEvent(e *gcalendar.Event) model.Event {
	return model.Event{
		ID:          e.ID,
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		ColorID:     e.ColorID,
		Start:       e.StartTime,
		End:         e.EndTime,
	}
}
