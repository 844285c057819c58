package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/mariasoturna/AssistenteVirtual/internal/interpreter"
	interpUC "github.com/mariasoturna/AssistenteVirtual/internal/interpreter/usecase"
	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
	"github.com/mariasoturna/AssistenteVirtual/internal/task/repository"
	"github.com/mariasoturna/AssistenteVirtual/internal/task/usecase"
	"github.com/mariasoturna/AssistenteVirtual/pkg/datemath"
	"github.com/mariasoturna/AssistenteVirtual/pkg/nlptag"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepository records calls and serves canned data.
type mockRepository struct {
	tasks       []model.Event
	byID        map[string]model.Event
	createCalls []repository.CreateTaskOptions
	listCalls   int
	updateCalls []repository.UpdateTaskOptions
	deleteCalls []string
	err         error
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Event, error) {
	if m.err != nil {
		return model.Event{}, m.err
	}
	m.createCalls = append(m.createCalls, opt)
	return model.Event{
		ID:          "created-1",
		Summary:     opt.Summary,
		Description: opt.Description,
		Location:    opt.Location,
		ColorID:     opt.ColorID,
		Start:       opt.Start,
		End:         opt.End,
	}, nil
}

func (m *mockRepository) GetTask(ctx context.Context, id string) (model.Event, error) {
	if m.err != nil {
		return model.Event{}, m.err
	}
	if e, ok := m.byID[id]; ok {
		return e, nil
	}
	return model.Event{}, repository.ErrNotFound
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.listCalls++
	return m.tasks, nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Event, error) {
	if m.err != nil {
		return model.Event{}, m.err
	}
	m.updateCalls = append(m.updateCalls, opt)
	current := m.byID[opt.ID]
	if opt.Summary != nil {
		current.Summary = *opt.Summary
	}
	if opt.ColorID != nil {
		current.ColorID = *opt.ColorID
	}
	return current, nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleteCalls = append(m.deleteCalls, id)
	return nil
}

func (m *mockRepository) SetReminder(ctx context.Context, id string, minutes int64) (model.Event, error) {
	if m.err != nil {
		return model.Event{}, m.err
	}
	return m.byID[id], nil
}

// fixedNow pins the clock to Sunday 2024-03-10 12:00 in São Paulo.
func fixedNow(t *testing.T) (func() time.Time, *time.Location) {
	t.Helper()
	loc, err := time.LoadLocation(datemath.DefaultTimezone)
	if err != nil {
		t.Fatalf("time.LoadLocation() error = %v", err)
	}
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)
	return func() time.Time { return now }, loc
}

func newTestInterpreter(t *testing.T, now func() time.Time) interpreter.UseCase {
	t.Helper()

	pipeline, err := nlptag.NewPipeline()
	if err != nil {
		t.Fatalf("nlptag.NewPipeline() error = %v", err)
	}
	parser, err := datemath.NewParser(datemath.DefaultTimezone)
	if err != nil {
		t.Fatalf("datemath.NewParser() error = %v", err)
	}
	return interpUC.New(&mockLogger{}, pipeline, parser, now)
}

func newTestUseCase(t *testing.T, repo *mockRepository) (task.UseCase, *time.Location) {
	t.Helper()

	now, loc := fixedNow(t)
	parser, err := datemath.NewParser(datemath.DefaultTimezone)
	if err != nil {
		t.Fatalf("datemath.NewParser() error = %v", err)
	}

	uc := usecase.New(&mockLogger{}, newTestInterpreter(t, now), repo, parser, task.Settings{Now: now})
	return uc, loc
}
