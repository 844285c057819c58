package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
)

func TestExecuteCommandCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty sentence", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockRepository{})
		if _, err := uc.ExecuteCommand(ctx, task.CommandInput{Sentence: "   "}); !errors.Is(err, task.ErrEmptyCommand) {
			t.Errorf("error = %v, want ErrEmptyCommand", err)
		}
	})

	t.Run("Without confirm returns a preview and writes nothing", func(t *testing.T) {
		repo := &mockRepository{}
		uc, _ := newTestUseCase(t, repo)

		out, err := uc.ExecuteCommand(ctx, task.CommandInput{Sentence: "Lembrar de ligar para cliente amanhã às 9h, urgente"})
		if err != nil {
			t.Fatalf("ExecuteCommand() error = %v", err)
		}
		if out.Status != task.StatusPreview {
			t.Errorf("Status = %s, want preview", out.Status)
		}
		if len(repo.createCalls) != 0 {
			t.Errorf("preview must not write, got %d creates", len(repo.createCalls))
		}
		if out.Task == nil || out.Task.ColorID != "11" {
			t.Errorf("preview task = %+v, want work color 11", out.Task)
		}
	})

	t.Run("Confirmed reminder writes the serialized event", func(t *testing.T) {
		repo := &mockRepository{}
		uc, loc := newTestUseCase(t, repo)

		out, err := uc.ExecuteCommand(ctx, task.CommandInput{
			Sentence: "Lembrar de ligar para cliente amanhã às 9h, urgente",
			Confirm:  true,
		})
		if err != nil {
			t.Fatalf("ExecuteCommand() error = %v", err)
		}
		if out.Status != task.StatusCreated {
			t.Errorf("Status = %s, want created", out.Status)
		}
		if len(repo.createCalls) != 1 {
			t.Fatalf("expected 1 create, got %d", len(repo.createCalls))
		}

		got := repo.createCalls[0]
		if !strings.HasPrefix(got.Summary, "⚠ ") {
			t.Errorf("Summary = %q, want high-priority prefix", got.Summary)
		}
		if got.ColorID != "11" {
			t.Errorf("ColorID = %s, want 11 (work)", got.ColorID)
		}
		if got.ReminderMinutes != 30 {
			t.Errorf("ReminderMinutes = %d, want 30 for a reminder", got.ReminderMinutes)
		}
		wantStart := time.Date(2024, 3, 11, 9, 0, 0, 0, loc)
		if !got.Start.Equal(wantStart) {
			t.Errorf("Start = %v, want %v", got.Start, wantStart)
		}
		if !strings.Contains(got.Description, "Categoria: trabalho") {
			t.Errorf("Description = %q, want serialized category", got.Description)
		}
	})

	t.Run("Plain add without temporal fragments lands tomorrow 09:00", func(t *testing.T) {
		repo := &mockRepository{}
		uc, loc := newTestUseCase(t, repo)

		out, err := uc.ExecuteCommand(ctx, task.CommandInput{Sentence: "Comprar pão", Confirm: true})
		if err != nil {
			t.Fatalf("ExecuteCommand() error = %v", err)
		}
		if out.Status != task.StatusCreated {
			t.Errorf("Status = %s, want created", out.Status)
		}

		got := repo.createCalls[0]
		wantStart := time.Date(2024, 3, 11, 9, 0, 0, 0, loc)
		if !got.Start.Equal(wantStart) {
			t.Errorf("Start = %v, want soon fallback %v", got.Start, wantStart)
		}
		if got.ReminderMinutes != 0 {
			t.Errorf("ReminderMinutes = %d, want calendar default for plain add", got.ReminderMinutes)
		}
		if got.ColorID != "5" {
			t.Errorf("ColorID = %s, want 5 (general)", got.ColorID)
		}
	})
}

func TestExecuteCommandMeeting(t *testing.T) {
	ctx := context.Background()

	t.Run("Conflicting slot returns alternatives, never writes", func(t *testing.T) {
		_, loc := fixedNowForTest(t)
		repo := &mockRepository{
			tasks: []model.Event{{
				ID:      "busy-1",
				Summary: "Consulta médica",
				Start:   time.Date(2024, 3, 11, 14, 0, 0, 0, loc),
				End:     time.Date(2024, 3, 11, 15, 0, 0, 0, loc),
			}},
		}
		uc, _ := newTestUseCase(t, repo)

		out, err := uc.ExecuteCommand(ctx, task.CommandInput{
			Sentence: "Reunião com maria próxima segunda às 14h30",
			Confirm:  true,
		})
		if err != nil {
			t.Fatalf("ExecuteCommand() error = %v", err)
		}
		if out.Status != task.StatusConflict {
			t.Fatalf("Status = %s, want conflict", out.Status)
		}
		if out.Conflict == nil || out.Conflict.Label != "Consulta médica" {
			t.Errorf("Conflict = %+v, want the busy event", out.Conflict)
		}
		if len(out.Suggestions) != 2 {
			t.Fatalf("expected 2 suggestions, got %d", len(out.Suggestions))
		}
		wantFirst := time.Date(2024, 3, 11, 8, 0, 0, 0, loc)
		if !out.Suggestions[0].Start.Equal(wantFirst) {
			t.Errorf("first suggestion = %v, want %v", out.Suggestions[0].Start, wantFirst)
		}
		wantSecond := time.Date(2024, 3, 11, 15, 0, 0, 0, loc)
		if !out.Suggestions[1].Start.Equal(wantSecond) {
			t.Errorf("second suggestion = %v, want %v", out.Suggestions[1].Start, wantSecond)
		}
		if len(repo.createCalls) != 0 {
			t.Errorf("conflict must not write, got %d creates", len(repo.createCalls))
		}
	})

	t.Run("Free slot books the meeting", func(t *testing.T) {
		repo := &mockRepository{}
		uc, loc := newTestUseCase(t, repo)

		out, err := uc.ExecuteCommand(ctx, task.CommandInput{
			Sentence: "Reunião com maria próxima segunda às 14h30",
			Confirm:  true,
		})
		if err != nil {
			t.Fatalf("ExecuteCommand() error = %v", err)
		}
		if out.Status != task.StatusScheduled {
			t.Fatalf("Status = %s, want scheduled", out.Status)
		}
		if len(repo.createCalls) != 1 {
			t.Fatalf("expected 1 create, got %d", len(repo.createCalls))
		}

		got := repo.createCalls[0]
		wantStart := time.Date(2024, 3, 11, 14, 30, 0, 0, loc)
		if !got.Start.Equal(wantStart) {
			t.Errorf("Start = %v, want %v", got.Start, wantStart)
		}
		if !strings.Contains(got.Description, "Pessoas: maria") {
			t.Errorf("Description = %q, want attendees line", got.Description)
		}
	})
}

// fixedNowForTest mirrors the helper clock for tests that need the location
// before building the usecase.
func fixedNowForTest(t *testing.T) (time.Time, *time.Location) {
	t.Helper()
	now, loc := fixedNow(t)
	return now(), loc
}
