package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/scheduler"
	"github.com/mariasoturna/AssistenteVirtual/internal/task/repository"
)

var titleCaser = cases.Title(language.BrazilianPortuguese)

// buildSummary assembles the stored event title: priority prefix + details
// with the first letter capitalized.
func buildSummary(priority model.Priority, details string) string {
	return model.PriorityPrefix(priority) + capitalizeFirst(details)
}

// buildDescription serializes the intent metadata the calendar has no native
// fields for.
func buildDescription(intent model.TaskIntent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Categoria: %s\n", intent.Category)
	fmt.Fprintf(&b, "Prioridade: %s\n", intent.Priority)
	if len(intent.People) > 0 {
		fmt.Fprintf(&b, "Pessoas: %s\n", strings.Join(intent.People, ", "))
	}
	fmt.Fprintf(&b, "Sentimento: %s\n", intent.Sentiment)
	fmt.Fprintf(&b, "Comando: %s", intent.RawText)
	return b.String()
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return titleCaser.String(s[:size]) + s[size:]
}

// listCacheKey identifies one repository listing by its window and query.
func listCacheKey(from, to time.Time, query string) string {
	return from.UTC().Format(time.RFC3339) + "|" + to.UTC().Format(time.RFC3339) + "|" + query
}

// invalidateCache drops every cached listing. Called before returning from
// any write so the next read always sees the calendar's current state.
func (uc *implUseCase) invalidateCache() {
	uc.cache.Purge()
}

// fetchTasks reads a listing through the cache.
func (uc *implUseCase) fetchTasks(ctx context.Context, from, to time.Time, query string) ([]model.Event, error) {
	key := listCacheKey(from, to, query)
	if tasks, ok := uc.cache.Get(key); ok {
		return tasks, nil
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{From: from, To: to, Query: query})
	if err != nil {
		return nil, err
	}
	uc.cache.Add(key, tasks)
	return tasks, nil
}

// createEvent writes one event and drops the cached listings.
func (uc *implUseCase) createEvent(ctx context.Context, e model.Event) (model.Event, error) {
	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		ColorID:     e.ColorID,
		Start:       e.Start,
		End:         e.End,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.createEvent: %v", err)
		return model.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	uc.invalidateCache()
	return created, nil
}

// busyIntervals projects events onto the scheduler's interval type.
func busyIntervals(events []model.Event) []scheduler.BusyInterval {
	busy := make([]scheduler.BusyInterval, 0, len(events))
	for _, e := range events {
		if e.Start.IsZero() || e.End.IsZero() {
			continue
		}
		busy = append(busy, scheduler.BusyInterval{Start: e.Start, End: e.End, Label: e.Summary})
	}
	return busy
}
