package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mariasoturna/AssistenteVirtual/internal/interpreter"
	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/pkg/datemath"
)

func TestExtractIntent(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		sentence      string
		wantAction    model.Action
		wantDate      string
		wantSoon      bool
		wantTime      string
		wantLocation  string
		wantPeople    []string
		wantCategory  model.Category
		wantPriority  model.Priority
		wantSentiment model.Sentiment
		wantDetails   string
	}{
		{
			name:          "Reminder with relative date, clock and urgency",
			sentence:      "Lembrar de ligar para cliente amanhã às 9h, urgente",
			wantAction:    model.ActionRemind,
			wantDate:      "11/03/2024",
			wantTime:      "09:00",
			wantCategory:  model.CategoryWork,
			wantPriority:  model.PriorityHigh,
			wantSentiment: model.SentimentPositive,
			wantDetails:   "de ligar para cliente , urgente",
		},
		{
			name:          "Same errand without the reminder verb is a call",
			sentence:      "Ligar para o cliente amanhã às 9h",
			wantAction:    model.ActionCall,
			wantDate:      "11/03/2024",
			wantTime:      "09:00",
			wantCategory:  model.CategoryWork,
			wantPriority:  model.PriorityNormal,
			wantSentiment: model.SentimentNeutral,
			wantDetails:   "ligar para o cliente",
		},
		{
			name:          "Meeting with person, venue and weekday",
			sentence:      "Reunião com maria na sala de reunião próxima segunda às 14h30",
			wantAction:    model.ActionMeeting,
			wantDate:      "11/03/2024",
			wantTime:      "14:30",
			wantLocation:  "sala de reunião",
			wantPeople:    []string{"maria"},
			wantCategory:  model.CategoryWork,
			wantPriority:  model.PriorityNormal,
			wantSentiment: model.SentimentNeutral,
			wantDetails:   "com na",
		},
		{
			name:          "Long weekday form resolves like the short one",
			sentence:      "Reunião com cliente próxima segunda-feira às 14h",
			wantAction:    model.ActionMeeting,
			wantDate:      "11/03/2024",
			wantTime:      "14:00",
			wantCategory:  model.CategoryWork,
			wantPriority:  model.PriorityNormal,
			wantSentiment: model.SentimentNeutral,
			wantDetails:   "com cliente",
		},
		{
			name:          "Accent-final name is extracted",
			sentence:      "Almoço com josé na padaria",
			wantAction:    model.ActionAdd,
			wantSoon:      true,
			wantLocation:  "padaria",
			wantPeople:    []string{"josé"},
			wantCategory:  model.CategoryGeneral,
			wantPriority:  model.PriorityNormal,
			wantSentiment: model.SentimentNeutral,
			wantDetails:   "almoço com na",
		},
		{
			name:          "No temporal fragments falls back to soon and empty time",
			sentence:      "Comprar pão",
			wantAction:    model.ActionAdd,
			wantSoon:      true,
			wantCategory:  model.CategoryGeneral,
			wantPriority:  model.PriorityNormal,
			wantSentiment: model.SentimentNeutral,
			wantDetails:   "comprar pão",
		},
		{
			name:          "Cleanup emptying the sentence yields the placeholder",
			sentence:      "Lembrar amanhã",
			wantAction:    model.ActionRemind,
			wantDate:      "11/03/2024",
			wantCategory:  model.CategoryGeneral,
			wantPriority:  model.PriorityNormal,
			wantSentiment: model.SentimentNeutral,
			wantDetails:   model.DefaultDetails,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, err := uc.ExtractIntent(ctx, tt.sentence)
			if err != nil {
				t.Fatalf("ExtractIntent(%q) error = %v", tt.sentence, err)
			}

			if intent.Action != tt.wantAction {
				t.Errorf("Action = %s, want %s", intent.Action, tt.wantAction)
			}
			if tt.wantSoon {
				if !intent.Deadline.IsSoon() {
					t.Errorf("Deadline = %s, want the soon literal", intent.Deadline)
				}
			} else {
				if !intent.Deadline.Resolved {
					t.Fatalf("Deadline = %s, want a resolved date", intent.Deadline)
				}
				if got := intent.Deadline.Date.Format(datemath.DateFormat); got != tt.wantDate {
					t.Errorf("Deadline = %s, want %s", got, tt.wantDate)
				}
			}
			if intent.Time != tt.wantTime {
				t.Errorf("Time = %q, want %q", intent.Time, tt.wantTime)
			}
			if intent.Location != tt.wantLocation {
				t.Errorf("Location = %q, want %q", intent.Location, tt.wantLocation)
			}
			if !reflect.DeepEqual(intent.People, tt.wantPeople) {
				t.Errorf("People = %v, want %v", intent.People, tt.wantPeople)
			}
			if intent.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", intent.Category, tt.wantCategory)
			}
			if intent.Priority != tt.wantPriority {
				t.Errorf("Priority = %s, want %s", intent.Priority, tt.wantPriority)
			}
			if intent.Sentiment != tt.wantSentiment {
				t.Errorf("Sentiment = %s, want %s", intent.Sentiment, tt.wantSentiment)
			}
			if intent.Details != tt.wantDetails {
				t.Errorf("Details = %q, want %q", intent.Details, tt.wantDetails)
			}
		})
	}
}

func TestExtractIntentEmptySentence(t *testing.T) {
	uc, _ := newTestUseCase(t)

	for _, sentence := range []string{"", "   ", "\t\n"} {
		if _, err := uc.ExtractIntent(context.Background(), sentence); !errors.Is(err, interpreter.ErrEmptySentence) {
			t.Errorf("ExtractIntent(%q) error = %v, want ErrEmptySentence", sentence, err)
		}
	}
}

func TestExtractIntentDeterministic(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()
	sentence := "Reunião com joão no escritório dia 15 às 10:00 sobre o projeto, importante"

	first, err := uc.ExtractIntent(ctx, sentence)
	if err != nil {
		t.Fatalf("ExtractIntent() error = %v", err)
	}
	second, err := uc.ExtractIntent(ctx, sentence)
	if err != nil {
		t.Fatalf("ExtractIntent() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated interpretation diverged:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}
