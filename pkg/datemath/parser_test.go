package datemath_test

import (
	"testing"
	"time"

	"github.com/mariasoturna/AssistenteVirtual/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestParseDate(t *testing.T) {
	loc := saoPaulo(t)
	parser, _ := datemath.NewParser("America/Sao_Paulo")

	// Sunday, March 10, 2024
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, loc)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}

	tests := []struct {
		name     string
		fragment string
		want     time.Time
		literal  string // expected unresolved literal when want is zero
	}{
		{name: "Hoje", fragment: "hoje", want: day(2024, 3, 10)},
		{name: "Amanhã", fragment: "amanhã", want: day(2024, 3, 11)},
		{name: "Depois de amanhã", fragment: "depois de amanhã", want: day(2024, 3, 12)},
		{name: "Próxima semana (next Monday)", fragment: "próxima semana", want: day(2024, 3, 11)},
		{name: "Próxima segunda from Sunday", fragment: "próxima segunda", want: day(2024, 3, 11)},
		{name: "Long weekday form", fragment: "próxima segunda-feira", want: day(2024, 3, 11)},
		{name: "Long weekday form later in week", fragment: "próxima sexta-feira", want: day(2024, 3, 15)},
		{name: "Próximo domingo rolls a full week", fragment: "próximo domingo", want: day(2024, 3, 17)},
		{name: "Fim de semana (next Saturday)", fragment: "fim de semana", want: day(2024, 3, 16)},
		{name: "Fim do mês", fragment: "fim do mês", want: day(2024, 3, 31)},
		{name: "Próximo mês", fragment: "próximo mês", want: day(2024, 4, 1)},
		{name: "Início do próximo mês", fragment: "início do próximo mês", want: day(2024, 4, 1)},
		{name: "Numeric DD/MM", fragment: "25/12", want: day(2024, 12, 25)},
		{name: "Numeric DD/MM/YYYY", fragment: "05/07/2025", want: day(2025, 7, 5)},
		{name: "Two-digit year is 2000-based", fragment: "05/07/25", want: day(2025, 7, 5)},
		{name: "Invalid calendar date falls through", fragment: "31/02/2024", literal: "31/02/2024"},
		{name: "Dia N still ahead this month", fragment: "dia 20", want: day(2024, 3, 20)},
		{name: "Dia N already passed rolls to next month", fragment: "dia 5", want: day(2024, 4, 5)},
		{name: "Unrecognized returns literal", fragment: "qualquer dia desses", literal: "qualquer dia desses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.ParseDate(tt.fragment, now)
			if tt.literal != "" {
				if got.Resolved {
					t.Fatalf("ParseDate(%q) resolved to %v, want literal %q", tt.fragment, got.Date, tt.literal)
				}
				if got.Literal != tt.literal {
					t.Errorf("ParseDate(%q) literal = %q, want %q", tt.fragment, got.Literal, tt.literal)
				}
				return
			}
			if !got.Resolved {
				t.Fatalf("ParseDate(%q) unresolved (literal %q), want %v", tt.fragment, got.Literal, tt.want)
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.fragment, got.Date, tt.want)
			}
		})
	}
}

func TestParseDateDecemberRollover(t *testing.T) {
	loc := saoPaulo(t)
	parser, _ := datemath.NewParser("America/Sao_Paulo")
	now := time.Date(2024, 12, 20, 10, 0, 0, 0, loc)

	got := parser.ParseDate("dia 5", now)
	want := time.Date(2025, 1, 5, 0, 0, 0, 0, loc)
	if !got.Resolved || !got.Date.Equal(want) {
		t.Errorf("ParseDate(dia 5) in late December = %v, want %v", got, want)
	}

	got = parser.ParseDate("próximo mês", now)
	if !got.Resolved || !got.Date.Equal(want.AddDate(0, 0, -4)) {
		t.Errorf("ParseDate(próximo mês) = %v, want 01/01/2025", got)
	}
}

func TestParseTime(t *testing.T) {
	parser, _ := datemath.NewParser("America/Sao_Paulo")

	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{"Hour with minutes", "14h30", "14:30"},
		{"Hour only", "9h", "09:00"},
		{"Hour with às prefix", "às 14h", "14:00"},
		{"Colon form", "8:15", "08:15"},
		{"Afternoon adds twelve", "2 da tarde", "14:00"},
		{"Afternoon with minutes", "2:30 da tarde", "14:30"},
		{"Afternoon already PM unchanged", "14 da tarde", "14:00"},
		{"Evening adds twelve", "9 da noite", "21:00"},
		{"Morning as given", "9 da manhã", "09:00"},
		{"Noon ambiguity kept literally", "12 da manhã", "12:00"},
		{"Out-of-range hour returned verbatim", "25h", "25h"},
		{"Unrecognized returned verbatim", "mais tarde", "mais tarde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.ParseTime(tt.fragment); got != tt.want {
				t.Errorf("ParseTime(%q) = %q, want %q", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestResolveInstant(t *testing.T) {
	loc := saoPaulo(t)
	parser, _ := datemath.NewParser("America/Sao_Paulo")
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, loc) // Sunday

	t.Run("Date and time resolved", func(t *testing.T) {
		start, end := parser.ResolveInstant("amanhã", "9h", now, 0)
		wantStart := time.Date(2024, 3, 11, 9, 0, 0, 0, loc)
		if !start.Equal(wantStart) {
			t.Errorf("start = %v, want %v", start, wantStart)
		}
		if got := end.Sub(start); got != 60*time.Minute {
			t.Errorf("duration = %v, want 1h", got)
		}
	})

	t.Run("Custom duration", func(t *testing.T) {
		start, end := parser.ResolveInstant("hoje", "14:00", now, 90*time.Minute)
		if got := end.Sub(start); got != 90*time.Minute {
			t.Errorf("duration = %v, want 90m", got)
		}
	})

	t.Run("Never fails and always start before end", func(t *testing.T) {
		fragments := []struct{ date, clock string }{
			{"", ""},
			{datemath.Soon, ""},
			{"31/02/2024", "99:99"},
			{"sei lá quando", "de tardezinha"},
			{"amanhã", ""},
			{"", "14h"},
		}
		tomorrow9 := time.Date(2024, 3, 11, 9, 0, 0, 0, loc)
		for _, f := range fragments {
			start, end := parser.ResolveInstant(f.date, f.clock, now, 0)
			if !start.Before(end) {
				t.Errorf("ResolveInstant(%q, %q): start %v not before end %v", f.date, f.clock, start, end)
			}
			if end.Sub(start) != 60*time.Minute {
				t.Errorf("ResolveInstant(%q, %q): duration %v, want 1h", f.date, f.clock, end.Sub(start))
			}
			if f.date == "31/02/2024" && !start.Equal(tomorrow9) {
				t.Errorf("invalid date should fall back to tomorrow 09:00, got %v", start)
			}
		}
	})
}
