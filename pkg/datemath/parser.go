package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTimezone anchors all relative date math.
const DefaultTimezone = "America/Sao_Paulo"

// Defaults applied by ResolveInstant when a fragment cannot be used.
const (
	DefaultHour     = 9
	DefaultDuration = 60 * time.Minute
)

var (
	numericDateRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?`)
	dayOfMonthRe  = regexp.MustCompile(`dia (\d{1,2})`)
	clockRe       = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	leadingHourRe = regexp.MustCompile(`(\d+)(?::(\d+))?`)
)

// Parser converts Portuguese date and time fragments to concrete values.
// All relative computations are anchored to a caller-supplied "now" so tests
// can pin the reference instant.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "America/Sao_Paulo".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// relativeRule resolves a relative expression to a date given today's date.
type relativeRule struct {
	keyword string
	resolve func(today time.Time) time.Time
}

// relativeRules is checked in order; first exact match wins.
func (p *Parser) relativeRules() []relativeRule {
	addDays := func(n int) func(time.Time) time.Time {
		return func(today time.Time) time.Time { return today.AddDate(0, 0, n) }
	}
	nextWeekday := func(target time.Weekday) func(time.Time) time.Time {
		return func(today time.Time) time.Time {
			return today.AddDate(0, 0, daysUntilNext(today.Weekday(), target))
		}
	}
	firstOfNextMonth := func(today time.Time) time.Time {
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, p.location).AddDate(0, 1, 0)
	}

	return []relativeRule{
		{"hoje", addDays(0)},
		{"amanhã", addDays(1)},
		{"depois de amanhã", addDays(2)},
		{"próxima semana", nextWeekday(time.Monday)},
		{"próximo mês", firstOfNextMonth},
		{"próxima segunda", nextWeekday(time.Monday)},
		{"próxima terça", nextWeekday(time.Tuesday)},
		{"próxima quarta", nextWeekday(time.Wednesday)},
		{"próxima quinta", nextWeekday(time.Thursday)},
		{"próxima sexta", nextWeekday(time.Friday)},
		{"próximo sábado", nextWeekday(time.Saturday)},
		{"próximo domingo", nextWeekday(time.Sunday)},
		{"fim de semana", nextWeekday(time.Saturday)},
		{"fim do mês", func(today time.Time) time.Time {
			return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, p.location).AddDate(0, 1, -1)
		}},
		{"início do próximo mês", firstOfNextMonth},
	}
}

// ParseDate resolves a date fragment against now. Resolution order: relative
// keyword table, numeric DD/MM(/YY[YY]), "dia N", then the fragment verbatim
// as an unresolved literal. It never fails.
func (p *Parser) ParseDate(fragment string, now time.Time) DateExpr {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	today := p.startOfDay(now)

	// The table holds the short weekday forms; "próxima segunda-feira" must
	// resolve the same as "próxima segunda".
	lookup := strings.TrimSuffix(fragment, "-feira")
	for _, rule := range p.relativeRules() {
		if lookup == rule.keyword {
			return NewResolved(rule.resolve(today))
		}
	}

	if m := numericDateRe.FindStringSubmatch(fragment); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := today.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		if date, ok := p.validDate(year, time.Month(month), day); ok {
			return NewResolved(date)
		}
	}

	if m := dayOfMonthRe.FindStringSubmatch(fragment); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, month := today.Year(), today.Month()
		if day < today.Day() {
			// Day already passed this month: roll to the next month.
			month++
			if month > time.December {
				month = time.January
				year++
			}
		}
		if date, ok := p.validDate(year, month, day); ok {
			return NewResolved(date)
		}
	}

	return NewLiteral(fragment)
}

// ParseTime normalizes a time fragment to zero-padded "HH:MM" 24-hour form.
// Unrecognized fragments are returned verbatim; this function never fails.
func (p *Parser) ParseTime(fragment string) string {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	fragment = strings.TrimSpace(strings.ReplaceAll(fragment, "às", ""))

	// "14h30" or "14h"
	if strings.Contains(fragment, "h") && !strings.Contains(fragment, ":") {
		parts := strings.SplitN(fragment, "h", 2)
		if hour, err := strconv.Atoi(parts[0]); err == nil && hour <= 23 {
			if parts[1] == "" {
				return fmt.Sprintf("%02d:00", hour)
			}
			if minute, minErr := strconv.Atoi(parts[1]); minErr == nil && minute <= 59 {
				return fmt.Sprintf("%02d:%02d", hour, minute)
			}
		}
	}

	// "14:30"
	if m := clockRe.FindStringSubmatch(fragment); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return fmt.Sprintf("%02d:%s", hour, m[2])
		}
	}

	// "2 da tarde", "9 da noite" — afternoon/evening hours below 12 are PM.
	for _, period := range []string{"da tarde", "da noite"} {
		if strings.Contains(fragment, period) {
			rest := strings.TrimSpace(strings.ReplaceAll(fragment, period, ""))
			if m := leadingHourRe.FindStringSubmatch(rest); m != nil {
				hour, _ := strconv.Atoi(m[1])
				if hour < 12 {
					hour += 12
				}
				return fmt.Sprintf("%02d:%s", hour, minuteOrZero(m[2]))
			}
		}
	}

	// "9 da manhã" — kept as written. Literal "12 da manhã" stays 12:00; the
	// ambiguity is documented, not corrected.
	if strings.Contains(fragment, "da manhã") {
		rest := strings.TrimSpace(strings.ReplaceAll(fragment, "da manhã", ""))
		if m := leadingHourRe.FindStringSubmatch(rest); m != nil {
			hour, _ := strconv.Atoi(m[1])
			return fmt.Sprintf("%02d:%s", hour, minuteOrZero(m[2]))
		}
	}

	return fragment
}

// ResolveInstant combines a date fragment and a time fragment into a zoned
// [start, end) window. Unusable fragments fall back to tomorrow at 09:00;
// this function never fails for any input.
func (p *Parser) ResolveInstant(dateFragment, timeFragment string, now time.Time, duration time.Duration) (time.Time, time.Time) {
	if duration <= 0 {
		duration = DefaultDuration
	}

	today := p.startOfDay(now)
	date := today.AddDate(0, 0, 1)
	if dateFragment != "" && dateFragment != Soon {
		if expr := p.ParseDate(dateFragment, now); expr.Resolved {
			date = expr.Date
		}
	}

	hour, minute := DefaultHour, 0
	if m := clockRe.FindStringSubmatch(p.ParseTime(timeFragment)); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if h <= 23 && mm <= 59 {
			hour, minute = h, mm
		}
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, p.location)
	return start, start.Add(duration)
}

// startOfDay returns midnight of t in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// validDate builds a date and rejects ones the calendar normalizes away (31/02...).
func (p *Parser) validDate(year int, month time.Month, day int) (time.Time, bool) {
	date := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if date.Year() != year || date.Month() != month || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

// daysUntilNext returns the days from current to the next occurrence of
// target, rolling a full week when they coincide so "próxima segunda" on a
// Monday never resolves to today.
func daysUntilNext(current, target time.Weekday) int {
	days := (int(target) - int(current) + 7) % 7
	if days == 0 {
		days = 7
	}
	return days
}

func minuteOrZero(m string) string {
	if m == "" {
		return "00"
	}
	if len(m) == 1 {
		return "0" + m
	}
	return m
}
