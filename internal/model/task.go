package model

import "github.com/mariasoturna/AssistenteVirtual/pkg/datemath"

// Action is the command the user asked for.
type Action string

const (
	ActionAdd     Action = "adicionar"
	ActionRemind  Action = "lembrar"
	ActionList    Action = "listar"
	ActionUpdate  Action = "atualizar"
	ActionDelete  Action = "excluir"
	ActionMeeting Action = "reunir"
	ActionCall    Action = "ligar"
	ActionEmail   Action = "email"
)

// Category classifies a task. Categories have no native field in the calendar
// store; they are serialized as event colors (see CategoryColor).
type Category string

const (
	CategoryWork     Category = "trabalho"
	CategoryPersonal Category = "pessoal"
	CategoryStudy    Category = "estudo"
	CategoryGeneral  Category = "geral"
)

// Categories is the fixed iteration order for scoring and tie-breaks. The
// order is part of the classifier contract: on equal nonzero scores the first
// category in this slice wins.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryStudy}

// Priority is the task urgency level, serialized as a title prefix.
type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "média"
	PriorityLow    Priority = "baixa"
	PriorityNormal Priority = "normal"
)

// Priorities is the fixed check order for priority keyword families.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Sentiment is the coarse emotional tone of the command.
type Sentiment string

const (
	SentimentVeryPositive Sentiment = "muito positivo"
	SentimentPositive     Sentiment = "positivo"
	SentimentNeutral      Sentiment = "neutro"
	SentimentNegative     Sentiment = "negativo"
	SentimentVeryNegative Sentiment = "muito negativo"
)

// DefaultDetails fills the details field when cleanup leaves nothing.
const DefaultDetails = "Tarefa sem descrição"

// categoryColors maps categories to Google Calendar color codes. Together
// with priorityPrefixes this is the serialization contract between the
// intent model and the calendar's limited metadata fields.
var categoryColors = []struct {
	Category Category
	ColorID  string
}{
	{CategoryWork, "11"},
	{CategoryPersonal, "9"},
	{CategoryStudy, "7"},
	{CategoryGeneral, "5"},
}

// priorityPrefixes maps priorities to title prefixes, checked in order.
var priorityPrefixes = []struct {
	Priority Priority
	Prefix   string
}{
	{PriorityHigh, "⚠ "},
	{PriorityMedium, "⚡ "},
	{PriorityLow, "🔹 "},
	{PriorityNormal, ""},
}

// CategoryColor returns the calendar color code for a category.
func CategoryColor(c Category) string {
	for _, cc := range categoryColors {
		if cc.Category == c {
			return cc.ColorID
		}
	}
	return "5"
}

// CategoryFromColor is the reverse mapping; unknown colors read as general.
func CategoryFromColor(colorID string) Category {
	for _, cc := range categoryColors {
		if cc.ColorID == colorID {
			return cc.Category
		}
	}
	return CategoryGeneral
}

// PriorityPrefix returns the title prefix for a priority.
func PriorityPrefix(p Priority) string {
	for _, pp := range priorityPrefixes {
		if pp.Priority == p {
			return pp.Prefix
		}
	}
	return ""
}

// PriorityFromTitle recovers the priority encoded in an event title and
// returns the title with the prefix stripped.
func PriorityFromTitle(title string) (Priority, string) {
	for _, pp := range priorityPrefixes {
		if pp.Prefix != "" && len(title) >= len(pp.Prefix) && title[:len(pp.Prefix)] == pp.Prefix {
			return pp.Priority, title[len(pp.Prefix):]
		}
	}
	return PriorityNormal, title
}

// ValidCategory reports whether s names one of the four known categories.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryWork, CategoryPersonal, CategoryStudy, CategoryGeneral:
		return true
	}
	return false
}

// ValidPriority reports whether s names one of the four known priorities.
func ValidPriority(s string) bool {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow, PriorityNormal:
		return true
	}
	return false
}

// TaskIntent is the canonical interpretation of one natural-language command.
// It is assembled once by the interpreter and never mutated afterwards.
type TaskIntent struct {
	Action    Action
	Deadline  datemath.DateExpr
	Time      string // "HH:MM" 24-hour, or empty when no time was given
	Location  string
	People    []string // extraction order, duplicates preserved
	Category  Category
	Priority  Priority
	Sentiment Sentiment
	Details   string // cleaned free text, never empty
	RawText   string
}
