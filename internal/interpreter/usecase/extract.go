package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/mariasoturna/AssistenteVirtual/internal/interpreter"
	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/pkg/datemath"
	"github.com/mariasoturna/AssistenteVirtual/pkg/nlptag"
)

var clockValueRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ExtractIntent interprets one sentence into a TaskIntent. Entity extraction,
// temporal normalization and keyword classification each run exactly once;
// every unparseable fragment degrades to its documented fallback, so the
// record is always fully populated.
func (uc *implUseCase) ExtractIntent(ctx context.Context, sentence string) (model.TaskIntent, error) {
	text := strings.ToLower(strings.TrimSpace(sentence))
	if text == "" {
		return model.TaskIntent{}, interpreter.ErrEmptySentence
	}

	now := uc.now()
	entities := uc.pipeline.Extract(text)

	var dateFragment, timeFragment, location string
	var people []string
	var spans []string

	for _, e := range entities {
		spans = append(spans, e.Text)
		switch e.Type {
		case nlptag.EntityDate:
			dateFragment = e.Text
		case nlptag.EntityTime:
			timeFragment = e.Text
		case nlptag.EntityLocation:
			location = e.Text
		case nlptag.EntityPerson:
			people = append(people, e.Text)
		}
	}

	deadline := datemath.NewLiteral(datemath.Soon)
	if dateFragment != "" {
		deadline = uc.dateMath.ParseDate(dateFragment, now)
	}

	// The time field carries a validated HH:MM or nothing; the raw fragment
	// still participates in text cleanup either way.
	clock := ""
	if timeFragment != "" {
		if normalized := uc.dateMath.ParseTime(timeFragment); clockValueRe.MatchString(normalized) {
			clock = normalized
		}
	}

	intent := model.TaskIntent{
		Action:    classifyAction(text),
		Deadline:  deadline,
		Time:      clock,
		Location:  location,
		People:    people,
		Category:  classifyCategory(text),
		Priority:  classifyPriority(text),
		Sentiment: scoreSentiment(nlptag.Tokenize(text)),
		Details:   cleanDetails(text, spans),
		RawText:   text,
	}

	uc.l.Debugf(ctx, "ExtractIntent: action=%s deadline=%s time=%q category=%s priority=%s",
		intent.Action, intent.Deadline, intent.Time, intent.Category, intent.Priority)

	return intent, nil
}
