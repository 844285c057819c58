package usecase

import (
	"regexp"
	"strings"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
)

// cleanDetails strips the extracted entity spans and the stop-word list from
// the sentence and collapses whitespace. An empty result gets the standard
// placeholder so details is never empty.
func cleanDetails(text string, spans []string) string {
	for _, span := range spans {
		text = removeWordSpan(text, span)
	}
	for _, word := range stopWords {
		text = removeWordSpan(text, word)
	}

	cleaned := strings.Join(strings.Fields(text), " ")
	if cleaned == "" {
		return model.DefaultDetails
	}
	return cleaned
}

// removeWordSpan deletes whole-word occurrences of span, so "amanhã" never
// bites into "depois de amanhã" leftovers or longer words. The boundary
// guards consume the delimiter, so back-to-back occurrences need another
// pass; each pass shortens the text, so the loop terminates.
func removeWordSpan(text, span string) string {
	if span == "" {
		return text
	}
	re, err := regexp.Compile(`(^|[^\pL\pN])` + regexp.QuoteMeta(span) + `([^\pL\pN]|$)`)
	if err != nil {
		return text
	}
	for {
		replaced := re.ReplaceAllString(text, "$1$2")
		if replaced == text {
			return replaced
		}
		text = replaced
	}
}
