// Package nlptag is a lightweight linguistic pipeline for informal Brazilian
// Portuguese. It tags date, time, location and person spans in a sentence
// using compiled patterns and gazetteer lexicons — a fixed rule system, not a
// trained model.
package nlptag

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pattern sources, compiled once by NewPipeline. Longest alternatives come
// first so "depois de amanhã" wins over the embedded "amanhã".
const (
	datePattern = `depois de amanhã|início do próximo mês|próxima semana|próximo mês` +
		`|próxima (?:segunda|terça|quarta|quinta|sexta)(?:-feira)?` +
		`|próximo (?:sábado|domingo)` +
		`|fim de semana|fim do mês|hoje|amanhã` +
		`|\d{1,2}/\d{1,2}(?:/\d{2,4})?` +
		`|dia \d{1,2}`

	timePattern = `(?:às\s+)?\d{1,2}(?::\d{2})?\s+da\s+(?:manhã|tarde|noite)` +
		`|(?:às\s+)?(?:\d{1,2}:\d{2}|\d{1,2}h(?:\d{2})?)`
)

// placeLexicon are the venue words recognized after "no", "na" or "em".
var placeLexicon = []string{
	"sala de reuniões", "sala de reunião", "escritório", "consultório",
	"auditório", "laboratório", "restaurante", "shopping", "hospital",
	"clínica", "faculdade", "universidade", "escola", "empresa", "academia",
	"aeroporto", "biblioteca", "cartório", "padaria", "mercado",
	"supermercado", "farmácia", "igreja", "parque", "praia", "hotel",
	"banco", "casa",
}

// nameLexicon is the gazetteer of common Brazilian given names.
var nameLexicon = []string{
	"ana", "maria", "joão", "josé", "pedro", "paulo", "carlos", "lucas",
	"mateus", "marcos", "marcelo", "ricardo", "roberto", "roberta",
	"fernando", "fernanda", "juliana", "julia", "mariana", "marina",
	"rafael", "rafaela", "bruno", "bruna", "camila", "felipe", "gustavo",
	"beatriz", "rodrigo", "amanda", "thiago", "tiago", "leticia", "larissa",
	"renato", "renata", "patricia", "aline", "eduardo", "daniel", "daniela",
	"gabriel", "gabriela", "luiz", "luiza", "sofia", "clara", "helena",
	"caio", "vitor", "vitoria", "diego", "leonardo", "isabela",
}

// Pipeline tags entity spans in lowercased Portuguese text. It is pure and
// safe for concurrent use once built.
type Pipeline struct {
	dateRe     *regexp.Regexp
	timeRe     *regexp.Regexp
	locationRe *regexp.Regexp
	personRe   *regexp.Regexp
}

// NewPipeline compiles the tagging patterns and lexicons. Any compilation
// failure is returned so callers can abort at startup: the assistant cannot
// operate without the pipeline.
func NewPipeline() (*Pipeline, error) {
	if len(placeLexicon) == 0 || len(nameLexicon) == 0 {
		return nil, fmt.Errorf("entity lexicons are empty")
	}

	dateRe, err := regexp.Compile(datePattern)
	if err != nil {
		return nil, fmt.Errorf("compile date pattern: %w", err)
	}
	timeRe, err := regexp.Compile(timePattern)
	if err != nil {
		return nil, fmt.Errorf("compile time pattern: %w", err)
	}
	locationRe, err := regexp.Compile(`(?:no|na|em)\s+(` + alternation(placeLexicon) + `)`)
	if err != nil {
		return nil, fmt.Errorf("compile location pattern: %w", err)
	}
	personRe, err := regexp.Compile(alternation(nameLexicon))
	if err != nil {
		return nil, fmt.Errorf("compile person pattern: %w", err)
	}

	return &Pipeline{
		dateRe:     dateRe,
		timeRe:     timeRe,
		locationRe: locationRe,
		personRe:   personRe,
	}, nil
}

// Extract tags all entity spans in text. Input is lowercased before matching.
// Within each entity type the order is source order; no ordering is promised
// across types.
func (p *Pipeline) Extract(text string) []Entity {
	text = strings.ToLower(text)

	var entities []Entity
	dateSpans := boundedMatches(p.dateRe, text)
	for _, idx := range dateSpans {
		entities = append(entities, Entity{Type: EntityDate, Text: text[idx[0]:idx[1]]})
	}

	// Drop time spans already consumed by a date match ("10/03" vs "10h").
	for _, idx := range boundedMatches(p.timeRe, text) {
		if overlapsAny(idx, dateSpans) {
			continue
		}
		entities = append(entities, Entity{Type: EntityTime, Text: text[idx[0]:idx[1]]})
	}

	for _, m := range p.locationRe.FindAllStringSubmatchIndex(text, -1) {
		if wordBounded(text, m[0], m[3]) {
			entities = append(entities, Entity{Type: EntityLocation, Text: text[m[2]:m[3]]})
		}
	}
	for _, idx := range boundedMatches(p.personRe, text) {
		entities = append(entities, Entity{Type: EntityPerson, Text: text[idx[0]:idx[1]]})
	}

	return entities
}

// Tokenize splits lowercased text into word tokens, dropping punctuation.
// The sentiment scorer consumes this stream.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// alternation joins lexicon entries longest-first so leftmost-first matching
// never lets a short entry shadow a longer one ("maria" vs "mariana").
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	return strings.Join(sorted, "|")
}

// boundedMatches returns the match spans of re that sit on word boundaries.
func boundedMatches(re *regexp.Regexp, text string) [][]int {
	var spans [][]int
	for _, idx := range re.FindAllStringIndex(text, -1) {
		if wordBounded(text, idx[0], idx[1]) {
			spans = append(spans, idx)
		}
	}
	return spans
}

// wordBounded reports whether the span [start, end) is a whole word, i.e. not
// embedded in a longer run of letters or digits. Go's \b only knows ASCII
// word characters, so spans ending in an accented rune ("josé") need this
// explicit rune-level check.
func wordBounded(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

func overlapsAny(span []int, others [][]int) bool {
	for _, o := range others {
		if span[0] < o[1] && o[0] < span[1] {
			return true
		}
	}
	return false
}
