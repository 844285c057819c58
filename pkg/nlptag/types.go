package nlptag

// EntityType is the tag assigned to an extracted span.
type EntityType string

const (
	EntityDate     EntityType = "DATE"
	EntityTime     EntityType = "TIME"
	EntityLocation EntityType = "LOC"
	EntityPerson   EntityType = "PERSON"
)

// Entity is a tagged span of the input sentence. Text is the span exactly as
// matched (lowercased input), so callers can strip it from the sentence again.
type Entity struct {
	Type EntityType
	Text string
}
