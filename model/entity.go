package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

// EntityTypeDefinition describes one entity label of the pattern registry.
// Triggers are lowercase keywords whose presence near a pattern match
// licenses treating the match as an entity.
type EntityTypeDefinition struct {
	Label    string   `json:"label"`
	Category string   `json:"category,omitempty"`
	Patterns []string `json:"patterns"`
	Triggers []string `json:"triggers"`
}

// RawMatch is a single regex hit in character (rune) offsets
type RawMatch struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// EntitySpan is a match projected onto token boundaries.
// TokenEnd is exclusive. Start and End keep the character offsets of the match.
type EntitySpan struct {
	ID         uuid.UUID `json:"id"`
	TokenStart int       `json:"token_start"`
	TokenEnd   int       `json:"token_end"`
	Start      int       `json:"start"`
	End        int       `json:"end"`
	Label      string    `json:"label"`
	Category   string    `json:"category"`
	Text       string    `json:"text"`
}

// Overlaps reports whether the token ranges of e and other intersect
func (e EntitySpan) Overlaps(other EntitySpan) bool {
	return !(e.TokenEnd <= other.TokenStart || e.TokenStart >= other.TokenEnd)
}

// Length is the number of characters of the matched text
func (e EntitySpan) Length() int {
	return utf8.RuneCountInString(e.Text)
}

// String returns a debug representation, e.g. PHONE("0912345678")[3:4]
func (e EntitySpan) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", e.Label, e.Text, e.TokenStart, e.TokenEnd)
}
