package model

// Token is a unit of the token stream in character (rune) offsets.
// Space marks tokens that consist of whitespace only, such as newlines.
type Token struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Space bool   `json:"space,omitempty"`
}

// Contains reports whether the character offset lies inside the token
func (t Token) Contains(offset int) bool {
	return t.Start <= offset && offset < t.Start+t.Len()
}

// EndsWithin reports whether a span ending at offset ends inside the token
func (t Token) EndsWithin(offset int) bool {
	return t.Start < offset && offset <= t.Start+t.Len()
}

// Len is the number of characters of the token
func (t Token) Len() int {
	return t.End - t.Start
}
