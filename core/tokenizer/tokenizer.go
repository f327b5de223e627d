// Package tokenizer splits Vietnamese text into tokens with character offsets.
//
// The rule tokenizer follows the conventions of common NLP pipelines: a single
// space after a token is absorbed as trailing whitespace, any other whitespace
// run (newlines, repeated spaces) becomes a token of its own, and punctuation is
// split off as prefix, suffix or infix. URLs and email addresses are kept whole.
//
// Offsets count runes, not bytes, so that string([]rune(text)[t.Start:t.End]) == t.Text.
package tokenizer

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/siherrmann/vnextract/model"
)

// ErrInvalidUTF8 is returned for input that is not valid UTF-8
var ErrInvalidUTF8 = errors.New("text is not valid UTF-8")

// Tokenizer produces the token stream the matcher aligns its matches to
type Tokenizer interface {
	Tokenize(text string) ([]model.Token, error)
}

const (
	prefixChars = `([{"'“‘«<`
	suffixChars = `)]}"'”’».,:;!?…`
)

// RuleTokenizer is the default Tokenizer
type RuleTokenizer struct{}

// New creates a RuleTokenizer
func New() *RuleTokenizer {
	return &RuleTokenizer{}
}

// Tokenize splits text into tokens
func (t *RuleTokenizer) Tokenize(text string) ([]model.Token, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}

	runes := []rune(text)
	tokens := make([]model.Token, 0, len(runes)/4+1)
	emit := func(start, end int, space bool) {
		tokens = append(tokens, model.Token{
			Index: len(tokens),
			Text:  string(runes[start:end]),
			Start: start,
			End:   end,
			Space: space,
		})
	}

	i := 0
	for i < len(runes) {
		start := i
		if unicode.IsSpace(runes[i]) {
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			// A single space after a word belongs to that word
			if len(tokens) > 0 && !tokens[len(tokens)-1].Space && runes[start] == ' ' {
				start++
			}
			if start < i {
				emit(start, i, true)
			}
			continue
		}

		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		for _, span := range splitChunk(runes, start, i) {
			emit(span[0], span[1], false)
		}
	}

	return tokens, nil
}

// Words returns the non-whitespace tokens of text
func Words(text string) ([]model.Token, error) {
	tokens, err := New().Tokenize(text)
	if err != nil {
		return nil, err
	}
	words := make([]model.Token, 0, len(tokens))
	for _, token := range tokens {
		if !token.Space {
			token.Index = len(words)
			words = append(words, token)
		}
	}
	return words, nil
}

// splitChunk splits the whitespace-free run runes[start:end] into token spans
func splitChunk(runes []rune, start, end int) [][2]int {
	var spans [][2]int
	var suffixes [][2]int

	for start < end && strings.ContainsRune(prefixChars, runes[start]) {
		spans = append(spans, [2]int{start, start + 1})
		start++
	}
	for end > start && strings.ContainsRune(suffixChars, runes[end-1]) {
		suffixes = append(suffixes, [2]int{end - 1, end})
		end--
	}

	if start < end {
		if keepWhole(runes[start:end]) {
			spans = append(spans, [2]int{start, end})
		} else {
			spans = append(spans, splitInfixes(runes, start, end)...)
		}
	}

	for i := len(suffixes) - 1; i >= 0; i-- {
		spans = append(spans, suffixes[i])
	}
	return spans
}

// keepWhole reports whether the core of a chunk is a URL or an email address
func keepWhole(core []rune) bool {
	s := strings.ToLower(string(core))
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "www.") {
		return true
	}
	at := strings.IndexRune(s, '@')
	return at > 0 && strings.ContainsRune(s[at:], '.')
}

// splitInfixes splits on punctuation between letters:
// hyphens and : < > = / after an alphanumeric and before a letter,
// commas between letters and a dot between a lowercase and an uppercase letter.
func splitInfixes(runes []rune, start, end int) [][2]int {
	var spans [][2]int
	last := start
	for k := start + 1; k < end-1; k++ {
		prev, r, next := runes[k-1], runes[k], runes[k+1]
		split := false
		switch {
		case strings.ContainsRune("-–—:<>=/", r):
			split = isAlnum(prev) && unicode.IsLetter(next)
		case r == ',':
			split = unicode.IsLetter(prev) && unicode.IsLetter(next)
		case r == '.':
			split = unicode.IsLower(prev) && unicode.IsUpper(next)
		}
		if split {
			spans = append(spans, [2]int{last, k}, [2]int{k, k + 1})
			last = k + 1
		}
	}
	return append(spans, [2]int{last, end})
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
