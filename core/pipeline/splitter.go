package pipeline

import (
	"fmt"
	"strings"
	"unicode"
)

// SentenceSplitter splits text after sentence punctuation followed by
// whitespace and at line breaks. Sentences longer than maxRunes are cut at
// the last whitespace before the limit, or hard at the limit.
func SentenceSplitter(maxRunes int) SplitFunc {
	return func(text string) ([]Segment, error) {
		if maxRunes <= 0 {
			return nil, fmt.Errorf("max sentence length must be positive")
		}

		runes := []rune(text)
		segments := []Segment{}
		start := 0
		for i, r := range runes {
			boundary := r == '\n'
			if !boundary && strings.ContainsRune(".!?…", r) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				boundary = true
			}
			if boundary {
				segments = appendSegment(segments, runes, start, i+1, maxRunes)
				start = i + 1
			}
		}
		segments = appendSegment(segments, runes, start, len(runes), maxRunes)

		return segments, nil
	}
}

// ParagraphSplitter splits text at blank lines
func ParagraphSplitter() SplitFunc {
	return func(text string) ([]Segment, error) {
		runes := []rune(text)
		segments := []Segment{}
		start := 0
		for i := 0; i < len(runes); i++ {
			if runes[i] != '\n' {
				continue
			}
			j := i + 1
			for j < len(runes) && runes[j] != '\n' && unicode.IsSpace(runes[j]) {
				j++
			}
			if j < len(runes) && runes[j] == '\n' {
				segments = appendSegment(segments, runes, start, i, 0)
				start = j + 1
				i = j
			}
		}
		segments = appendSegment(segments, runes, start, len(runes), 0)

		return segments, nil
	}
}

// appendSegment trims the range [start, end) and appends it, cut into
// pieces of at most maxRunes characters when maxRunes is positive
func appendSegment(segments []Segment, runes []rune, start, end, maxRunes int) []Segment {
	for start < end && unicode.IsSpace(runes[start]) {
		start++
	}
	for end > start && unicode.IsSpace(runes[end-1]) {
		end--
	}

	for start < end {
		cut := end
		if maxRunes > 0 && end-start > maxRunes {
			cut = start + maxRunes
			for k := cut; k > start; k-- {
				if unicode.IsSpace(runes[k]) {
					cut = k
					break
				}
			}
		}

		pieceEnd := cut
		for pieceEnd > start && unicode.IsSpace(runes[pieceEnd-1]) {
			pieceEnd--
		}
		segments = append(segments, Segment{
			Text:  string(runes[start:pieceEnd]),
			Start: start,
			End:   pieceEnd,
		})

		start = cut
		for start < end && unicode.IsSpace(runes[start]) {
			start++
		}
	}
	return segments
}
