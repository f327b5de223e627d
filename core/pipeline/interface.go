package pipeline

import (
	"fmt"

	"github.com/siherrmann/vnextract/model"
)

// TagFunc labels every word of a text with a BIO tag
type TagFunc func(text string) ([]model.TaggedWord, error)

// FormatFunc rewrites a tagged word list and reports what it changed.
// Indices of the returned changes refer to the input list.
type FormatFunc func(tagged []model.TaggedWord) ([]model.TaggedWord, []model.DateChange, error)

// SplitFunc splits a document into segments short enough for the tagger
type SplitFunc func(text string) ([]Segment, error)

// Segment is a piece of a document in character (rune) offsets
type Segment struct {
	Text  string
	Start int
	End   int
}

// Pipeline combines splitting, tagging and formatting
type Pipeline struct {
	Splitter  SplitFunc
	Tagger    TagFunc
	Formatter FormatFunc // Optional
}

// NewPipeline creates a new tagging pipeline
func NewPipeline(splitter SplitFunc, tagger TagFunc) *Pipeline {
	return &Pipeline{
		Splitter: splitter,
		Tagger:   tagger,
	}
}

// SetSplitter sets the segment splitting function
func (p *Pipeline) SetSplitter(splitter SplitFunc) {
	p.Splitter = splitter
}

// SetTagger sets the word tagging function
func (p *Pipeline) SetTagger(tagger TagFunc) {
	p.Tagger = tagger
}

// SetFormatter sets the formatting function applied to every tagged segment
func (p *Pipeline) SetFormatter(formatter FormatFunc) {
	p.Formatter = formatter
}

// Process splits text, tags every segment and formats the tags.
// Without a splitter the whole text is one segment, without a formatter
// the normalized list equals the tagged list.
func (p *Pipeline) Process(text string) (*model.TagResult, error) {
	if p.Tagger == nil {
		return nil, fmt.Errorf("tagger is not set")
	}

	segments := []Segment{{Text: text, Start: 0, End: len([]rune(text))}}
	if p.Splitter != nil {
		var err error
		segments, err = p.Splitter(text)
		if err != nil {
			return nil, fmt.Errorf("failed to split text: %w", err)
		}
	}

	result := &model.TagResult{
		Tagged:     []model.TaggedWord{},
		Normalized: []model.TaggedWord{},
		Changes:    []model.DateChange{},
	}
	for _, segment := range segments {
		tagged, err := p.Tagger(segment.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to tag segment at %d: %w", segment.Start, err)
		}

		normalized := tagged
		var changes []model.DateChange
		if p.Formatter != nil {
			normalized, changes, err = p.Formatter(tagged)
			if err != nil {
				return nil, fmt.Errorf("failed to format segment at %d: %w", segment.Start, err)
			}
		}

		offset := len(result.Tagged)
		for _, change := range changes {
			change.Start += offset
			change.End += offset
			result.Changes = append(result.Changes, change)
		}
		result.Tagged = append(result.Tagged, tagged...)
		result.Normalized = append(result.Normalized, normalized...)
	}

	return result, nil
}
