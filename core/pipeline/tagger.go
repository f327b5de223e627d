package pipeline

import (
	"fmt"
	"unicode/utf8"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/siherrmann/vnextract/core/tokenizer"
	"github.com/siherrmann/vnextract/helper"
	"github.com/siherrmann/vnextract/model"
)

// DefaultTagger creates a word tagger backed by a token classification model.
// The model is downloaded on first use. Entities found by the model are
// projected onto the words of the rule tokenizer as B-/I- tags of the Labels
// vocabulary, every other word is tagged O. The returned destroy function releases the session.
func DefaultTagger(config *helper.ModelConfiguration) (TagFunc, func() error, error) {
	if config == nil {
		return nil, nil, fmt.Errorf("model configuration is nil")
	}

	modelPath, err := helper.PrepareModel(config.ModelDir, config.ModelName, config.OnnxFilePath)
	if err != nil {
		return nil, nil, err
	}

	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create hugot session: %w", err)
	}

	nerConfig := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "vnextract-ner",
		Options: []hugot.TokenClassificationOption{
			pipelines.WithSimpleAggregation(),
			pipelines.WithIgnoreLabels([]string{OutsideTag}),
		},
	}
	nerPipeline, err := hugot.NewPipeline(session, nerConfig)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, nil, fmt.Errorf("failed to create NER pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, nil, fmt.Errorf("failed to create NER pipeline: %w", err)
	}

	tag := func(text string) ([]model.TaggedWord, error) {
		words, err := tokenizer.Words(text)
		if err != nil {
			return nil, err
		}
		if len(words) == 0 {
			return []model.TaggedWord{}, nil
		}

		result, err := nerPipeline.RunPipeline([]string{text})
		if err != nil {
			return nil, fmt.Errorf("failed to run NER: %w", err)
		}

		var entities []pipelines.Entity
		if len(result.Entities) > 0 {
			entities = result.Entities[0]
		}
		return projectEntities(text, words, entities), nil
	}

	return tag, session.Destroy, nil
}

// projectEntities tags words with the entities overlapping them.
// Entity offsets are byte offsets into text, word offsets are characters.
// The first word of an entity gets B-, the following ones I-. Entity types
// are mapped onto Labels, types outside it leave their words tagged O.
func projectEntities(text string, words []model.Token, entities []pipelines.Entity) []model.TaggedWord {
	byteOffsets := runeToByteOffsets(text)

	tagged := make([]model.TaggedWord, len(words))
	for i, word := range words {
		tagged[i] = model.TaggedWord{Word: word.Text, Tag: OutsideTag}
	}

	for _, entity := range entities {
		start, end := int(entity.Start), int(entity.End)
		if start >= end || end > len(text) {
			continue
		}
		entityType, ok := vocabularyType(entity.Entity)
		if !ok {
			continue
		}

		first := true
		for i, word := range words {
			wordStart, wordEnd := byteOffsets[word.Start], byteOffsets[word.End]
			if wordEnd <= start || wordStart >= end {
				continue
			}
			if tagged[i].Tag != OutsideTag {
				first = false
				continue
			}
			prefix := "I-"
			if first {
				prefix = "B-"
				first = false
			}
			tagged[i].Tag = prefix + entityType
			tagged[i].Score = float64(entity.Score)
		}
	}

	return tagged
}

// runeToByteOffsets maps every character offset of text, including the end, to its byte offset
func runeToByteOffsets(text string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}
