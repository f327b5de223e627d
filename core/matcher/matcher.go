// Package matcher is the rule-based entity recognizer. It gates registry
// labels by trigger keywords, scans their patterns, keeps matches with a
// trigger nearby, aligns them to tokens and resolves overlaps.
package matcher

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/google/uuid"
	"github.com/siherrmann/vnextract/core/registry"
	"github.com/siherrmann/vnextract/helper"
	"github.com/siherrmann/vnextract/model"
)

// Matcher is safe for concurrent use once constructed
type Matcher struct {
	registry *registry.Registry
	rules    []*rule
	window   int
	log      *slog.Logger
}

// New compiles every definition of the registry in declaration order
func New(reg *registry.Registry, config model.Config, logger *slog.Logger) (*Matcher, error) {
	if reg == nil {
		return nil, helper.NewError("create matcher", fmt.Errorf("registry is nil"))
	}
	if config.ContextWindow < 0 {
		return nil, helper.NewError("create matcher", fmt.Errorf("context window must not be negative, got %d", config.ContextWindow))
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &Matcher{
		registry: reg,
		window:   config.ContextWindow,
		log:      logger,
	}
	for _, definition := range reg.Definitions() {
		r, err := compileRule(definition, config.RegexTimeout)
		if err != nil {
			return nil, helper.NewError("create matcher", err)
		}
		m.rules = append(m.rules, r)
	}

	return m, nil
}

// Registry returns the registry the matcher was built from
func (m *Matcher) Registry() *registry.Registry {
	return m.registry
}

// Candidates returns the validated raw matches of text in production order:
// registry order, then pattern order, then match order.
func (m *Matcher) Candidates(text string) ([]model.RawMatch, error) {
	lower := lowerRunes(text)
	lowerText := string(lower)

	candidates := []model.RawMatch{}
	for _, r := range m.gate(lowerText) {
		matches, err := scan(r, text)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}
		for _, match := range matches {
			if validate(r, match, lower, m.window) {
				candidates = append(candidates, match)
			}
		}
	}

	return candidates, nil
}

// Match returns the final entity set of text over its token stream:
// sorted by start token and pairwise non-overlapping.
// The text of every returned span is the text covered by its tokens.
func (m *Matcher) Match(text string, tokens []model.Token) ([]model.EntitySpan, error) {
	candidates, err := m.Candidates(text)
	if err != nil {
		return nil, err
	}

	spans := make([]model.EntitySpan, 0, len(candidates))
	for _, candidate := range candidates {
		span, ok := align(candidate, tokens)
		if !ok {
			m.log.Debug("Dropped unaligned match", slog.String("label", candidate.Label), slog.String("text", candidate.Text), slog.Int("start", candidate.Start), slog.Int("end", candidate.End))
			continue
		}
		spans = append(spans, span)
	}

	entities := Resolve(spans)

	runes := []rune(text)
	for i := range entities {
		entities[i].ID = uuid.New()
		entities[i].Text = coveredText(runes, tokens, entities[i].TokenStart, entities[i].TokenEnd)
	}

	m.log.Debug("Matched entities", slog.Int("candidates", len(candidates)), slog.Int("aligned", len(spans)), slog.Int("entities", len(entities)))

	return entities, nil
}

// Annotate fills the entities of a tokenized document
func (m *Matcher) Annotate(doc *model.Document) error {
	entities, err := m.Match(doc.Text, doc.Tokens)
	if err != nil {
		return err
	}
	doc.Entities = entities
	return nil
}

// lowerRunes lowercases rune by rune so that offsets into the result are
// offsets into the original text
func lowerRunes(text string) []rune {
	runes := []rune(text)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func coveredText(runes []rune, tokens []model.Token, start, end int) string {
	if start < 0 || end > len(tokens) || start >= end {
		return ""
	}
	from, to := tokens[start].Start, tokens[end-1].End
	if from < 0 || to > len(runes) || from > to {
		return ""
	}
	return string(runes[from:to])
}
