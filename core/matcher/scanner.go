package matcher

import (
	"fmt"

	"github.com/siherrmann/vnextract/model"
)

// scan runs every pattern of the rule over text and returns all matches in
// pattern order, then match order. Offsets are in characters.
// Matches of different patterns may overlap.
func scan(r *rule, text string) ([]model.RawMatch, error) {
	matches := []model.RawMatch{}
	for _, re := range r.patterns {
		match, err := re.FindStringMatch(text)
		for err == nil && match != nil {
			if match.Length > 0 {
				matches = append(matches, model.RawMatch{
					Start:    match.Index,
					End:      match.Index + match.Length,
					Label:    r.definition.Label,
					Category: r.definition.Category,
					Text:     match.String(),
				})
			}
			match, err = re.FindNextMatch(match)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s with %q: %w", r.definition.Label, re.String(), err)
		}
	}
	return matches, nil
}
