package matcher

import (
	"fmt"
	"time"

	"github.com/coregx/ahocorasick"
	"github.com/dlclark/regexp2"
	"github.com/siherrmann/vnextract/model"
)

// rule is an entity definition compiled for scanning
type rule struct {
	definition model.EntityTypeDefinition
	patterns   []*regexp2.Regexp
	triggers   *ahocorasick.Automaton
}

func compileRule(definition model.EntityTypeDefinition, timeout time.Duration) (*rule, error) {
	r := &rule{definition: definition}

	for _, pattern := range definition.Patterns {
		re, err := regexp2.Compile(pattern, regexp2.IgnoreCase)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q of %s: %w", pattern, definition.Label, err)
		}
		if timeout > 0 {
			re.MatchTimeout = timeout
		}
		r.patterns = append(r.patterns, re)
	}

	automaton, err := ahocorasick.NewBuilder().
		AddStrings(definition.Triggers).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build trigger automaton of %s: %w", definition.Label, err)
	}
	r.triggers = automaton

	return r, nil
}

// triggered reports whether any trigger occurs in the lowercase haystack
func (r *rule) triggered(lower string) bool {
	if lower == "" {
		return false
	}
	return len(r.triggers.FindAllOverlapping([]byte(lower))) > 0
}
