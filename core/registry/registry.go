// Package registry holds the catalog of entity categories and labels the
// rule-based matcher scans for. A Registry is immutable once constructed and
// safe to share between goroutines.
package registry

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/siherrmann/vnextract/helper"
	"github.com/siherrmann/vnextract/model"
)

// UnknownCategory is the category of labels missing from the registry
const UnknownCategory = "UNKNOWN"

// CategoryDefinition groups the entity definitions of one category
type CategoryDefinition struct {
	Name     string                       `json:"name"`
	Entities []model.EntityTypeDefinition `json:"entities"`
}

// Registry maps categories to labels to entity definitions.
// Declaration order is kept; it decides the order in which matches are produced.
type Registry struct {
	categories  []string
	labels      map[string][]string
	definitions map[string]model.EntityTypeDefinition
	order       []string
}

// New validates the categories and builds a Registry.
// Labels must be unique across categories, every label needs at least one
// pattern and one trigger, and every pattern must compile.
func New(categories []CategoryDefinition) (*Registry, error) {
	r := &Registry{
		labels:      map[string][]string{},
		definitions: map[string]model.EntityTypeDefinition{},
	}

	for _, category := range categories {
		if category.Name == "" {
			return nil, helper.NewError("build registry", fmt.Errorf("category name is empty"))
		}
		if _, exists := r.labels[category.Name]; exists {
			return nil, helper.NewError("build registry", fmt.Errorf("duplicate category %s", category.Name))
		}
		r.categories = append(r.categories, category.Name)
		r.labels[category.Name] = []string{}

		for _, entity := range category.Entities {
			definition, err := newDefinition(category.Name, entity)
			if err != nil {
				return nil, helper.NewError("build registry", err)
			}
			if _, exists := r.definitions[definition.Label]; exists {
				return nil, helper.NewError("build registry", fmt.Errorf("duplicate label %s", definition.Label))
			}
			r.definitions[definition.Label] = definition
			r.labels[category.Name] = append(r.labels[category.Name], definition.Label)
			r.order = append(r.order, definition.Label)
		}
	}

	return r, nil
}

func newDefinition(category string, entity model.EntityTypeDefinition) (model.EntityTypeDefinition, error) {
	if entity.Label == "" {
		return model.EntityTypeDefinition{}, fmt.Errorf("label in category %s is empty", category)
	}
	if len(entity.Patterns) == 0 {
		return model.EntityTypeDefinition{}, fmt.Errorf("label %s has no patterns", entity.Label)
	}
	if len(entity.Triggers) == 0 {
		return model.EntityTypeDefinition{}, fmt.Errorf("label %s has no triggers", entity.Label)
	}

	for _, pattern := range entity.Patterns {
		if _, err := regexp2.Compile(pattern, regexp2.IgnoreCase); err != nil {
			return model.EntityTypeDefinition{}, fmt.Errorf("pattern %q of label %s: %w", pattern, entity.Label, err)
		}
	}

	triggers := make([]string, 0, len(entity.Triggers))
	for _, trigger := range entity.Triggers {
		trigger = strings.ToLower(strings.TrimSpace(trigger))
		if trigger == "" {
			return model.EntityTypeDefinition{}, fmt.Errorf("label %s has an empty trigger", entity.Label)
		}
		triggers = append(triggers, trigger)
	}

	return model.EntityTypeDefinition{
		Label:    entity.Label,
		Category: category,
		Patterns: append([]string(nil), entity.Patterns...),
		Triggers: triggers,
	}, nil
}

// Definition returns the definition of label in category.
// Unknown keys are a programming error and panic.
func (r *Registry) Definition(category, label string) model.EntityTypeDefinition {
	definition, ok := r.definitions[label]
	if !ok || definition.Category != category {
		panic(fmt.Sprintf("registry: unknown entity %s/%s", category, label))
	}
	return copyDefinition(definition)
}

// Lookup returns the definition of label regardless of its category
func (r *Registry) Lookup(label string) (model.EntityTypeDefinition, bool) {
	definition, ok := r.definitions[label]
	if !ok {
		return model.EntityTypeDefinition{}, false
	}
	return copyDefinition(definition), true
}

// CategoryOf returns the category of label
func (r *Registry) CategoryOf(label string) (string, bool) {
	definition, ok := r.definitions[label]
	return definition.Category, ok
}

// Categories returns the category names in declaration order
func (r *Registry) Categories() []string {
	return append([]string(nil), r.categories...)
}

// Labels returns the labels of category in declaration order
func (r *Registry) Labels(category string) []string {
	return append([]string(nil), r.labels[category]...)
}

// Definitions returns all definitions in declaration order
func (r *Registry) Definitions() []model.EntityTypeDefinition {
	out := make([]model.EntityTypeDefinition, 0, len(r.order))
	for _, label := range r.order {
		out = append(out, copyDefinition(r.definitions[label]))
	}
	return out
}

// Len is the number of labels
func (r *Registry) Len() int {
	return len(r.order)
}

func copyDefinition(d model.EntityTypeDefinition) model.EntityTypeDefinition {
	d.Patterns = append([]string(nil), d.Patterns...)
	d.Triggers = append([]string(nil), d.Triggers...)
	return d
}
