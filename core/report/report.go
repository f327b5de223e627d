// Package report groups recognized entities by category and prints them.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/siherrmann/vnextract/core/registry"
	"github.com/siherrmann/vnextract/model"
)

const (
	// Banner heads the document report
	Banner = "PHÂN TÍCH VĂN BẢN PHÁP LÝ"
	// EntitiesHeading heads the entity listing of the document report
	EntitiesHeading = "CÁC THỰC THỂ PHÁT HIỆN:"

	labelWidth = 25
)

// CategoryGroup holds the entities of one category in document order
type CategoryGroup struct {
	Category string              `json:"category"`
	Entities []model.EntitySpan `json:"entities"`
}

// Options control the report layout
type Options struct {
	Color bool
}

// Group buckets entities by the registry category of their label.
// Categories appear in the order of their first entity; labels missing from
// the registry are collected under registry.UnknownCategory.
func Group(entities []model.EntitySpan, reg *registry.Registry) []CategoryGroup {
	groups := []CategoryGroup{}
	index := map[string]int{}

	for _, entity := range entities {
		category := registry.UnknownCategory
		if reg != nil {
			if c, ok := reg.CategoryOf(entity.Label); ok {
				category = c
			}
		}

		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[i].Entities = append(groups[i].Entities, entity)
	}

	return groups
}

// WriteReport prints every group as a header, a dashed rule and one
// padded label line per entity
func WriteReport(w io.Writer, groups []CategoryGroup, opts Options) error {
	header := color.New(color.FgCyan, color.Bold)
	if !opts.Color {
		header.DisableColor()
	}

	for _, group := range groups {
		if _, err := fmt.Fprintf(w, "\n%s\n", header.Sprint(group.Category+":")); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, strings.Repeat("-", 40)); err != nil {
			return err
		}
		for _, entity := range group.Entities {
			if _, err := fmt.Fprintf(w, "  %-*s → %s\n", labelWidth, entity.Label, entity.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteDocument prints the banner, the document text and the grouped entities
func WriteDocument(w io.Writer, doc *model.Document, groups []CategoryGroup, opts Options) error {
	rule := strings.Repeat("=", 80)
	lines := []string{
		Banner,
		rule,
		doc.Text,
		"\n" + rule,
		EntitiesHeading,
		rule,
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return WriteReport(w, groups, opts)
}
