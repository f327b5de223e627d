package model

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Document is a text annotated by the rule-based matcher.
// Entities are sorted by TokenStart and never overlap.
type Document struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Source    string       `json:"source,omitempty"`
	Text      string       `json:"text"`
	Tokens    []Token      `json:"tokens,omitempty"`
	Entities  []EntitySpan `json:"entities"`
	Metadata  Metadata     `json:"metadata,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewDocument creates a Document for text
func NewDocument(text string) *Document {
	return &Document{
		ID:        uuid.New(),
		Text:      text,
		Metadata:  Metadata{},
		CreatedAt: time.Now(),
	}
}

// NewDocumentFromFile reads a file and creates a Document with the file content
// The title defaults to the filename, and source to the file path
func NewDocumentFromFile(filePath string, metadata Metadata) (*Document, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	// Get filename without extension for default title
	filename := filepath.Base(filePath)
	title := filename[:len(filename)-len(filepath.Ext(filename))]
	if title == "" {
		title = filename
	}

	doc := NewDocument(string(content))
	doc.Title = title
	doc.Source = filePath
	if metadata != nil {
		doc.Metadata = metadata
	}
	return doc, nil
}

// EntitiesByLabel returns the entities with the given label in document order
func (d *Document) EntitiesByLabel(label string) []EntitySpan {
	var out []EntitySpan
	for _, e := range d.Entities {
		if e.Label == label {
			out = append(out, e)
		}
	}
	return out
}

// SpanText joins the token texts of the half-open token range [start, end)
func (d *Document) SpanText(start, end int) string {
	if start < 0 || end > len(d.Tokens) || start >= end {
		return ""
	}
	runes := []rune(d.Text)
	return string(runes[d.Tokens[start].Start:d.Tokens[end-1].End])
}
