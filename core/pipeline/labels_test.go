package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabels(t *testing.T) {
	t.Run("Vocabulary has B- and I- tags and O", func(t *testing.T) {
		assert.Len(t, Labels, 31)
		assert.Equal(t, "B-ADDRESS", Labels[0])
		assert.Equal(t, "I-ADDRESS", Labels[1])
		assert.Equal(t, "B-DATETIME", Labels[24])
		assert.Equal(t, "I-URL", Labels[29])
		assert.Equal(t, OutsideTag, Labels[30])
	})

	t.Run("LabelID and LabelName are inverse", func(t *testing.T) {
		for id, label := range Labels {
			gotID, ok := LabelID(label)
			assert.True(t, ok)
			assert.Equal(t, id, gotID)

			gotLabel, ok := LabelName(id)
			assert.True(t, ok)
			assert.Equal(t, label, gotLabel)
		}
	})

	t.Run("Unknown labels and ids", func(t *testing.T) {
		_, ok := LabelID("B-NOPE")
		assert.False(t, ok)
		_, ok = LabelName(31)
		assert.False(t, ok)
		_, ok = LabelName(-1)
		assert.False(t, ok)
	})
}

func TestNormalizeEntityType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"B-PERSON", "PERSON"},
		{"I-PERSON", "PERSON"},
		{"B-DATETIME", "DATETIME"},
		{"I-LOCATION", "LOCATION"},
		{"MISCELLANEOUS", "MISCELLANEOUS"},
		{"O", "O"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeEntityType(tt.input))
		})
	}
}

func TestVocabularyType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"B-PERSON", "PERSON", true},
		{"I-DATETIME", "DATETIME", true},
		{"PER", "PERSON", true},
		{"B-LOC", "LOCATION", true},
		{"I-ORG", "ORGANIZATION", true},
		{"misc", "MISCELLANEOUS", true},
		{"B-DATE", "DATETIME", true},
		{"B-ANIMAL", "", false},
		{"O", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			entityType, ok := vocabularyType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, entityType)
		})
	}
}

func TestIsType(t *testing.T) {
	assert.True(t, isType("B-DATETIME", "DATETIME"))
	assert.True(t, isType("I-DATETIME", "DATETIME"))
	assert.False(t, isType("DATETIME", "DATETIME"))
	assert.False(t, isType("B-PERSON", "DATETIME"))
	assert.False(t, isType(OutsideTag, "DATETIME"))
}
