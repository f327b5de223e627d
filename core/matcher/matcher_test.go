package matcher

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/siherrmann/vnextract/core/registry"
	"github.com/siherrmann/vnextract/core/tokenizer"
	"github.com/siherrmann/vnextract/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T, reg *registry.Registry, config model.Config) *Matcher {
	t.Helper()
	m, err := New(reg, config, nil)
	require.NoError(t, err, "Expected matcher to be created")
	return m
}

func matchText(t *testing.T, m *Matcher, text string) []model.EntitySpan {
	t.Helper()
	tokens, err := tokenizer.New().Tokenize(text)
	require.NoError(t, err)
	entities, err := m.Match(text, tokens)
	require.NoError(t, err)
	return entities
}

func labelsOf(entities []model.EntitySpan) []string {
	out := make([]string, len(entities))
	for i, entity := range entities {
		out[i] = entity.Label
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("Compiles the default registry", func(t *testing.T) {
		m := newTestMatcher(t, registry.Default(), model.DefaultConfig())
		assert.Len(t, m.rules, registry.Default().Len())
		assert.Same(t, registry.Default(), m.Registry())
		assert.Equal(t, time.Second, m.rules[0].patterns[0].MatchTimeout)
	})

	t.Run("Nil registry", func(t *testing.T) {
		_, err := New(nil, model.DefaultConfig(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registry is nil")
	})

	t.Run("Negative context window", func(t *testing.T) {
		config := model.DefaultConfig()
		config.ContextWindow = -1
		_, err := New(registry.Default(), config, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be negative")
	})
}

func TestMatch(t *testing.T) {
	m := newTestMatcher(t, registry.Default(), model.DefaultConfig())

	t.Run("Phone next to its trigger", func(t *testing.T) {
		entities := matchText(t, m, "Liên hệ sđt 0912345678 để biết thêm")
		require.Len(t, entities, 1)
		assert.Equal(t, "PHONE", entities[0].Label)
		assert.Equal(t, registry.CategoryPersonal, entities[0].Category)
		assert.Equal(t, "0912345678", entities[0].Text)
		assert.Equal(t, 3, entities[0].TokenStart)
		assert.Equal(t, 4, entities[0].TokenEnd)
		assert.Equal(t, 12, entities[0].Start)
		assert.Equal(t, 22, entities[0].End)
		assert.NotEqual(t, uuid.Nil, entities[0].ID)
	})

	t.Run("Triggers match regardless of case", func(t *testing.T) {
		entities := matchText(t, m, "SĐT: 0912345678")
		assert.Equal(t, []string{"PHONE"}, labelsOf(entities))
	})

	t.Run("No trigger means no entity", func(t *testing.T) {
		entities := matchText(t, m, "Mã số 123456789 không liên quan")
		assert.Empty(t, entities)
	})

	t.Run("Trigger without a pattern match", func(t *testing.T) {
		assert.Empty(t, matchText(t, m, "sđt không có số nào"))
		assert.Empty(t, matchText(t, m, "mst"))
	})

	t.Run("Email", func(t *testing.T) {
		entities := matchText(t, m, "Email: nguyenvana@gmail.com")
		require.Len(t, entities, 1)
		assert.Equal(t, "EMAIL", entities[0].Label)
		assert.Equal(t, "nguyenvana@gmail.com", entities[0].Text)
	})

	t.Run("License plate", func(t *testing.T) {
		entities := matchText(t, m, "Biển số: 51A-12345")
		require.Len(t, entities, 1)
		assert.Equal(t, "LICENSE_PLATE", entities[0].Label)
		assert.Equal(t, "51A-12345", entities[0].Text)
		assert.Equal(t, registry.CategoryVehicle, entities[0].Category)
	})

	t.Run("Trigger outside the context window", func(t *testing.T) {
		text := "sđt " + strings.Repeat("a ", 30) + "0912345678"
		assert.Empty(t, matchText(t, m, text))

		config := model.DefaultConfig()
		config.ContextWindow = 100
		wide := newTestMatcher(t, registry.Default(), config)
		assert.Equal(t, []string{"PHONE"}, labelsOf(matchText(t, wide, text)))
	})

	t.Run("Window is measured in characters", func(t *testing.T) {
		// 45 two-byte characters between trigger and match
		text := "sđt " + strings.Repeat("đ", 45) + " 0912345678"
		entities := matchText(t, m, text)
		assert.Equal(t, []string{"PHONE"}, labelsOf(entities))
	})

	t.Run("Empty text", func(t *testing.T) {
		assert.Empty(t, matchText(t, m, ""))
	})
}

func TestMatchCustomRegistry(t *testing.T) {
	reg, err := registry.New([]registry.CategoryDefinition{{
		Name: "TEST",
		Entities: []model.EntityTypeDefinition{
			{Label: "GAP", Patterns: []string{` x`}, Triggers: []string{"x"}},
			{Label: "SHORT", Patterns: []string{`ab`}, Triggers: []string{"ab"}},
			{Label: "LONG", Patterns: []string{`ab-cd`}, Triggers: []string{"ab"}},
		},
	}})
	require.NoError(t, err)
	m := newTestMatcher(t, reg, model.DefaultConfig())

	t.Run("Match starting between tokens is dropped", func(t *testing.T) {
		candidates, err := m.Candidates("a x")
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Empty(t, matchText(t, m, "a x"))
	})

	t.Run("Longer later candidate replaces shorter one", func(t *testing.T) {
		// Tokens: "ab" "-" "cd"; SHORT is produced first and replaced by LONG
		entities := matchText(t, m, "ab-cd")
		require.Len(t, entities, 1)
		assert.Equal(t, "LONG", entities[0].Label)
		assert.Equal(t, "ab-cd", entities[0].Text)
		assert.Equal(t, 0, entities[0].TokenStart)
		assert.Equal(t, 3, entities[0].TokenEnd)
	})

	t.Run("Candidates keep production order", func(t *testing.T) {
		candidates, err := m.Candidates("ab-cd ab")
		require.NoError(t, err)
		labels := make([]string, len(candidates))
		for i, candidate := range candidates {
			labels[i] = candidate.Label
		}
		assert.Equal(t, []string{"SHORT", "SHORT", "LONG"}, labels)
	})
}

func TestMatchTimeout(t *testing.T) {
	reg, err := registry.New([]registry.CategoryDefinition{{
		Name: "SLOW",
		Entities: []model.EntityTypeDefinition{
			{Label: "BACKTRACK", Patterns: []string{`(a+)+b`}, Triggers: []string{"a"}},
		},
	}})
	require.NoError(t, err)

	config := model.DefaultConfig()
	config.RegexTimeout = 10 * time.Millisecond
	m := newTestMatcher(t, reg, config)

	_, err = m.Candidates(strings.Repeat("a", 28) + "c")
	require.Error(t, err, "Expected the regex timeout to surface")
	assert.Contains(t, err.Error(), "error in scan")
}

func TestMatchContract(t *testing.T) {
	raw, err := os.ReadFile("testdata/contract.txt")
	require.NoError(t, err)
	text := string(raw)

	tokens, err := tokenizer.New().Tokenize(text)
	require.NoError(t, err)

	m := newTestMatcher(t, registry.Default(), model.DefaultConfig())
	entities, err := m.Match(text, tokens)
	require.NoError(t, err)
	require.NotEmpty(t, entities)

	t.Run("Entities are sorted and do not overlap", func(t *testing.T) {
		for i := 1; i < len(entities); i++ {
			assert.LessOrEqual(t, entities[i-1].TokenStart, entities[i].TokenStart)
			assert.LessOrEqual(t, entities[i-1].TokenEnd, entities[i].TokenStart, "Entities %s and %s overlap", entities[i-1], entities[i])
		}
	})

	t.Run("Entities belong to the registry", func(t *testing.T) {
		for _, entity := range entities {
			category, ok := registry.Default().CategoryOf(entity.Label)
			assert.True(t, ok)
			assert.Equal(t, category, entity.Category)
		}
	})

	t.Run("Entity text is the covered token text", func(t *testing.T) {
		doc := &model.Document{Text: text, Tokens: tokens}
		for _, entity := range entities {
			assert.Equal(t, doc.SpanText(entity.TokenStart, entity.TokenEnd), entity.Text)
		}
	})

	t.Run("Annotate fills the document", func(t *testing.T) {
		doc := model.NewDocument(text)
		doc.Tokens = tokens
		require.NoError(t, m.Annotate(doc))
		assert.Equal(t, labelsOf(entities), labelsOf(doc.Entities))
	})
}
