package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/siherrmann/vnextract/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r := Default()

	t.Run("Categories keep declaration order", func(t *testing.T) {
		assert.Equal(t, []string{
			CategoryPersonal, CategoryFinance, CategoryLocation, CategoryTime,
			CategoryVehicle, CategoryTech, CategoryCommerce,
		}, r.Categories())
	})

	t.Run("Labels keep declaration order", func(t *testing.T) {
		assert.Equal(t, []string{"PHONE", "EMAIL", "ID_CARD", "SOCIAL_INSURANCE", "HEALTH_INSURANCE"}, r.Labels(CategoryPersonal))
		assert.Equal(t, []string{"BANK_ACCOUNT", "BANK_CARD", "MONEY", "TAX_CODE"}, r.Labels(CategoryFinance))
		assert.Equal(t, []string{"ORDER_ID", "TRACKING_CODE", "CONTRACT_NUMBER"}, r.Labels(CategoryCommerce))
		assert.Equal(t, 20, r.Len())
	})

	t.Run("Definition returns patterns and triggers", func(t *testing.T) {
		phone := r.Definition(CategoryPersonal, "PHONE")
		assert.Equal(t, CategoryPersonal, phone.Category)
		assert.Len(t, phone.Patterns, 3)
		assert.Contains(t, phone.Triggers, "sđt")
	})

	t.Run("Definition panics on unknown entity", func(t *testing.T) {
		assert.Panics(t, func() { r.Definition(CategoryPersonal, "MONEY") })
		assert.Panics(t, func() { r.Definition("NOPE", "PHONE") })
	})

	t.Run("Lookup and CategoryOf", func(t *testing.T) {
		definition, ok := r.Lookup("TAX_CODE")
		require.True(t, ok)
		assert.Equal(t, CategoryFinance, definition.Category)

		category, ok := r.CategoryOf("URL")
		assert.True(t, ok)
		assert.Equal(t, CategoryTech, category)

		_, ok = r.Lookup("NOPE")
		assert.False(t, ok)
	})

	t.Run("Returned slices are copies", func(t *testing.T) {
		definition := r.Definition(CategoryPersonal, "EMAIL")
		definition.Triggers[0] = "changed"
		assert.Equal(t, "email", r.Definition(CategoryPersonal, "EMAIL").Triggers[0])

		labels := r.Labels(CategoryTime)
		labels[0] = "changed"
		assert.Equal(t, "DATE", r.Labels(CategoryTime)[0])
	})

	t.Run("Default is built once", func(t *testing.T) {
		assert.Same(t, r, Default())
	})
}

func TestNew(t *testing.T) {
	valid := model.EntityTypeDefinition{Label: "A", Patterns: []string{`\d+`}, Triggers: []string{"a"}}

	tests := []struct {
		name       string
		categories []CategoryDefinition
		errPart    string
	}{
		{
			name:       "Empty category name",
			categories: []CategoryDefinition{{Name: "", Entities: []model.EntityTypeDefinition{valid}}},
			errPart:    "category name is empty",
		},
		{
			name:       "Duplicate category",
			categories: []CategoryDefinition{{Name: "X"}, {Name: "X"}},
			errPart:    "duplicate category X",
		},
		{
			name: "Duplicate label across categories",
			categories: []CategoryDefinition{
				{Name: "X", Entities: []model.EntityTypeDefinition{valid}},
				{Name: "Y", Entities: []model.EntityTypeDefinition{valid}},
			},
			errPart: "duplicate label A",
		},
		{
			name:       "Missing patterns",
			categories: []CategoryDefinition{{Name: "X", Entities: []model.EntityTypeDefinition{{Label: "A", Triggers: []string{"a"}}}}},
			errPart:    "has no patterns",
		},
		{
			name:       "Missing triggers",
			categories: []CategoryDefinition{{Name: "X", Entities: []model.EntityTypeDefinition{{Label: "A", Patterns: []string{`a`}}}}},
			errPart:    "has no triggers",
		},
		{
			name:       "Blank trigger",
			categories: []CategoryDefinition{{Name: "X", Entities: []model.EntityTypeDefinition{{Label: "A", Patterns: []string{`a`}, Triggers: []string{"  "}}}}},
			errPart:    "empty trigger",
		},
		{
			name:       "Broken pattern",
			categories: []CategoryDefinition{{Name: "X", Entities: []model.EntityTypeDefinition{{Label: "A", Patterns: []string{`(`}, Triggers: []string{"a"}}}}},
			errPart:    "pattern \"(\" of label A",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, err := New(test.categories)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Contains(t, err.Error(), "error in build registry")
			assert.Contains(t, err.Error(), test.errPart)
		})
	}

	t.Run("Triggers are trimmed and lowercased", func(t *testing.T) {
		r, err := New([]CategoryDefinition{{Name: "X", Entities: []model.EntityTypeDefinition{
			{Label: "A", Patterns: []string{`a`}, Triggers: []string{" SĐT "}},
		}}})
		require.NoError(t, err)
		assert.Equal(t, []string{"sđt"}, r.Definition("X", "A").Triggers)
	})
}

func TestParse(t *testing.T) {
	t.Run("Valid catalog", func(t *testing.T) {
		r, err := Parse([]byte(`{"categories": [{"name": "CUSTOM", "entities": [
			{"label": "EMPLOYEE_ID", "patterns": ["\\bNV\\d{4}\\b"], "triggers": ["mã nhân viên"]}
		]}]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"CUSTOM"}, r.Categories())
		assert.Equal(t, `\bNV\d{4}\b`, r.Definition("CUSTOM", "EMPLOYEE_ID").Patterns[0])
	})

	t.Run("Schema violation is reported", func(t *testing.T) {
		_, err := Parse([]byte(`{"categories": [{"name": "CUSTOM", "entities": [{"label": "A", "patterns": []}]}]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid catalog")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := Parse([]byte(`{"categories": [`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error in validate catalog")
	})

	t.Run("Registry errors surface after schema validation", func(t *testing.T) {
		_, err := Parse([]byte(`{"categories": [{"name": "X", "entities": [
			{"label": "A", "patterns": ["("], "triggers": ["a"]}
		]}]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error in build registry")
	})

	t.Run("Marshal round-trips the default catalog", func(t *testing.T) {
		raw, err := Default().Marshal()
		require.NoError(t, err)

		r, err := Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, Default().Definitions(), r.Definitions())
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("Load from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		raw, err := Default().Marshal()
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0600))

		r, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, Default().Len(), r.Len())
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error in read catalog")
	})
}
