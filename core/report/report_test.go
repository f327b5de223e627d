package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/siherrmann/vnextract/core/registry"
	"github.com/siherrmann/vnextract/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entity(label, text string) model.EntitySpan {
	return model.EntitySpan{Label: label, Text: text}
}

func TestGroup(t *testing.T) {
	t.Run("Categories in order of first appearance", func(t *testing.T) {
		groups := Group([]model.EntitySpan{
			entity("TAX_CODE", "0312345678"),
			entity("PHONE", "0912345678"),
			entity("MONEY", "850.000.000 VND"),
			entity("EMAIL", "a@b.vn"),
		}, registry.Default())

		require.Len(t, groups, 2)
		assert.Equal(t, registry.CategoryFinance, groups[0].Category)
		assert.Equal(t, registry.CategoryPersonal, groups[1].Category)
		assert.Equal(t, "TAX_CODE", groups[0].Entities[0].Label)
		assert.Equal(t, "MONEY", groups[0].Entities[1].Label)
		assert.Equal(t, "PHONE", groups[1].Entities[0].Label)
		assert.Equal(t, "EMAIL", groups[1].Entities[1].Label)
	})

	t.Run("Unknown labels go to UNKNOWN", func(t *testing.T) {
		groups := Group([]model.EntitySpan{entity("NOPE", "x"), entity("URL", "www.a.vn")}, registry.Default())

		require.Len(t, groups, 2)
		assert.Equal(t, registry.UnknownCategory, groups[0].Category)
		assert.Equal(t, registry.CategoryTech, groups[1].Category)
	})

	t.Run("No entities", func(t *testing.T) {
		assert.Empty(t, Group(nil, registry.Default()))
	})
}

func TestWriteReport(t *testing.T) {
	groups := []CategoryGroup{{
		Category: registry.CategoryPersonal,
		Entities: []model.EntitySpan{entity("PHONE", "0912345678")},
	}}

	t.Run("Plain layout", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, groups, Options{}))

		expected := "\nPERSONAL:\n" +
			strings.Repeat("-", 40) + "\n" +
			"  PHONE" + strings.Repeat(" ", 20) + " → 0912345678\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("Color only decorates the header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, groups, Options{Color: true}))
		assert.Contains(t, buf.String(), "PERSONAL:")
		line := "  PHONE" + strings.Repeat(" ", 20) + " → 0912345678\n"
		assert.Contains(t, buf.String(), line)
	})
}

func TestWriteDocument(t *testing.T) {
	doc := model.NewDocument("SĐT: 0912345678")
	groups := []CategoryGroup{{
		Category: registry.CategoryPersonal,
		Entities: []model.EntitySpan{entity("PHONE", "0912345678")},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, doc, groups, Options{}))

	rule := strings.Repeat("=", 80)
	assert.True(t, strings.HasPrefix(buf.String(), Banner+"\n"+rule+"\nSĐT: 0912345678\n\n"+rule+"\n"+EntitiesHeading+"\n"+rule+"\n"))
	assert.True(t, strings.HasSuffix(buf.String(), "→ 0912345678\n"))
}
