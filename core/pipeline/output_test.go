package pipeline

import (
	"bytes"
	"testing"

	"github.com/siherrmann/vnextract/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTagged(t *testing.T) {
	t.Run("Words only", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteTagged(&buf, &model.TagResult{Tagged: words("Hà", "B-LOCATION", "Nội", "I-LOCATION")})
		require.NoError(t, err)
		assert.Equal(t, "Hà              -> B-LOCATION\nNội             -> I-LOCATION\n", buf.String())
	})

	t.Run("Normalized list and changes follow", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteTagged(&buf, &model.TagResult{
			Tagged:     words("hôm", "B-DATETIME", "nay", "I-DATETIME"),
			Normalized: words("11/05/2023", "B-DATETIME"),
			Changes:    []model.DateChange{{Original: "hôm nay", Normalized: "11/05/2023", Start: 0, End: 2}},
		})
		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "\nNormalized:\n11/05/2023      -> B-DATETIME\n")
		assert.Contains(t, out, "\nChanges:\n  [0:2] hôm nay => 11/05/2023\n")
	})

	t.Run("Nil result", func(t *testing.T) {
		err := WriteTagged(&bytes.Buffer{}, nil)
		assert.Error(t, err)
	})
}
