package pipeline

import (
	"fmt"
	"io"

	"github.com/siherrmann/vnextract/model"
)

// WriteTagged prints one "word -> tag" line per tagged word. If the formatter
// changed anything, the normalized list and the changes follow.
func WriteTagged(w io.Writer, result *model.TagResult) error {
	if result == nil {
		return fmt.Errorf("tag result is nil")
	}

	if err := writeWords(w, result.Tagged); err != nil {
		return err
	}
	if len(result.Changes) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "\nNormalized:"); err != nil {
		return err
	}
	if err := writeWords(w, result.Normalized); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\nChanges:"); err != nil {
		return err
	}
	for _, change := range result.Changes {
		if _, err := fmt.Fprintf(w, "  [%d:%d] %s => %s\n", change.Start, change.End, change.Original, change.Normalized); err != nil {
			return err
		}
	}
	return nil
}

func writeWords(w io.Writer, words []model.TaggedWord) error {
	for _, word := range words {
		if _, err := fmt.Fprintf(w, "%-15s -> %s\n", word.Word, word.Tag); err != nil {
			return err
		}
	}
	return nil
}
