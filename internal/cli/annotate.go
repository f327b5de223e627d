package cli

import (
	"encoding/json"
	"log/slog"

	"github.com/k0kubun/pp"
	"github.com/siherrmann/vnextract"
	"github.com/siherrmann/vnextract/core/report"
	"github.com/siherrmann/vnextract/helper"
	"github.com/siherrmann/vnextract/model"
	"github.com/spf13/cobra"
)

// annotateOutput is the JSON form of an annotated document
type annotateOutput struct {
	ID         string                 `json:"id"`
	Title      string                 `json:"title,omitempty"`
	Source     string                 `json:"source,omitempty"`
	Text       string                 `json:"text"`
	Metadata   model.Metadata         `json:"metadata,omitempty"`
	Categories []report.CategoryGroup `json:"categories"`
}

func newAnnotateCommand(a *app) *cobra.Command {
	var jsonOut, dump bool
	var metadata string

	cmd := &cobra.Command{
		Use:   "annotate [file]",
		Short: "Recognize entities with the rule-based matcher",
		Long:  `Recognize phone numbers, IDs, addresses, dates and other entities in a file or stdin and print them grouped by category.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if metadata != "" {
				if err := doc.Metadata.Unmarshal([]byte(metadata)); err != nil {
					return helper.NewError("parse metadata", err)
				}
			}

			extractor, err := vnextract.NewExtractor(a.config, nil, a.logger)
			if err != nil {
				return err
			}
			defer extractor.Close()

			if err := extractor.AnnotateDocument(doc); err != nil {
				return err
			}
			a.logger.Info("Annotated document", slog.String("source", doc.Source), slog.Int("entities", len(doc.Entities)))

			if dump {
				if _, err := pp.Fprintln(cmd.ErrOrStderr(), doc.Entities); err != nil {
					return helper.NewError("dump entities", err)
				}
			}

			if jsonOut {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(annotateOutput{
					ID:         doc.ID.String(),
					Title:      doc.Title,
					Source:     doc.Source,
					Text:       doc.Text,
					Metadata:   doc.Metadata,
					Categories: extractor.Groups(doc),
				})
			}
			return extractor.Report(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the document and its entities as JSON")
	cmd.Flags().StringVar(&metadata, "metadata", "", "JSON object attached to the document, printed with --json")
	cmd.Flags().BoolVar(&dump, "dump", false, "pretty-print the raw entity spans to stderr")

	return cmd
}
