package cli

import (
	"encoding/json"

	"github.com/siherrmann/vnextract"
	"github.com/siherrmann/vnextract/core/pipeline"
	"github.com/spf13/cobra"
)

func newTagCommand(a *app) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "tag [file]",
		Short: "Tag words with the transformer model and normalize dates",
		Long:  `Tag every word of a file or stdin with the token classification model, downloading it on first use, and rewrite recognized dates as DD/MM/YYYY.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			extractor, err := vnextract.NewExtractor(a.config, nil, a.logger)
			if err != nil {
				return err
			}
			defer extractor.Close()

			if err := extractor.UseDefaultPipeline(a.modelConfig); err != nil {
				return err
			}

			result, err := extractor.Tag(doc.Text)
			if err != nil {
				return err
			}

			if jsonOut {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}
			return pipeline.WriteTagged(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the tag result as JSON")
	cmd.Flags().String(keyModelDir, "", "directory the model is downloaded to")
	cmd.Flags().String(keyModelName, "", "Hugging Face repository of the model")
	cmd.Flags().String(keyOnnxFile, "", "onnx file inside the model repository")
	cmd.Flags().Int(keyMaxSentenceRunes, 0, "maximum characters per tagger input")
	for _, key := range []string{keyModelDir, keyModelName, keyOnnxFile, keyMaxSentenceRunes} {
		_ = a.v.BindPFlag(key, cmd.Flags().Lookup(key))
	}

	return cmd
}
