package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/siherrmann/vnextract"
	"github.com/spf13/cobra"
)

func newLabelsCommand(a *app) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "List the categories, labels and triggers of the entity catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			extractor, err := vnextract.NewExtractor(a.config, nil, a.logger)
			if err != nil {
				return err
			}
			reg := extractor.Registry

			out := cmd.OutOrStdout()
			if jsonOut {
				raw, err := reg.Marshal()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(raw))
				return err
			}

			header := color.New(color.FgCyan, color.Bold)
			for _, category := range reg.Categories() {
				fmt.Fprintf(out, "%s\n", header.Sprint(category+":"))
				for _, label := range reg.Labels(category) {
					definition := reg.Definition(category, label)
					fmt.Fprintf(out, "  %-25s %s\n", label, strings.Join(definition.Triggers, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the catalog in its JSON file format")

	return cmd
}
