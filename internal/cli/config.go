package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the merged settings",
		Long:  `Show the settings after merging defaults, the config file, the environment and flags.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if file := a.v.ConfigFileUsed(); file == "" {
				fmt.Fprintln(out, "No config file loaded (using defaults).")
			} else {
				fmt.Fprintf(out, "Config file: %s\n\n", file)
			}

			reference := "now"
			if !a.config.ReferenceTime.IsZero() {
				reference = a.config.ReferenceTime.Format("2006-01-02T15:04:05Z07:00")
			}

			fmt.Fprintln(out, "Current configuration:")
			fmt.Fprintf(out, "  Context window:     %d\n", a.config.ContextWindow)
			fmt.Fprintf(out, "  Regex timeout:      %s\n", a.config.RegexTimeout)
			fmt.Fprintf(out, "  Registry file:      %s\n", a.config.RegistryFile)
			fmt.Fprintf(out, "  Reference time:     %s\n", reference)
			fmt.Fprintf(out, "  Log level:          %s\n", a.config.LogLevel)
			fmt.Fprintf(out, "  Log file:           %s\n", a.config.LogFile)
			fmt.Fprintf(out, "  Color:              %v\n", a.config.Color)
			fmt.Fprintf(out, "  Model:              %s (%s)\n", a.modelConfig.ModelName, a.modelConfig.OnnxFilePath)
			fmt.Fprintf(out, "  Model directory:    %s\n", a.modelConfig.ModelDir)
			fmt.Fprintf(out, "  Max sentence runes: %d\n", a.modelConfig.MaxSentenceRunes)
		},
	}
}
