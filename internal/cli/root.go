// Package cli implements the vnextract command line.
//
// Settings are merged with the precedence flags > environment (VNEXTRACT_*,
// also read from .env) > config file > defaults.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/siherrmann/vnextract/helper"
	"github.com/siherrmann/vnextract/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "VNEXTRACT"

// Setting keys, also the flag names and, upper-cased with underscores, the env suffixes
const (
	keyContextWindow    = "context-window"
	keyRegexTimeout     = "regex-timeout"
	keyRegistry         = "registry"
	keyReferenceTime    = "reference-time"
	keyLogLevel         = "log-level"
	keyLogFile          = "log-file"
	keyNoColor          = "no-color"
	keyModelDir         = "model-dir"
	keyModelName        = "model-name"
	keyOnnxFile         = "onnx-file"
	keyMaxSentenceRunes = "max-sentence-runes"
)

// app carries the merged settings of one command invocation
type app struct {
	v           *viper.Viper
	cfgFile     string
	config      model.Config
	modelConfig *helper.ModelConfiguration
	logger      *slog.Logger
	logCloser   io.Closer
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree with a fresh settings layer
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "vnextract",
		Short:         "vnextract extracts personal and structured information from Vietnamese text",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}

	defaults := model.DefaultConfig()
	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./vnextract.yaml if present)")
	flags.Int(keyContextWindow, defaults.ContextWindow, "characters inspected around a match for a trigger")
	flags.Duration(keyRegexTimeout, defaults.RegexTimeout, "upper bound for a single regex search")
	flags.String(keyRegistry, "", "JSON catalog replacing the built-in entity catalog")
	flags.String(keyReferenceTime, "", "reference date for relative dates (YYYY-MM-DD or RFC 3339, default now)")
	flags.String(keyLogLevel, defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.String(keyLogFile, "", "also write logs to this rotated file")
	flags.Bool(keyNoColor, false, "disable colored output")

	for _, key := range []string{keyContextWindow, keyRegexTimeout, keyRegistry, keyReferenceTime, keyLogLevel, keyLogFile, keyNoColor} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		newAnnotateCommand(a),
		newTagCommand(a),
		newLabelsCommand(a),
		newConfigCommand(a),
	)

	return root
}

// load reads .env, the config file and the environment and materializes the
// merged settings
func (a *app) load(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return helper.NewError("load .env", err)
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	defaults := model.DefaultConfig()
	a.v.SetDefault(keyContextWindow, defaults.ContextWindow)
	a.v.SetDefault(keyRegexTimeout, defaults.RegexTimeout)
	a.v.SetDefault(keyLogLevel, defaults.LogLevel)
	a.v.SetDefault(keyModelDir, helper.DefaultModelDir)
	a.v.SetDefault(keyModelName, helper.DefaultModelName)
	a.v.SetDefault(keyOnnxFile, helper.DefaultOnnxFilePath)
	a.v.SetDefault(keyMaxSentenceRunes, defaults.MaxSentenceRunes)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("vnextract")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return helper.NewError("read config", err)
		}
	}

	config, err := a.buildConfig()
	if err != nil {
		return err
	}
	a.config = config

	if !config.Color {
		color.NoColor = true
	}

	out, closer := helper.LogWriter(cmd.ErrOrStderr(), helper.LogFileConfiguration{
		Path:       config.LogFile,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	})
	a.logCloser = closer
	a.logger = helper.NewLogger(out, helper.ParseLevel(config.LogLevel))

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("Loaded config file", slog.String("file", used))
	}
	return nil
}

func (a *app) buildConfig() (model.Config, error) {
	config := model.DefaultConfig()
	config.ContextWindow = a.v.GetInt(keyContextWindow)
	config.RegexTimeout = a.v.GetDuration(keyRegexTimeout)
	config.RegistryFile = a.v.GetString(keyRegistry)
	config.LogLevel = a.v.GetString(keyLogLevel)
	config.LogFile = a.v.GetString(keyLogFile)
	config.Color = !a.v.GetBool(keyNoColor)
	config.MaxSentenceRunes = a.v.GetInt(keyMaxSentenceRunes)

	if config.ContextWindow < 0 {
		return config, helper.NewError("read config", fmt.Errorf("%s must not be negative, got %d", keyContextWindow, config.ContextWindow))
	}
	if config.MaxSentenceRunes <= 0 {
		return config, helper.NewError("read config", fmt.Errorf("%s must be positive, got %d", keyMaxSentenceRunes, config.MaxSentenceRunes))
	}

	reference, err := parseReferenceTime(a.v.GetString(keyReferenceTime))
	if err != nil {
		return config, helper.NewError("read config", err)
	}
	config.ReferenceTime = reference

	a.modelConfig = &helper.ModelConfiguration{
		ModelDir:         a.v.GetString(keyModelDir),
		ModelName:        a.v.GetString(keyModelName),
		OnnxFilePath:     a.v.GetString(keyOnnxFile),
		MaxSentenceRunes: config.MaxSentenceRunes,
	}

	return config, nil
}

// parseReferenceTime accepts a date or an RFC 3339 timestamp, empty means now
func parseReferenceTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, want YYYY-MM-DD or RFC 3339", keyReferenceTime, raw)
	}
	return t, nil
}

// readInput returns the content of the file argument, or stdin without one or for "-"
func readInput(cmd *cobra.Command, args []string) (*model.Document, error) {
	if len(args) == 1 && args[0] != "-" {
		doc, err := model.NewDocumentFromFile(args[0], nil)
		if err != nil {
			return nil, helper.NewError("read input", err)
		}
		return doc, nil
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, helper.NewError("read input", err)
	}
	doc := model.NewDocument(string(raw))
	doc.Source = "stdin"
	return doc, nil
}
