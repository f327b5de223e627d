// Package vnextract extracts personal and structured information from
// Vietnamese text with a rule-based matcher and a transformer tagger.
package vnextract

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/siherrmann/vnextract/core/matcher"
	"github.com/siherrmann/vnextract/core/pipeline"
	"github.com/siherrmann/vnextract/core/registry"
	"github.com/siherrmann/vnextract/core/report"
	"github.com/siherrmann/vnextract/core/tokenizer"
	"github.com/siherrmann/vnextract/helper"
	"github.com/siherrmann/vnextract/model"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrInvalidUTF8 is returned for input that is not valid UTF-8
	ErrInvalidUTF8 = tokenizer.ErrInvalidUTF8
	// ErrEmptyText is returned when tagging text without any words
	ErrEmptyText = errors.New("text is empty")
	// ErrPipelineNotSet is returned by Tag before a pipeline is set
	ErrPipelineNotSet = errors.New("pipeline not set, use UsePipeline() or UseDefaultPipeline() first")
)

// Extractor runs the rule-based matcher and, once a pipeline is set, the
// model-based tagger over Vietnamese text
type Extractor struct {
	Registry  *registry.Registry
	Matcher   *matcher.Matcher
	Tokenizer tokenizer.Tokenizer
	Pipeline  *pipeline.Pipeline // Optional model-based pipeline
	// Configuration
	config  model.Config
	destroy func() error
	// Logging
	log *slog.Logger
}

// NewExtractor creates an Extractor for the registry. A nil registry means the
// built-in catalog, unless config.RegistryFile names a catalog file.
// A nil logger logs to stderr at config.LogLevel.
func NewExtractor(config model.Config, reg *registry.Registry, logger *slog.Logger) (*Extractor, error) {
	if logger == nil {
		logger = helper.NewLogger(os.Stderr, helper.ParseLevel(config.LogLevel))
	}

	if reg == nil {
		reg = registry.Default()
		if config.RegistryFile != "" {
			loaded, err := registry.LoadFile(config.RegistryFile)
			if err != nil {
				return nil, helper.NewError("load registry", err)
			}
			reg = loaded
			logger.Info("Loaded registry", slog.String("file", config.RegistryFile), slog.Int("labels", reg.Len()))
		}
	}

	m, err := matcher.New(reg, config, logger)
	if err != nil {
		return nil, helper.NewError("create extractor", err)
	}

	return &Extractor{
		Registry:  reg,
		Matcher:   m,
		Tokenizer: tokenizer.New(),
		config:    config,
		log:       logger,
	}, nil
}

// Config returns the configuration of the extractor
func (e *Extractor) Config() model.Config {
	return e.config
}

// Annotate normalizes text to NFC, tokenizes it and recognizes its entities
func (e *Extractor) Annotate(text string) (*model.Document, error) {
	doc := model.NewDocument(text)
	if err := e.AnnotateDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AnnotateDocument fills tokens and entities of doc.
// The document text is replaced by its NFC form, all offsets refer to it.
func (e *Extractor) AnnotateDocument(doc *model.Document) error {
	text, err := normalize(doc.Text)
	if err != nil {
		return helper.NewError("annotate document", err)
	}
	doc.Text = text

	tokens, err := e.Tokenizer.Tokenize(text)
	if err != nil {
		return helper.NewError("tokenize document", err)
	}
	doc.Tokens = tokens

	if err := e.Matcher.Annotate(doc); err != nil {
		return helper.NewError("match entities", err)
	}

	e.log.Debug("Annotated document", slog.String("document_id", doc.ID.String()), slog.Int("tokens", len(doc.Tokens)), slog.Int("entities", len(doc.Entities)))
	return nil
}

// Groups buckets the entities of doc by category
func (e *Extractor) Groups(doc *model.Document) []report.CategoryGroup {
	return report.Group(doc.Entities, e.Registry)
}

// Report prints the document with its grouped entities
func (e *Extractor) Report(w io.Writer, doc *model.Document) error {
	return report.WriteDocument(w, doc, e.Groups(doc), report.Options{Color: e.config.Color})
}

// UsePipeline sets the model-based pipeline
func (e *Extractor) UsePipeline(p *pipeline.Pipeline) {
	e.Pipeline = p
}

// UseDefaultPipeline sets up sentence splitting, the transformer tagger of
// the model configuration and the date formatter anchored at the reference time
func (e *Extractor) UseDefaultPipeline(modelConfig *helper.ModelConfiguration) error {
	if modelConfig == nil {
		var err error
		modelConfig, err = helper.NewModelConfiguration()
		if err != nil {
			return helper.NewError("read model configuration", err)
		}
	}

	tagger, destroy, err := pipeline.DefaultTagger(modelConfig)
	if err != nil {
		return helper.NewError("create default tagger", err)
	}
	if err := e.Close(); err != nil {
		e.log.Warn("Failed to release previous pipeline", slog.String("error", err.Error()))
	}
	e.destroy = destroy

	maxRunes := modelConfig.MaxSentenceRunes
	if maxRunes <= 0 {
		maxRunes = e.config.MaxSentenceRunes
	}

	p := pipeline.NewPipeline(pipeline.SentenceSplitter(maxRunes), tagger)
	p.SetFormatter(pipeline.DateFormatter(e.config.Reference()))
	e.Pipeline = p

	e.log.Info("Using default pipeline", slog.String("model", modelConfig.ModelName), slog.Int("max_sentence_runes", maxRunes))
	return nil
}

// Tag runs the model-based pipeline over text
func (e *Extractor) Tag(text string) (*model.TagResult, error) {
	if e.Pipeline == nil {
		return nil, helper.NewError("tag text", ErrPipelineNotSet)
	}

	text, err := normalize(text)
	if err != nil {
		return nil, helper.NewError("tag text", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, helper.NewError("tag text", ErrEmptyText)
	}

	result, err := e.Pipeline.Process(text)
	if err != nil {
		return nil, helper.NewError("tag text", err)
	}

	e.log.Debug("Tagged text", slog.Int("words", len(result.Tagged)), slog.Int("changes", len(result.Changes)))
	return result, nil
}

// Close releases the model session of the default pipeline
func (e *Extractor) Close() error {
	if e.destroy == nil {
		return nil
	}
	destroy := e.destroy
	e.destroy = nil
	return destroy()
}

// normalize rejects invalid UTF-8 and returns the NFC form of text
func normalize(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrInvalidUTF8
	}
	return norm.NFC.String(text), nil
}
