package helper

import (
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/joho/godotenv"
)

const (
	// DefaultModelDir is where downloaded models are cached
	DefaultModelDir = "./models"
	// DefaultModelName is the Hugging Face repository of the Vietnamese NER model
	DefaultModelName = "NlpHUST/ner-vietnamese-electra-base"
	// DefaultOnnxFilePath is the onnx file inside the model repository
	DefaultOnnxFilePath = "onnx/model.onnx"
	// DefaultMaxSentenceRunes bounds the length of a single tagger input
	DefaultMaxSentenceRunes = 256
)

// ModelConfiguration locates the token classification model
type ModelConfiguration struct {
	ModelDir         string
	ModelName        string
	OnnxFilePath     string
	MaxSentenceRunes int
}

// NewModelConfiguration reads the model configuration from the environment.
// A .env file in the working directory is loaded first if present.
//
//	VNEXTRACT_MODEL_DIR           cache directory (default ./models)
//	VNEXTRACT_MODEL_NAME          Hugging Face repository
//	VNEXTRACT_ONNX_FILE           onnx file inside the repository
//	VNEXTRACT_MAX_SENTENCE_RUNES  maximum characters per tagger input
func NewModelConfiguration() (*ModelConfiguration, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, NewError("load .env", err)
	}

	config := &ModelConfiguration{
		ModelDir:         getEnv("VNEXTRACT_MODEL_DIR", DefaultModelDir),
		ModelName:        getEnv("VNEXTRACT_MODEL_NAME", DefaultModelName),
		OnnxFilePath:     getEnv("VNEXTRACT_ONNX_FILE", DefaultOnnxFilePath),
		MaxSentenceRunes: DefaultMaxSentenceRunes,
	}

	if raw := os.Getenv("VNEXTRACT_MAX_SENTENCE_RUNES"); raw != "" {
		maxRunes, err := strconv.Atoi(raw)
		if err != nil {
			return nil, NewError("parse VNEXTRACT_MAX_SENTENCE_RUNES", err)
		}
		if maxRunes <= 0 {
			return nil, NewError("parse VNEXTRACT_MAX_SENTENCE_RUNES", fmt.Errorf("value must be positive, got %d", maxRunes))
		}
		config.MaxSentenceRunes = maxRunes
	}

	return config, nil
}

// SetTestModelConfigEnvs points the model configuration at dir for the duration of the test
func SetTestModelConfigEnvs(t *testing.T, dir string) {
	t.Setenv("VNEXTRACT_MODEL_DIR", dir)
	t.Setenv("VNEXTRACT_MODEL_NAME", "test/ner-model")
	t.Setenv("VNEXTRACT_ONNX_FILE", "model.onnx")
	t.Setenv("VNEXTRACT_MAX_SENTENCE_RUNES", "128")
}

func getEnv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
