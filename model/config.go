package model

import "time"

// Config holds the tunables of the extractor
type Config struct {
	// Rule-based matcher
	ContextWindow int           `json:"context_window"`          // Characters inspected on each side of a match
	RegexTimeout  time.Duration `json:"regex_timeout"`           // Upper bound for a single regex search
	RegistryFile  string        `json:"registry_file,omitempty"` // JSON catalog replacing the built-in one

	// Model-based pipeline
	MaxSentenceRunes int       `json:"max_sentence_runes"` // Longest segment handed to the tagger
	ReferenceTime    time.Time `json:"reference_time"`     // Anchor for relative dates, zero means now

	// Output
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file,omitempty"` // Rotated log file in addition to stderr
	Color    bool   `json:"color"`
}

// DefaultConfig returns the default tunables
func DefaultConfig() Config {
	return Config{
		ContextWindow:    50,
		RegexTimeout:     time.Second,
		MaxSentenceRunes: 256,
		LogLevel:         "info",
		Color:            true,
	}
}

// Reference returns the reference time for relative dates
func (c Config) Reference() time.Time {
	if c.ReferenceTime.IsZero() {
		return time.Now()
	}
	return c.ReferenceTime
}
