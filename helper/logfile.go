package helper

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileConfiguration controls the rotating log file used by the CLI
type LogFileConfiguration struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// LogWriter returns out, teed into a rotating log file when a path is configured.
// The returned closer must be called on shutdown; it is a no-op without a file.
func LogWriter(out io.Writer, config LogFileConfiguration) (io.Writer, io.Closer) {
	if config.Path == "" {
		return out, nopCloser{}
	}

	rotating := &lumberjack.Logger{
		Filename:   config.Path,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
	}
	if out == nil {
		return rotating, rotating
	}
	return io.MultiWriter(out, rotating), rotating
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
