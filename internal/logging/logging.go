// Package logging sets up the diagnostic file logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Open returns a leveled logger writing to the file at path, creating
// the parent directory if needed. The UI owns the terminal, so logging
// must never abort startup: on failure Open returns a logger that
// discards everything, plus the error for the caller to report if it
// cares. The returned closer is never nil.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	logger := log.NewWithOptions(io.Discard, log.Options{
		Level:           parseLevel(level),
		ReportTimestamp: true,
		Prefix:          "taskmd",
	})

	if path == "" {
		return logger, nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return logger, nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return logger, nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}

// parseLevel maps a config string to a log level. Unknown values fall
// back to warn.
func parseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
