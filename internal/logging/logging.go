// Package logging builds the structured logger used by the CLI and the
// terminal platform. The TUI owns stdout and stderr while a game runs, so
// logs go to a rotated file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger sink.
type Options struct {
	File       string // Log file path; empty discards all output
	Level      string // debug, info, warn, error
	MaxSizeMB  int    // Rotate after this many megabytes
	MaxBackups int    // Rotated files to keep
	MaxAgeDays int    // Days to keep rotated files
}

// DefaultOptions returns rotation settings suitable for a desktop game.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

// New creates a logger for the given options.
// The returned closer releases the log file and must be called on exit.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: invalid level %q: %w", opts.Level, err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", opts.File, err)
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		w = lj
		closer = lj
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bigbrick",
		Level:           level,
	})
	logger.SetFormatter(log.LogfmtFormatter)

	return logger, closer, nil
}

// Discard returns a logger that drops everything. Used when no logger
// was injected.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
