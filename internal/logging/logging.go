// Package logging builds the charm logger used across dragresize.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"charm.land/log/v2"
	"github.com/adrg/xdg"
)

// LevelOff disables logging entirely.
const LevelOff = "off"

// defaultLogRelPath is where logs go when no file is configured. The
// editor owns the terminal, so stderr is never used while it runs.
const defaultLogRelPath = "dragresize/dragresize.log"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// New returns a logger writing at level to file. An empty file falls
// back to the XDG state directory. The returned closer releases the file.
func New(level, file string) (*log.Logger, io.Closer, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" || level == LevelOff {
		return Discard(), nopCloser{}, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if file == "" {
		file, err = xdg.StateFile(defaultLogRelPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get log path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	// #nosec G304 - the log path comes from the user's config or flags
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           lvl,
		Prefix:          "dragresize",
		ReportTimestamp: true,
	})
	return logger, f, nil
}
