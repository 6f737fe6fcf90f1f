// Package logging builds the slog logger focusdir writes diagnostics to.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// Options configures New.
type Options struct {
	Level     string
	FilePath  string
	MaxSizeMB int
	MaxFiles  int
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a logger writing to opts.FilePath, or to stderr when no file is
// set. Terminals get text records and everything else gets JSON. The
// returned closer releases the log file, if any.
func New(opts Options, stderr *os.File) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	out := stderr
	var closer io.Closer = nopCloser{}
	if opts.FilePath != "" {
		f, err := openLogFile(opts)
		if err != nil {
			return nil, nil, err
		}
		out, closer = f, f
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(out.Fd())) {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}
	return slog.New(handler), closer, nil
}

func openLogFile(opts Options) (*os.File, error) {
	dir := filepath.Dir(opts.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	if opts.MaxSizeMB > 0 {
		maxBytes := int64(opts.MaxSizeMB) * 1024 * 1024
		if stat, err := os.Stat(opts.FilePath); err == nil && stat.Size() >= maxBytes {
			if err := rotate(opts.FilePath, opts.MaxFiles); err != nil {
				// Keep appending to the oversized file rather than lose the record.
				fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
			}
		}
	}

	f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", opts.FilePath, err)
	}
	return f, nil
}

// rotate shifts path.1..path.N up by one, dropping the oldest, and moves
// path to path.1.
func rotate(basePath string, maxFiles int) error {
	if maxFiles < 1 {
		maxFiles = 1
	}
	for i := maxFiles; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		if i == maxFiles {
			os.Remove(oldPath)
		} else {
			os.Rename(oldPath, fmt.Sprintf("%s.%d", basePath, i+1))
		}
	}

	if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
