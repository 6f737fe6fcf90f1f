package config

import (
	"fmt"
	"strings"
)

// Activation modes accepted in the config file.
const (
	ActivationAuto       = "auto"
	ActivationEWMH       = "ewmh"
	ActivationInputFocus = "input-focus"
)

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	// Level controls logging verbosity: debug, info, warn, error
	Level string `yaml:"level,omitempty"`
	// File is the log file path; empty logs to stderr
	File string `yaml:"file,omitempty"`
	// MaxSizeMB is the log file size that triggers rotation (0 disables rotation)
	MaxSizeMB int `yaml:"max_size_mb,omitempty"`
	// MaxFiles is the number of rotated files to keep
	MaxFiles int `yaml:"max_files,omitempty"`
}

// Config holds settings that shape how focusdir talks to the window system.
// None of them affect which window is selected.
type Config struct {
	// Activation selects how the target window is focused: auto, ewmh, input-focus
	Activation string        `yaml:"activation,omitempty"`
	Logging    LoggingConfig `yaml:"log,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Activation: ActivationAuto,
		Logging: LoggingConfig{
			Level:     "warn",
			MaxSizeMB: 1,
			MaxFiles:  3,
		},
	}
}

// Validate checks that every value is one focusdir understands.
func (c *Config) Validate() error {
	switch c.Activation {
	case ActivationAuto, ActivationEWMH, ActivationInputFocus:
	default:
		return fmt.Errorf("activation: unknown mode %q (want auto, ewmh or input-focus)", c.Activation)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Logging.Level)
	}

	if c.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb: must be >= 0, got %d", c.Logging.MaxSizeMB)
	}
	if c.Logging.MaxFiles < 1 {
		return fmt.Errorf("log.max_files: must be >= 1, got %d", c.Logging.MaxFiles)
	}
	return nil
}
