// Package config provides configuration for the chessvar tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessvar-go/internal/errors"
)

// Verbosity levels for diagnostic output on LogFile.
const (
	Silent     = 0 // nothing
	Summary    = 1 // totals at the end of a run
	Commentary = 2 // every rejected move as well
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	Output OutputConfig
	Replay ReplayConfig

	// File handling
	CurrentInputFile string
	OutputFilename   string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Output:     *NewOutputConfig(),
		Replay:     *NewReplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for board and JSON output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line to LogFile when the verbosity is at least
// level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range [%d, %d]: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output writer: %w", errors.ErrInvalidConfig)
	}
	return c.Replay.Validate()
}
