// Package config provides configuration for chessrules.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration. Sub-configs group related
// settings; the YAML file uses the same grouping.
type Config struct {
	Verbosity int `yaml:"verbosity"` // 0=nothing, 1=results, 2=running commentary

	Display *DisplayConfig `yaml:"display"`
	Store   *StoreConfig   `yaml:"store"`
	Game    *GameConfig    `yaml:"game"`

	// LogPath names a file for diagnostics; empty means LogFile as set.
	LogPath string `yaml:"log_file"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Display:    NewDisplayConfig(),
		Store:      NewStoreConfig(),
		Game:       NewGameConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer the board and prompts are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}

// Logf writes a diagnostic line when the configured verbosity is at least
// level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
