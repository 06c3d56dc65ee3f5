package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts the builder from an existing Config, e.g. one read by Load.
func (b *ConfigBuilder) From(cfg *Config) *ConfigBuilder {
	b.cfg = cfg
	return b
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithColour enables or disables coloured output.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.Colour = enabled
	return b
}

// WithUnicode chooses chess glyphs (true) or letters (false).
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.Unicode = enabled
	return b
}

// WithCoordinates controls the file and rank labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Display.Coordinates = enabled
	return b
}

// WithStore sets the saved-position database path.
func (b *ConfigBuilder) WithStore(path string) *ConfigBuilder {
	b.cfg.Store.Path = path
	return b
}

// WithPlacement sets the starting position.
func (b *ConfigBuilder) WithPlacement(placement string) *ConfigBuilder {
	b.cfg.Game.Placement = placement
	return b
}

// WithSetup sets the scenario file used for the starting position.
func (b *ConfigBuilder) WithSetup(path string) *ConfigBuilder {
	b.cfg.Game.Setup = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
