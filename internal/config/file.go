package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML configuration file over the defaults. Keys missing
// from the file keep their default values.
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("'%s': %v", filename, err)
	}
	return Parse(b)
}

// Parse decodes YAML configuration over the defaults and validates it.
func Parse(b []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	// An explicit null sub-section decodes to nil.
	if cfg.Display == nil {
		cfg.Display = NewDisplayConfig()
	}
	if cfg.Store == nil {
		cfg.Store = NewStoreConfig()
	}
	if cfg.Game == nil {
		cfg.Game = NewGameConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(filename string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("'%s': %v", filename, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("'%s': %v", filename, err)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write file '%s': %v", filename, err)
	}
	return nil
}
