package config

// StoreConfig holds settings for the saved-position database.
type StoreConfig struct {
	// Path of the SQLite database; empty disables save and load
	Path string `yaml:"path"`
}

// NewStoreConfig creates a StoreConfig with default values.
// The store is disabled by default.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{}
}

// Enabled reports whether a database path is configured.
func (s *StoreConfig) Enabled() bool {
	return s.Path != ""
}
