package nfa

import "github.com/coregx/thompson/internal/check"

// Config controls state table allocation.
//
// Example:
//
//	config := nfa.DefaultConfig()
//	config.InitialCapacity = 1024
//	anfa, err := nfa.NewWithConfig(config)
type Config struct {
	// InitialCapacity is the number of states to preallocate. Tables still
	// grow past it.
	// Default: 16
	InitialCapacity int `validate:"min=0,max=16777216"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		InitialCapacity: 16,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - InitialCapacity: 0 to 16,777,216
func (c Config) Validate() error {
	if fe := check.Struct(c); fe != nil {
		return &ConfigError{Field: fe.Field, Message: fe.Message}
	}
	return nil
}
