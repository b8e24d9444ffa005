package thompson

import (
	"github.com/coregx/thompson/compiler"
	"github.com/coregx/thompson/internal/check"
	"github.com/coregx/thompson/nfa"
)

// Config controls pattern translation and the compilers it feeds.
//
// Example:
//
//	config := thompson.DefaultConfig()
//	config.MaxClassSize = 64 // allow [a-z0-9] and similar
//	anfa, err := thompson.CompileWithConfig(`[a-z0-9]+`, config)
type Config struct {
	// MaxClassSize is the largest character class, in code points, that
	// is expanded into a union of literals. The parser also produces
	// classes for single-rune alternations such as a|b.
	// Default: 16
	MaxClassSize int `validate:"min=1,max=1024"`

	// MaxRecursionDepth limits syntax tree nesting.
	// Default: 1000
	MaxRecursionDepth int `validate:"min=10,max=10000"`

	// Compiler configures the automata and logging of the compilers.
	Compiler compiler.Config `validate:"-"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxClassSize:      16,
		MaxRecursionDepth: 1000,
		Compiler:          compiler.DefaultConfig(),
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxClassSize: 1 to 1,024
//   - MaxRecursionDepth: 10 to 10,000
func (c Config) Validate() error {
	if fe := check.Struct(c); fe != nil {
		return &nfa.ConfigError{Field: fe.Field, Message: fe.Message}
	}
	return c.Compiler.Validate()
}
