// Package logging builds the zap loggers used across prefixd.
package logging

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum enabled level: debug, info, warn, or error.
	Level string `koanf:"level"`

	// Format selects the encoder: "json" or "console".
	Format string `koanf:"format"`

	// Development enables development-mode behavior (DPanic panics,
	// human-friendly timestamps).
	Development bool `koanf:"development"`
}

// DefaultConfig returns production defaults: info-level JSON output.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
	}
}

// Validate checks the level and format identifiers.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q (valid: json, console)", c.Format)
	}
	return nil
}
