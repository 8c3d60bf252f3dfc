// Package config provides configuration loading for prefixd.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (PREFIXD_SERVER_NAME, PREFIXD_LOG_LEVEL, ...)
//  2. YAML config file (optional, passed on the command line)
//  3. Built-in defaults
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/prefixd/internal/lcp"
	"github.com/fyrsmithlabs/prefixd/internal/logging"
)

// Config holds the complete prefixd configuration.
type Config struct {
	Server ServerConfig   `koanf:"server"`
	Log    logging.Config `koanf:"log"`
	Engine EngineConfig   `koanf:"engine"`
}

// ServerConfig identifies the MCP server implementation.
type ServerConfig struct {
	Name    string `koanf:"name"`
	Version string `koanf:"version"`
}

// EngineConfig holds progressive-engine defaults applied when a tool call
// leaves the corresponding field unset.
type EngineConfig struct {
	// DefaultAlgorithm is used when a tool call names no algorithm.
	DefaultAlgorithm string `koanf:"default_algorithm"`

	// IncludePerformance enables per-step instrumentation by default.
	IncludePerformance bool `koanf:"include_performance"`
}

// Validate checks identifiers that have closed value sets.
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return fmt.Errorf("server.name must not be empty")
	}
	if _, err := lcp.ParseAlgorithm(c.Engine.DefaultAlgorithm); err != nil {
		return fmt.Errorf("engine.default_algorithm: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}
