package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// envPrefix is stripped from environment variables before mapping them to
// config keys: PREFIXD_ENGINE_DEFAULT_ALGORITHM -> engine.default_algorithm.
const envPrefix = "PREFIXD_"

// defaultsYAML carries the built-in defaults, loaded before any file or
// environment override.
var defaultsYAML = []byte(`
server:
  name: prefixd
  version: 1.0.0
log:
  level: info
  format: json
  development: false
engine:
  default_algorithm: character
  include_performance: false
`)

// Load builds the configuration from defaults, an optional YAML file, and
// PREFIXD_-prefixed environment variables, then validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// envTransform maps an environment variable name to a config key. The first
// underscore separates the section from the field; field names keep their
// remaining underscores (PREFIXD_ENGINE_DEFAULT_ALGORITHM -> engine.default_algorithm).
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(s, "_", ".", 1)
}
