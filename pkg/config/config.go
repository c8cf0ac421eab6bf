package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cloudconnect/cloudconnect/pkg/telemetry"
)

// AppConfig is the top-level CloudConnect configuration.
type AppConfig struct {
	// Telemetry configures logging, the audit recorder, tracing, and
	// metrics.
	Telemetry *telemetry.Config `yaml:"telemetry"`
}

// Default returns the default application configuration.
func Default() *AppConfig {
	return &AppConfig{
		Telemetry: telemetry.DefaultConfig(),
	}
}

// Load reads the configuration file at path and merges it over the
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (*AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *AppConfig) Validate() error {
	if c.Telemetry == nil {
		return fmt.Errorf("telemetry configuration is required")
	}
	return c.Telemetry.Validate()
}
