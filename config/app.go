package config

import (
	"fmt"

	"github.com/kbukum/convodyn/analyzer"
	"github.com/kbukum/convodyn/logger"
	"github.com/kbukum/convodyn/server"
)

// AppConfig is the full application configuration: service identity plus the
// analyzer, server, logging, and observability sections.
type AppConfig struct {
	Name          string              `yaml:"name" mapstructure:"name"`
	Environment   string              `yaml:"environment" mapstructure:"environment"`
	Version       string              `yaml:"version" mapstructure:"version"`
	Debug         bool                `yaml:"debug" mapstructure:"debug"`
	Logging       logger.Config       `yaml:"logging" mapstructure:"logging"`
	Analyzer      analyzer.Config     `yaml:"analyzer" mapstructure:"analyzer"`
	Server        server.Config       `yaml:"server" mapstructure:"server"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// ObservabilityConfig configures tracing and metrics export. Disabled by
// default; when enabled, both signals go to the same OTLP HTTP endpoint.
type ObservabilityConfig struct {
	Enabled         bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint        string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure        bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate      float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
	IntervalSeconds int     `yaml:"interval_seconds" mapstructure:"interval_seconds"`
}

// ApplyDefaults applies default values to unset fields across all sections.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "convodyn"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Analyzer.ApplyDefaults()
	c.Server.ApplyDefaults()

	if c.Observability.Endpoint == "" {
		c.Observability.Endpoint = "localhost:4318"
		c.Observability.Insecure = true
	}
	if c.Observability.SampleRate == 0 {
		c.Observability.SampleRate = 1.0
	}
	if c.Observability.IntervalSeconds == 0 {
		c.Observability.IntervalSeconds = 15
	}
}

// Validate validates all configuration sections.
func (c *AppConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, env := range validEnvs {
		if c.Environment == env {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Analyzer.Validate(); err != nil {
		return fmt.Errorf("config.analyzer: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if c.Observability.SampleRate < 0 || c.Observability.SampleRate > 1 {
		return fmt.Errorf("config.observability.sample_rate must be in [0, 1] (got: %g)", c.Observability.SampleRate)
	}
	return nil
}

// LoadApp loads, defaults, and validates the full application configuration.
func LoadApp(opts ...LoaderOption) (*AppConfig, error) {
	var cfg AppConfig
	if err := Load("convodyn", &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
