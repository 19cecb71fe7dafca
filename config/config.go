package config

import (
	"fmt"

	"github.com/kbukum/iterkit/itertools"
	"github.com/kbukum/iterkit/observability"
	"github.com/kbukum/iterkit/validation"
)

// Config is the configuration of the iterctl tool.
type Config struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Itertools     itertools.Config          `yaml:"itertools" mapstructure:"itertools"`
	Metrics       observability.MeterConfig `yaml:"metrics" mapstructure:"metrics"`
}

// ApplyDefaults fills every section with its defaults.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Itertools.ApplyDefaults()
	if c.Metrics.ServiceVersion == "" {
		c.Metrics.ServiceVersion = c.Version
	}
	if c.Metrics.Environment == "" {
		c.Metrics.Environment = c.Environment
	}
	c.Metrics.ApplyDefaults(c.Name)
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Itertools.Validate(); err != nil {
		return fmt.Errorf("config.itertools: %w", err)
	}
	if err := validation.ValidateStruct(&c.Metrics); err != nil {
		return fmt.Errorf("config.metrics: %w", err)
	}
	return nil
}

// Load reads, defaults and validates the configuration of a service.
// The service name is used when the file does not set one.
func Load(serviceName string, opts ...LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
