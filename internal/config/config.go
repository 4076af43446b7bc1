package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Source SourceConfig `yaml:"source"`
	Sink   SinkConfig   `yaml:"sink"`

	// SystemSchemas extends the built-in per-dialect denylists of internal
	// schemas, keyed by dialect name. New dialects need no code change.
	SystemSchemas map[string][]string `yaml:"systemSchemas"`
}

type SourceConfig struct {
	Type string `yaml:"type"`
	DSN  string `yaml:"dsn"`
}

type SinkConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

var sourceTypes = map[string]bool{
	"mysql":    true,
	"postgres": true,
	"mssql":    true,
}

func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}

	_, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if !sourceTypes[c.Source.Type] {
		return fmt.Errorf("source.type must be one of mysql, postgres, mssql; got %q", c.Source.Type)
	}
	if c.Source.DSN == "" {
		return errors.New("source.dsn is required")
	}
	if c.Sink.Topic != "" && len(c.Sink.Brokers) == 0 {
		return errors.New("sink.brokers is required when sink.topic is set")
	}
	if c.Sink.Topic == "" && len(c.Sink.Brokers) > 0 {
		return errors.New("sink.topic is required when sink.brokers is set")
	}
	return nil
}

// SinkEnabled reports whether a catalog sink is configured.
func (c *Config) SinkEnabled() bool {
	return c.Sink.Topic != ""
}
