package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/corgecs/pkg/ecs"
)

// Config describes a world and its ambient services. Values come from the
// defaults, then the YAML file, then CORGECS_* environment variables.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Dispatch  DispatchConfig  `yaml:"dispatch"`
	Entities  EntitiesConfig  `yaml:"entities"`
	Broadcast BroadcastConfig `yaml:"broadcast"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"CORGECS_LOG_LEVEL"`
	Format string `yaml:"format" env:"CORGECS_LOG_FORMAT"` // "json" or "console"
}

type DispatchConfig struct {
	Mode string `yaml:"mode" env:"CORGECS_DISPATCH_MODE"` // "locked" or "snapshot"
}

type EntitiesConfig struct {
	Shards int `yaml:"shards" env:"CORGECS_ENTITY_SHARDS"`
}

type BroadcastConfig struct {
	Workers int `yaml:"workers" env:"CORGECS_BROADCAST_WORKERS"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Dispatch: DispatchConfig{
			Mode: ecs.DispatchLocked.String(),
		},
		Entities: EntitiesConfig{
			Shards: 16,
		},
		Broadcast: BroadcastConfig{
			Workers: 8,
		},
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decodeYAML(bytes.NewReader(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadYAML reads a configuration from r over the defaults. Environment
// variables are not consulted.
func LoadYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := decodeYAML(r, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ParseEnv applies CORGECS_* environment variables to target.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise fail later, at world creation.
func (c *Config) Validate() error {
	var errs []error
	if _, err := ecs.ParseDispatchMode(c.Dispatch.Mode); err != nil {
		errs = append(errs, err)
	}
	if c.Entities.Shards <= 0 {
		errs = append(errs, fmt.Errorf("entities.shards must be positive, got %d", c.Entities.Shards))
	}
	if c.Broadcast.Workers <= 0 {
		errs = append(errs, fmt.Errorf("broadcast.workers must be positive, got %d", c.Broadcast.Workers))
	}
	return errors.Join(errs...)
}

// WorldOptions translates the configuration into world options.
func (c *Config) WorldOptions(logger *zap.Logger) ([]ecs.Option, error) {
	mode, err := ecs.ParseDispatchMode(c.Dispatch.Mode)
	if err != nil {
		return nil, err
	}
	return []ecs.Option{
		ecs.WithLogger(logger),
		ecs.WithDispatchMode(mode),
		ecs.WithEntityShards(c.Entities.Shards),
		ecs.WithBroadcastWorkers(c.Broadcast.Workers),
	}, nil
}
