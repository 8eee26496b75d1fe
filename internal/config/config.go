// SPDX-License-Identifier: MIT

// Package config loads the YAML settings shared by the command-line tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tekkamanmaverick/BoxRemap/catalog"
	"github.com/tekkamanmaverick/BoxRemap/remap"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables that override file settings.
const (
	EnvWorkers  = "BOXREMAP_WORKERS"
	EnvMaxBound = "BOXREMAP_MAX_BOUND"
	EnvLogLevel = "BOXREMAP_LOG_LEVEL"
)

// Config holds all tool settings.
type Config struct {
	// MaxBound caps the accepted search bound.
	MaxBound int `yaml:"max_bound"`
	// Workers is the enumeration concurrency; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	Score   ScoreConfig   `yaml:"score"`
	Logging LoggingConfig `yaml:"logging"`
}

// ScoreConfig weighs the terms of the canonical-choice score.
type ScoreConfig struct {
	Magnitude  int `yaml:"magnitude"`
	Negative   int `yaml:"negative"`
	Descending int `yaml:"descending"`
}

// LoggingConfig configures diagnostics on stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the built-in settings.
func Default() *Config {
	w := remap.DefaultWeights()
	return &Config{
		MaxBound: catalog.DefaultMaxBound,
		Workers:  0,
		Score: ScoreConfig{
			Magnitude:  w.Magnitude,
			Negative:   w.Negative,
			Descending: w.Descending,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, ErrInvalidConfig)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvMaxBound); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvMaxBound, v, ErrInvalidConfig)
		}
		c.MaxBound = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.MaxBound < 1 {
		return fmt.Errorf("max_bound must be >= 1, got %d: %w", c.MaxBound, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d: %w", c.Workers, ErrInvalidConfig)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown logging format %q: %w", c.Logging.Format, ErrInvalidConfig)
	}
	return nil
}

// Weights returns the score weights.
func (c *Config) Weights() remap.Weights {
	return remap.Weights{
		Magnitude:  c.Score.Magnitude,
		Negative:   c.Score.Negative,
		Descending: c.Score.Descending,
	}
}

// BuildOptions returns catalog options for these settings.
func (c *Config) BuildOptions() catalog.Options {
	opts := catalog.DefaultOptions()
	opts.MaxBound = c.MaxBound
	opts.Workers = c.Workers
	opts.Weights = c.Weights()
	return opts
}
