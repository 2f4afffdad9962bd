// Package config loads the cellarena YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/cellarena/internal/core/observability/log"
	"github.com/zeusync/cellarena/internal/core/simulation"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Simulation simulation.Config       `yaml:"simulation"`
	Runner     simulation.RunnerConfig `yaml:"runner"`
	Log        LogConfig               `yaml:"log"`
	Batch      BatchConfig             `yaml:"batch"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// BatchConfig drives headless runs. Runs of 0 means real-time mode.
type BatchConfig struct {
	Runs    int     `yaml:"runs"`
	Ticks   int     `yaml:"ticks"`
	DeltaMs float64 `yaml:"delta_ms"`
	Workers int     `yaml:"workers"`
}

func Default() *Config {
	return &Config{
		Simulation: simulation.DefaultConfig(),
		Runner:     simulation.DefaultRunnerConfig(),
		Log:        LogConfig{Level: "info"},
		Batch: BatchConfig{
			Ticks:   3600,
			DeltaMs: 16,
			Workers: 4,
		},
	}
}

// Load reads path on top of the defaults, so a file only needs the keys it
// changes. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return fmt.Errorf("%w: simulation: %w", ErrInvalidConfig, err)
	}
	if err := c.Runner.Validate(); err != nil {
		return fmt.Errorf("%w: runner: %w", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}
	if c.Batch.Runs < 0 || c.Batch.Ticks < 0 || c.Batch.DeltaMs < 0 || c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch settings must not be negative", ErrInvalidConfig)
	}
	return nil
}

// LogOptions converts the log section. The level was checked by Validate.
func (c *Config) LogOptions() log.Options {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		level = log.LevelInfo
	}
	return log.Options{Level: level, Development: c.Log.Development}
}

// Seeds returns the batch seeds: Runs consecutive values from the
// simulation seed.
func (c *Config) Seeds() []int64 {
	seeds := make([]int64, c.Batch.Runs)
	for i := range seeds {
		seeds[i] = c.Simulation.Seed + int64(i)
	}
	return seeds
}
