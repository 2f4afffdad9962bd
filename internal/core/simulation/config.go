package simulation

import (
	"fmt"
	"time"

	"github.com/zeusync/cellarena/internal/core/arena"
	"github.com/zeusync/cellarena/internal/core/cell"
)

// Config holds the population-level tunables. Durations that the engine
// consumes per tick are milliseconds in float64, like dt.
type Config struct {
	Seed  int64       `yaml:"seed"`
	Arena arena.Arena `yaml:"arena"`

	StartingCells int `yaml:"starting_cells"`
	MaxCells      int `yaml:"max_cells"`
	SpawnBatch    int `yaml:"spawn_batch"`

	StartSizeMin float64 `yaml:"start_size_min"`
	StartSizeMax float64 `yaml:"start_size_max"`
	SpawnSizeMin float64 `yaml:"spawn_size_min"`
	SpawnSizeMax float64 `yaml:"spawn_size_max"`
	SpawnPadding float64 `yaml:"spawn_padding"`

	CullPeriod    float64 `yaml:"cull_period"`
	CullMargin    float64 `yaml:"cull_margin"`
	CullBelowSize float64 `yaml:"cull_below_size"`

	SpeedModifier      float64 `yaml:"speed_modifier"`
	SpeedModifierStep  float64 `yaml:"speed_modifier_step"`
	SpeedModifierFloor float64 `yaml:"speed_modifier_floor"`

	Cell cell.Tuning `yaml:"cell"`
}

func DefaultConfig() Config {
	return Config{
		Seed:  1,
		Arena: arena.New(1280, 800),

		StartingCells: 1000,
		MaxCells:      3000,
		SpawnBatch:    30,

		StartSizeMin: 2,
		StartSizeMax: 6,
		SpawnSizeMin: 1,
		SpawnSizeMax: 2,
		SpawnPadding: 25,

		CullPeriod:    1000,
		CullMargin:    700,
		CullBelowSize: 1,

		SpeedModifier:      1,
		SpeedModifierStep:  0.2,
		SpeedModifierFloor: 0.21,

		Cell: cell.DefaultTuning(),
	}
}

func (c Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive width and height", ErrInvalidConfig)
	case c.StartingCells < 0 || c.MaxCells < 0 || c.SpawnBatch < 0:
		return fmt.Errorf("%w: population counts must not be negative", ErrInvalidConfig)
	case c.StartSizeMin < 0 || c.StartSizeMax < c.StartSizeMin:
		return fmt.Errorf("%w: start size range [%v, %v]", ErrInvalidConfig, c.StartSizeMin, c.StartSizeMax)
	case c.SpawnSizeMin < 0 || c.SpawnSizeMax < c.SpawnSizeMin:
		return fmt.Errorf("%w: spawn size range [%v, %v]", ErrInvalidConfig, c.SpawnSizeMin, c.SpawnSizeMax)
	case c.SpawnPadding < 0 || c.CullMargin < 0 || c.CullBelowSize < 0:
		return fmt.Errorf("%w: padding, margin and cull size must not be negative", ErrInvalidConfig)
	case c.CullPeriod <= 0:
		return fmt.Errorf("%w: cull_period must be positive", ErrInvalidConfig)
	case c.SpeedModifier < 0 || c.SpeedModifierStep < 0 || c.SpeedModifierFloor < 0:
		return fmt.Errorf("%w: speed modifier settings must not be negative", ErrInvalidConfig)
	}
	if err := c.Cell.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// RunnerConfig paces the real-time loop.
type RunnerConfig struct {
	TickInterval  time.Duration `yaml:"tick_interval"`
	StatsInterval time.Duration `yaml:"stats_interval"`
	// MaxTickDelta caps dt after stalls (suspended process, debugger).
	MaxTickDelta time.Duration `yaml:"max_tick_delta"`
}

func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		TickInterval:  16 * time.Millisecond,
		StatsInterval: 10 * time.Second,
		MaxTickDelta:  250 * time.Millisecond,
	}
}

func (c RunnerConfig) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidConfig)
	}
	if c.StatsInterval < 0 || c.MaxTickDelta < 0 {
		return fmt.Errorf("%w: stats_interval and max_tick_delta must not be negative", ErrInvalidConfig)
	}
	return nil
}
