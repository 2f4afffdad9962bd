package simulation

import (
	"context"

	"github.com/zeusync/cellarena/internal/core/random"
	"github.com/zeusync/cellarena/pkg/concurrent"
)

// BatchResult is the outcome of one headless run.
type BatchResult struct {
	Seed        int64
	Ticks       int
	Stats       Stats
	Fingerprint uint64
}

// RunHeadless builds a simulation for cfg.Seed and advances it ticks times
// with a fixed dt. ctx is checked between ticks.
func RunHeadless(ctx context.Context, cfg Config, ticks int, dt float64, opts ...Option) (BatchResult, error) {
	sim, err := New(cfg, random.New(cfg.Seed), opts...)
	if err != nil {
		return BatchResult{}, err
	}
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return BatchResult{}, err
		}
		sim.Tick(dt)
	}
	return BatchResult{
		Seed:        cfg.Seed,
		Ticks:       ticks,
		Stats:       sim.Stats(),
		Fingerprint: sim.Fingerprint(),
	}, nil
}

// Batch runs one independent headless simulation per seed, in parallel.
// Results come back in seed order.
func Batch(ctx context.Context, cfg Config, seeds []int64, ticks int, dt float64, workers int) ([]BatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return concurrent.Map(ctx, seeds, workers, func(ctx context.Context, seed int64) (BatchResult, error) {
		c := cfg
		c.Seed = seed
		return RunHeadless(ctx, c, ticks, dt)
	})
}
