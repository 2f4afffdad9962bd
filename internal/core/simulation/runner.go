package simulation

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/zeusync/cellarena/internal/core/events/bus"
	"github.com/zeusync/cellarena/internal/core/observability/log"
)

// Runner drives a Simulation in real time from a ticker, feeding it the
// measured wall-clock delta of each frame.
type Runner struct {
	sim    *Simulation
	cfg    RunnerConfig
	logger log.Log

	running atomic.Bool
	frames  atomic.Uint64
}

func NewRunner(sim *Simulation, cfg RunnerConfig, logger log.Log) *Runner {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Runner{
		sim:    sim,
		cfg:    cfg,
		logger: logger.With(log.String("component", "runner")),
	}
}

func (r *Runner) Simulation() *Simulation { return r.sim }

// Frames returns how many ticks the runner has driven.
func (r *Runner) Frames() uint64 { return r.frames.Load() }

// Run ticks until ctx is cancelled. The first frame has dt 0.
func (r *Runner) Run(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrRunnerAlreadyRunning
	}
	defer r.running.Store(false)

	ticker := time.NewTicker(r.cfg.TickInterval)
	defer ticker.Stop()

	var statsC <-chan time.Time
	if r.cfg.StatsInterval > 0 {
		statsTicker := time.NewTicker(r.cfg.StatsInterval)
		defer statsTicker.Stop()
		statsC = statsTicker.C
	}

	r.logger.Info("Runner started", log.Duration("tick_interval", r.cfg.TickInterval))

	var last time.Time
	for {
		select {
		case <-ctx.Done():
			r.logStats("Runner stopped")
			return nil
		case <-statsC:
			r.logStats("Simulation stats")
		case <-ticker.C:
			now := time.Now()
			var dt time.Duration
			if !last.IsZero() {
				dt = now.Sub(last)
			}
			last = now
			r.step(dt)
		}
	}
}

func (r *Runner) step(dt time.Duration) TickReport {
	if r.cfg.MaxTickDelta > 0 && dt > r.cfg.MaxTickDelta {
		dt = r.cfg.MaxTickDelta
	}
	report := r.sim.Tick(float64(dt) / float64(time.Millisecond))
	r.frames.Add(1)
	return report
}

func (r *Runner) logStats(msg string) {
	st := r.sim.Stats()
	var events bus.EventBusMetrics
	if r.sim.bus != nil {
		events = r.sim.bus.GetMetrics()
	}
	r.logger.Info(msg,
		log.Uint64("tick", st.Tick),
		log.Int("live", st.Live),
		log.Uint64("spawned", st.Spawned),
		log.Uint64("dead", st.Dead),
		log.Uint64("kills", st.Kills),
		log.String("largest", st.LargestName),
		log.Float64("largest_size", st.LargestSize),
		log.Float64("speed_modifier", st.SpeedModifier),
		log.Uint64("events_published", events.Published),
		log.Uint64("events_dropped", events.DroppedByFilters),
		log.Uint64("event_errors", events.Errors))
}
