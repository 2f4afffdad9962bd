package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/cellarena/internal/config"
	"github.com/zeusync/cellarena/internal/core/events/bus"
	"github.com/zeusync/cellarena/internal/core/observability/log"
	"github.com/zeusync/cellarena/internal/core/simulation"
	"github.com/zeusync/cellarena/internal/injector"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		seed       = flag.Int64("seed", 0, "override the simulation seed")
		runs       = flag.Int("runs", -1, "headless runs to execute instead of the real-time loop")
		ticks      = flag.Int("ticks", -1, "ticks per headless run")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *runs >= 0 {
		cfg.Batch.Runs = *runs
	}
	if *ticks >= 0 {
		cfg.Batch.Ticks = *ticks
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Batch.Runs > 0 {
		err = runBatch(ctx, cfg)
	} else {
		err = runRealtime(ctx, cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runRealtime(ctx context.Context, cfg *config.Config) error {
	app, err := injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()

	if err = subscribe(app.Bus, app.Logger); err != nil {
		return err
	}
	obs := &deliveryObserver{logger: app.Logger.With(log.String("component", "events"))}
	app.Bus.AddObserver(obs)
	defer app.Bus.RemoveObserver(obs)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Runner.Run(ctx)
	})
	g.Go(func() error {
		watchSpeedSignals(ctx, app.Runner.Simulation())
		return nil
	})
	return g.Wait()
}

// watchSpeedSignals maps SIGUSR1 to faster and SIGUSR2 to slower.
func watchSpeedSignals(ctx context.Context, sim *simulation.Simulation) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGUSR1, syscall.SIGUSR2)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-sigCh:
			sim.AdjustSpeedModifier(sig == syscall.SIGUSR1)
		}
	}
}

// deliveryObserver reports slow event handlers. Registering it also turns on
// the bus counters the runner logs with its stats. Handler errors are logged
// by the simulation.
type deliveryObserver struct {
	logger log.Log
}

const slowDelivery = 5 * time.Millisecond

func (o *deliveryObserver) OnPublish(string, bus.Event) {}

func (o *deliveryObserver) OnDelivered(eventType string, handlers int, _ error, took time.Duration) {
	if took > slowDelivery {
		o.logger.Debug("Slow event delivery",
			log.String("event", eventType),
			log.Int("handlers", handlers),
			log.Duration("took", took))
	}
}

func subscribe(b bus.EventBus, logger log.Log) error {
	logger = logger.With(log.String("component", "events"))

	if _, err := b.Subscribe(simulation.EventCellSpawned, func(e bus.Event) error {
		ev := e.Data().(simulation.SpawnedEvent)
		logger.Debug("Cell spawned", log.Uint64("tick", ev.Tick), log.String("name", ev.Name), log.Float64("size", ev.Size))
		return nil
	}); err != nil {
		return err
	}

	if _, err := b.Subscribe(simulation.EventCellAbsorbed, func(e bus.Event) error {
		ev := e.Data().(simulation.AbsorbedEvent)
		logger.Debug("Cell absorbed",
			log.Uint64("tick", ev.Tick),
			log.String("winner", ev.WinnerName),
			log.Float64("winner_size", ev.WinnerSize),
			log.String("victim", ev.VictimName),
			log.Bool("credited", ev.Credited))
		return nil
	}); err != nil {
		return err
	}

	if _, err := b.Subscribe(simulation.EventCellPhrase, func(e bus.Event) error {
		ev := e.Data().(simulation.PhraseEvent)
		logger.Debug("Cell says", log.String("name", ev.Name), log.String("phrase", ev.Phrase))
		return nil
	}); err != nil {
		return err
	}

	_, err := b.Subscribe(simulation.EventCellCulled, func(e bus.Event) error {
		ev := e.Data().(simulation.CulledEvent)
		logger.Debug("Cell culled",
			log.String("name", ev.Name),
			log.Int("kills", ev.Kills),
			log.String("reason", string(ev.Reason)))
		return nil
	})
	return err
}

func runBatch(ctx context.Context, cfg *config.Config) error {
	logger := injector.InitializeLogger(cfg)
	defer func() { _ = logger.Sync() }()

	logger.Info("Batch started",
		log.Int("runs", cfg.Batch.Runs),
		log.Int("ticks", cfg.Batch.Ticks),
		log.Float64("delta_ms", cfg.Batch.DeltaMs),
		log.Int("workers", cfg.Batch.Workers))

	results, err := simulation.Batch(ctx, cfg.Simulation, cfg.Seeds(), cfg.Batch.Ticks, cfg.Batch.DeltaMs, cfg.Batch.Workers)
	if err != nil {
		return err
	}
	for _, res := range results {
		logger.Info("Batch run finished",
			log.Int64("seed", res.Seed),
			log.Int("live", res.Stats.Live),
			log.Uint64("spawned", res.Stats.Spawned),
			log.Uint64("dead", res.Stats.Dead),
			log.Uint64("kills", res.Stats.Kills),
			log.String("largest", res.Stats.LargestName),
			log.Float64("largest_size", res.Stats.LargestSize),
			log.String("fingerprint", fmt.Sprintf("%016x", res.Fingerprint)))
	}
	return nil
}
