package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/cellarena/internal/config"
	"github.com/zeusync/cellarena/internal/core/events/bus"
	"github.com/zeusync/cellarena/internal/core/observability/log"
	"github.com/zeusync/cellarena/internal/core/random"
	"github.com/zeusync/cellarena/internal/core/simulation"
)

// App is everything the real-time binary needs.
type App struct {
	Config *config.Config
	Logger log.Log
	Bus    bus.EventBus
	Runner *simulation.Runner
}

var LoggerSet = wire.NewSet(ProvideLogOptions, log.Provide)

var SimulationSet = wire.NewSet(
	bus.New,
	ProvideSource,
	ProvideSimulation,
	ProvideRunnerConfig,
	simulation.NewRunner,
)

func ProvideLogOptions(cfg *config.Config) log.Options {
	return cfg.LogOptions()
}

func ProvideSource(cfg *config.Config) random.Source {
	return random.New(cfg.Simulation.Seed)
}

// ProvideSimulation drops spawn events unless the logger is at debug level,
// since nothing else consumes them and a full arena spawns every tick.
func ProvideSimulation(cfg *config.Config, src random.Source, b bus.EventBus, logger log.Log) (*simulation.Simulation, error) {
	opts := []simulation.Option{simulation.WithBus(b), simulation.WithLogger(logger)}
	if logger.GetLevel() > log.LevelDebug {
		opts = append(opts, simulation.WithEventFilters(bus.SkipTypes(simulation.EventCellSpawned)))
	}
	return simulation.New(cfg.Simulation, src, opts...)
}

func ProvideRunnerConfig(cfg *config.Config) simulation.RunnerConfig {
	return cfg.Runner
}
