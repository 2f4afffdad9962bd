package injector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/cellarena/internal/config"
	"github.com/zeusync/cellarena/internal/core/events/bus"
	"github.com/zeusync/cellarena/internal/core/simulation"
)

func TestInitializeApp(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.StartingCells = 20
	cfg.Log.Level = "debug"

	app, err := InitializeApp(cfg)
	require.NoError(t, err)
	require.Same(t, cfg, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Bus)

	sim := app.Runner.Simulation()
	require.Equal(t, 20, sim.Stats().Live)

	var spawned int
	_, err = app.Bus.Subscribe(simulation.EventCellSpawned, func(bus.Event) error {
		spawned++
		return nil
	})
	require.NoError(t, err)

	sim.Tick(0)
	require.Equal(t, cfg.Simulation.SpawnBatch, spawned)
}

func TestInitializeAppInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.MaxCells = -1

	_, err := InitializeApp(cfg)
	require.ErrorIs(t, err, simulation.ErrInvalidConfig)
}

func TestInitializeSameSeedSameWorld(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.StartingCells = 50
	cfg.Log.Level = "error"

	a, err := InitializeApp(cfg)
	require.NoError(t, err)
	b, err := InitializeApp(cfg)
	require.NoError(t, err)

	require.Equal(t, a.Runner.Simulation().Fingerprint(), b.Runner.Simulation().Fingerprint())
}

func TestInitializeAppSkipsSpawnEventsAboveDebug(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.StartingCells = 0
	cfg.Log.Level = "error"

	app, err := InitializeApp(cfg)
	require.NoError(t, err)

	var spawned int
	_, err = app.Bus.Subscribe(simulation.EventCellSpawned, func(bus.Event) error {
		spawned++
		return nil
	})
	require.NoError(t, err)

	app.Runner.Simulation().Tick(0)
	require.Zero(t, spawned)
	require.Equal(t, cfg.Simulation.SpawnBatch, app.Runner.Simulation().Stats().Live)
}
