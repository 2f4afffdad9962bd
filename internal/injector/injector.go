//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/cellarena/internal/config"
	"github.com/zeusync/cellarena/internal/core/observability/log"
)

func InitializeLogger(cfg *config.Config) log.Log {
	wire.Build(LoggerSet)
	return nil
}

func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(LoggerSet, SimulationSet, wire.Struct(new(App), "*"))
	return nil, nil
}
