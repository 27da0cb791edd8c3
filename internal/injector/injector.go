//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/vecmath/internal/config"
	"github.com/zeusync/vecmath/internal/core/observability/log"
	"github.com/zeusync/vecmath/internal/core/script"
)

var runnerSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideRunnerConfig,
	script.NewRunner,
)

func InitializeRunner(cfg config.Config) (*script.Runner, func()) {
	wire.Build(runnerSet)
	return nil, nil
}
