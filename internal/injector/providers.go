package injector

import (
	"github.com/zeusync/vecmath/internal/config"
	"github.com/zeusync/vecmath/internal/core/observability/log"
)

// ProvideLogger builds the logger; the cleanup flushes buffered entries.
func ProvideLogger(cfg config.Config) (*log.Logger, func()) {
	logger := log.New(cfg.LogLevel())
	return logger, func() {
		_ = logger.Sync()
	}
}

func ProvideRunnerConfig(cfg config.Config) config.RunnerConfig {
	return cfg.Runner
}
