package app

import (
	"go.uber.org/fx"

	"github.com/mealtrack/gateway/config"
	"github.com/mealtrack/gateway/internal/telemetry"
	"github.com/mealtrack/gateway/internal/webapp"
)

// SharedModule provides the web application and its telemetry.
func SharedModule(cfg config.Config) fx.Option {
	return fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
		// provide metrics and tracing
		telemetry.Module(cfg.Telemetry),
		// provide the web application
		webapp.Module(cfg.App),
	)
}
