package webapp

import (
	"go.uber.org/fx"

	"github.com/mealtrack/gateway/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"webapp",
		// provide application config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("webapp"),
		// provide routes
		fx.Provide(NewStatusRoute),
		// provide application
		fx.Provide(New),
	)
}
