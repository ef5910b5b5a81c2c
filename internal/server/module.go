package server

import (
	"go.uber.org/fx"

	"github.com/mealtrack/gateway/util/logging"
)

// Module serves the application http.Handler on the address in config
// for the lifetime of the fx app.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		// provide config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("server"),
		// provide server
		fx.Provide(NewLifecycleServer),
		// invoke server
		fx.Invoke(func(*HttpServer) {}),
	)
}
