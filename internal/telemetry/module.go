package telemetry

import "go.uber.org/fx"

func Module(config Config) fx.Option {
	return fx.Module(
		"telemetry",
		// provide telemetry config
		fx.Supply(config),
		// provide metrics
		fx.Provide(NewMetrics),
		// provide tracing
		fx.Provide(NewLifecycleTracing),
		// invoke tracing
		fx.Invoke(func(*Tracing) {}),
	)
}
