package webapp

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mealtrack/gateway/internal/telemetry"
)

const (
	defaultMetricsPath = "/metrics"
	traceOperation     = "gateway"
)

type ApplicationParams struct {
	fx.In

	// Config is the application config.
	Config Config

	// Routes are the handlers mounted on the application mux.
	Routes []*Route `group:"routes"`

	// Metrics records per route request metrics.
	Metrics *telemetry.Metrics

	// Logger is the application logger.
	Logger *zap.Logger
}

// New builds the web application. The returned handler is what the
// standalone server and the lambda adapter serve; it has no state of
// its own beyond the injected collaborators.
//
// Middleware order, outermost first: sentry (re-panics), tracing,
// request logging, cors, metrics per route.
func New(params ApplicationParams) http.Handler {
	mux := http.NewServeMux()

	for _, route := range params.Routes {
		params.Logger.Debug("mounting route", zap.String("pattern", route.Pattern))
		mux.Handle(route.Pattern, params.Metrics.Middleware(route.Pattern, route.Handler))
	}

	if params.Config.Metrics {
		path := params.Config.MetricsPath
		if path == "" {
			path = defaultMetricsPath
		}

		params.Logger.Debug("mounting metrics", zap.String("pattern", path))
		mux.Handle(path, params.Metrics.Handler())
	}

	var handler http.Handler = mux
	if params.Config.Cors {
		handler = withCors(handler)
	}

	handler = withRequestLogger(params.Logger, handler)
	handler = telemetry.TraceMiddleware(traceOperation, handler)

	return sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(handler)
}
