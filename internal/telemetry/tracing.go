package telemetry

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const defaultServiceName = "gateway"

// Tracing owns the tracer provider for the lifetime of the process.
type Tracing struct {
	config   Config
	exporter sdktrace.SpanExporter
	provider *sdktrace.TracerProvider
	log      *zap.Logger
}

type TracingParams struct {
	fx.In

	Config Config
	Logger *zap.Logger

	// Exporter replaces the exporter selected by Config.
	Exporter sdktrace.SpanExporter `optional:"true"`
}

func NewTracing(params TracingParams) *Tracing {
	return &Tracing{
		config:   params.Config,
		exporter: params.Exporter,
		log:      params.Logger,
	}
}

func NewLifecycleTracing(params TracingParams, lc fx.Lifecycle) *Tracing {
	tracing := NewTracing(params)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return tracing.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return tracing.Shutdown(ctx)
		},
	})
	return tracing
}

// Start creates the configured exporter and installs the tracer
// provider globally. It is a no-op for ExporterNone.
func (t *Tracing) Start(ctx context.Context) error {
	exporter, err := t.newExporter(ctx)
	if err != nil {
		return err
	}

	if exporter == nil {
		t.log.Debug("tracing disabled")
		return nil
	}

	serviceName := t.config.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return fmt.Errorf("failed to create trace resource: %w", err)
	}

	t.provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(t.provider)

	t.log.Info("tracing enabled",
		zap.String("exporter", string(t.config.Exporter)),
		zap.String("service", serviceName),
	)

	return nil
}

// Flush exports all spans ended so far. It is a no-op when tracing is
// disabled.
func (t *Tracing) Flush(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}

	return t.provider.ForceFlush(ctx)
}

// Shutdown flushes pending spans and stops the tracer provider.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}

	if err := t.provider.Shutdown(ctx); err != nil {
		t.log.Error("failed to shutdown tracer provider", zap.Error(err))
		return err
	}

	return nil
}

func (t *Tracing) newExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if t.exporter != nil {
		return t.exporter, nil
	}

	switch t.config.Exporter {
	case "", ExporterNone:
		return nil, nil
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOtlp:
		var opts []otlptracehttp.Option
		if t.config.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpointURL(t.config.Endpoint))
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("invalid trace exporter: %s", t.config.Exporter)
	}
}

// TraceMiddleware wraps next with otelhttp instrumentation. Spans go to
// the globally installed tracer provider.
func TraceMiddleware(name string, next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, name)
}
