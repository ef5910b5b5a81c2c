package telemetry

// Exporter selects where finished spans are sent.
type Exporter string

const (
	// ExporterNone disables tracing.
	ExporterNone Exporter = "none"

	// ExporterStdout writes spans to stdout.
	ExporterStdout Exporter = "stdout"

	// ExporterOtlp sends spans to an OTLP/HTTP collector.
	ExporterOtlp Exporter = "otlp"
)

type Config struct {
	// Exporter is the span exporter to use.
	Exporter Exporter `conf:"exporter"`

	// Endpoint is the collector URL for the otlp exporter.
	Endpoint string `conf:"endpoint"`

	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `conf:"service_name"`
}
