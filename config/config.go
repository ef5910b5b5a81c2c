package config

import (
	"github.com/mealtrack/gateway/internal/telemetry"
	"github.com/mealtrack/gateway/internal/webapp"
	"github.com/mealtrack/gateway/util/conf"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// App is the web application configuration
	App webapp.Config `conf:"app"`

	// Telemetry is the tracing configuration
	Telemetry telemetry.Config `conf:"telemetry"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_level":  "info",
	"log_format": "production",
}.Merge(
	conf.MergeDefaults("app", map[string]any{
		"metrics":      false,
		"metrics_path": "/metrics",
		"cors":         false,
	}),
	conf.MergeDefaults("telemetry", map[string]any{
		"exporter":     string(telemetry.ExporterNone),
		"service_name": "gateway",
	}),
)
