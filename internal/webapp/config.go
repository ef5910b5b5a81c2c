package webapp

type Config struct {
	// Metrics enables the Prometheus scrape endpoint.
	Metrics bool `conf:"metrics"`

	// MetricsPath is the path of the scrape endpoint.
	MetricsPath string `conf:"metrics_path"`

	// Cors answers preflight requests and sets permissive CORS headers.
	Cors bool `conf:"cors"`
}
