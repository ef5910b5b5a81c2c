package logging

import "go.uber.org/zap"

// Format selects the zap preset.
type Format string

const (
	FormatProduction  Format = "production"
	FormatDevelopment Format = "development"
)

// New builds the application logger. Unknown levels fall back to info,
// empty formats to production.
func New(app, level string, format Format) (*zap.Logger, error) {
	var config zap.Config
	if format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	config.InitialFields = map[string]any{
		"app": app,
	}

	config.Level = parseLevel(level)

	return config.Build()
}

func parseLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
