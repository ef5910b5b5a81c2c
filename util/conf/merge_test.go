package conf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mealtrack/gateway/util/conf"
)

func TestMergeDefaults(t *testing.T) {
	merged := conf.MergeDefaults("app",
		map[string]any{"metrics": false},
		map[string]any{"metrics_path": "/metrics"},
	)

	assert.Equal(t, conf.DefaultConfig{
		"app.metrics":      false,
		"app.metrics_path": "/metrics",
	}, merged)
}

func TestDefaultConfig_Merge(t *testing.T) {
	base := conf.DefaultConfig{"log_level": "info", "log_format": "production"}

	merged := base.Merge(conf.DefaultConfig{"log_level": "debug"})

	assert.Equal(t, "debug", merged["log_level"])
	assert.Equal(t, "production", merged["log_format"])
	// the receiver is left untouched
	assert.Equal(t, "info", base["log_level"])
}
