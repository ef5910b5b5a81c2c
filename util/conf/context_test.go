package conf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mealtrack/gateway/util/conf"
)

func TestConfigFromContext(t *testing.T) {
	ctx := conf.ContextWithConfig(context.Background(), testConfig{LogLevel: "debug"})

	cfg, err := conf.ConfigFromContext[testConfig](ctx)
	assert.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigFromContext_Missing(t *testing.T) {
	_, err := conf.ConfigFromContext[testConfig](context.Background())
	assert.ErrorIs(t, err, conf.ErrNoConfigInContext)
}

func TestConfigFromContext_WrongType(t *testing.T) {
	ctx := conf.ContextWithConfig(context.Background(), "not a config")

	_, err := conf.ConfigFromContext[testConfig](ctx)
	assert.ErrorIs(t, err, conf.ErrInvalidConfigInContext)
}
