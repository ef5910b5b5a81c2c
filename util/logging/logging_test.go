package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mealtrack/gateway/util/logging"
)

func TestLoggerFromContext(t *testing.T) {
	log := zap.NewNop()

	got, err := logging.LoggerFromContext(logging.ContextWithLogger(context.Background(), log))
	assert.NoError(t, err)
	assert.Same(t, log, got)
}

func TestLoggerFromContext_Missing(t *testing.T) {
	_, err := logging.LoggerFromContext(context.Background())
	assert.ErrorIs(t, err, logging.ErrNoLoggerInContext)
}

func TestLoggerFromContext_Nil(t *testing.T) {
	_, err := logging.LoggerFromContext(logging.ContextWithLogger(context.Background(), nil))
	assert.ErrorIs(t, err, logging.ErrNoLoggerInContext)
}

func TestLoggerFromContextOrNop(t *testing.T) {
	log := zap.NewNop()
	assert.Same(t, log, logging.LoggerFromContextOrNop(logging.ContextWithLogger(context.Background(), log)))

	fallback := logging.LoggerFromContextOrNop(context.Background())
	require.NotNil(t, fallback)
	assert.False(t, fallback.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew(t *testing.T) {
	tests := []struct {
		level  string
		format logging.Format
		want   zapcore.Level
	}{
		{"debug", logging.FormatDevelopment, zapcore.DebugLevel},
		{"warn", logging.FormatProduction, zapcore.WarnLevel},
		{"", logging.FormatProduction, zapcore.InfoLevel},
		{"bogus", "", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := logging.New("gateway", tt.level, tt.format)
			require.NoError(t, err)

			assert.True(t, log.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.want-1))
			}
		})
	}
}
