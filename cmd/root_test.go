package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"

	"github.com/mealtrack/gateway/config"
	"github.com/mealtrack/gateway/internal/shell"
	"github.com/mealtrack/gateway/internal/telemetry"
)

func parseArgs(t *testing.T, args ...string) config.Config {
	t.Helper()

	var cfg config.Config

	app := &cli.App{
		Name:  appName,
		Flags: rootFlags(),
		Action: func(ctx *cli.Context) error {
			var err error
			cfg, err = parseConfig(ctx)
			return err
		},
	}

	require.NoError(t, app.Run(append([]string{appName}, args...)))

	return cfg
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg := parseArgs(t)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/metrics", cfg.App.MetricsPath)
	assert.Equal(t, telemetry.ExporterNone, cfg.Telemetry.Exporter)
}

func TestParseConfig_Flags(t *testing.T) {
	cfg := parseArgs(t,
		"--log-level", "debug",
		"--metrics",
		"--metrics-path", "/internal/metrics",
		"--telemetry-exporter", "stdout",
	)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.App.Metrics)
	assert.Equal(t, "/internal/metrics", cfg.App.MetricsPath)
	assert.Equal(t, telemetry.ExporterStdout, cfg.Telemetry.Exporter)
}

func TestParseConfig_FlagEnvVars(t *testing.T) {
	t.Setenv("APP_CORS", "true")
	t.Setenv("TELEMETRY_SERVICE_NAME", "meals")

	cfg := parseArgs(t)

	assert.True(t, cfg.App.Cors)
	assert.Equal(t, "meals", cfg.Telemetry.ServiceName)
}

func TestParseConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_format": "development", "app": {"cors": true}}`), 0o600))

	cfg := parseArgs(t, "--config", path, "--log-level", "warn")

	assert.Equal(t, "development", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.App.Cors)
}

func TestParseConfig_EnvDoesNotLeakIntoLaterRuns(t *testing.T) {
	t.Run("with env", func(t *testing.T) {
		t.Setenv("TELEMETRY_SERVICE_NAME", "meals")

		cfg := parseArgs(t)
		assert.Equal(t, "meals", cfg.Telemetry.ServiceName)
	})

	t.Run("without env", func(t *testing.T) {
		cfg := parseArgs(t)
		assert.Empty(t, cfg.Telemetry.ServiceName)
	})
}

func TestRootFlags_Fresh(t *testing.T) {
	first, second := rootFlags(), rootFlags()
	require.Len(t, second, len(first))

	for i := range first {
		assert.NotSame(t, first[i], second[i])
	}
}

func newRunApp(action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name:    appName,
		Version: "0.0.0-test",
		Flags:   rootFlags(),
		Action:  action,
	}
}

func TestRun_ExitCodes(t *testing.T) {
	noop := func(*cli.Context) error { return nil }

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no args", nil, 0},
		{"version", []string{"--version"}, 0},
		{"help", []string{"--help"}, 0},
		{"unknown flag", []string{"--no-such-flag"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{appName}, tt.args...)
			assert.Equal(t, tt.want, run(context.Background(), newRunApp(noop), args))
		})
	}
}

func TestRun_ActionError(t *testing.T) {
	app := newRunApp(func(*cli.Context) error {
		return errors.New("boom")
	})

	assert.Equal(t, 1, run(context.Background(), app, []string{appName}))
}

func TestRun_ShellShutdownCode(t *testing.T) {
	app := newRunApp(func(ctx *cli.Context) error {
		s := shell.New(zaptest.NewLogger(t))

		return s.Run(ctx.Context, fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						time.Sleep(20 * time.Millisecond)
						_ = sd.Shutdown(fx.ExitCode(4))
					}()
					return nil
				},
			})
		}))
	})

	assert.Equal(t, 4, run(context.Background(), app, []string{appName}))
}

func TestIsAWSLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_RUNTIME_API", "")
	assert.False(t, isAWSLambda())

	t.Setenv("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001")
	assert.True(t, isAWSLambda())
}
