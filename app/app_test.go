package app_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"

	"github.com/mealtrack/gateway/app"
	"github.com/mealtrack/gateway/app/standalone"
	"github.com/mealtrack/gateway/config"
	"github.com/mealtrack/gateway/internal/server"
	"github.com/mealtrack/gateway/internal/status"
	"github.com/mealtrack/gateway/internal/telemetry"
	"github.com/mealtrack/gateway/internal/webapp"
)

func TestStandalone_ServesStatusAndMetrics(t *testing.T) {
	cfg := config.Config{
		App: webapp.Config{
			Metrics:     true,
			MetricsPath: "/metrics",
		},
		Telemetry: telemetry.Config{Exporter: telemetry.ExporterNone},
	}

	var srv *server.HttpServer

	fxApp := fxtest.New(t,
		fx.Supply(fx.Annotate(context.Background(), fx.As(new(context.Context)))),
		fx.Supply(zaptest.NewLogger(t)),
		app.SharedModule(cfg),
		standalone.Module(standalone.Config{
			HttpConfig: server.HttpConfig{Host: "127.0.0.1", Port: 0},
		}),
		fx.Populate(&srv),
	)

	fxApp.RequireStart()
	defer fxApp.RequireStop()

	get := func(path string) (*http.Response, string) {
		res, err := http.Get(fmt.Sprintf("http://%s%s", srv.Addr(), path))
		require.NoError(t, err)
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		return res, string(body)
	}

	res, body := get("/api")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.Equal(t, status.Payload, body)

	res, body = get("/metrics")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "gateway_http_requests_total")
}
