package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/mealtrack/gateway/config"
	"github.com/mealtrack/gateway/internal/shell"
	"github.com/mealtrack/gateway/util/conf"
	"github.com/mealtrack/gateway/util/logging"
)

var (
	appName  = "gateway"
	appUsage = `Serves the backend API, either as a standalone http server
or as an AWS Lambda function.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags:           rootFlags(),
		Before: func(ctx *cli.Context) error {
			// parse config using defaults, file, env and flags
			cfg, err := parseConfig(ctx)
			if err != nil {
				return err
			}

			// create the logger
			log, err := logging.New(appName, cfg.LogLevel, logging.Format(cfg.LogFormat))
			if err != nil {
				return err
			}

			// inject logger and config into the cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			// Before may have failed before the logger was created
			_ = logging.LoggerFromContextOrNop(ctx.Context).Sync()

			return nil
		},
	}
)

// rootFlags returns a fresh set of the global flags. urfave/cli stores
// env var values on the flag while applying it, so every app instance
// gets its own.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		// general flags
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "set the log format. Options: production, development.",
			EnvVars: []string{"LOG_FORMAT"},
		},
		&cli.PathFlag{
			Name:    "config",
			Usage:   "load configuration from a json or .env file.",
			EnvVars: []string{"CONFIG_FILE"},
		},
		// app flags
		&cli.BoolFlag{
			Name:     "metrics",
			Usage:    "expose prometheus metrics.",
			Category: "app",
			EnvVars:  []string{"APP_METRICS"},
		},
		&cli.StringFlag{
			Name:     "metrics-path",
			Usage:    "the path of the prometheus metrics endpoint.",
			Category: "app",
			EnvVars:  []string{"APP_METRICS_PATH"},
		},
		&cli.BoolFlag{
			Name:     "cors",
			Usage:    "answer CORS preflight requests and allow any origin.",
			Category: "app",
			EnvVars:  []string{"APP_CORS"},
		},
		// telemetry flags
		&cli.StringFlag{
			Name:     "telemetry-exporter",
			Usage:    "the trace exporter. Options: none, stdout, otlp.",
			Category: "telemetry",
			EnvVars:  []string{"TELEMETRY_EXPORTER"},
		},
		&cli.StringFlag{
			Name:     "telemetry-endpoint",
			Usage:    "the OTLP/HTTP collector endpoint.",
			Category: "telemetry",
			EnvVars:  []string{"TELEMETRY_ENDPOINT", "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"},
		},
		&cli.StringFlag{
			Name:     "telemetry-service-name",
			Usage:    "the service name reported with traces.",
			Category: "telemetry",
			EnvVars:  []string{"TELEMETRY_SERVICE_NAME"},
		},
	}
}

// rootFlagKeys maps root flag names to their nested config keys.
var rootFlagKeys = map[string]string{
	"metrics":                "app.metrics",
	"metrics-path":           "app.metrics_path",
	"cors":                   "app.cors",
	"telemetry-exporter":     "telemetry.exporter",
	"telemetry-endpoint":     "telemetry.endpoint",
	"telemetry-service-name": "telemetry.service_name",
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

func parseConfig(ctx *cli.Context) (config.Config, error) {
	return conf.Parse[config.Config](conf.ParseOptions{
		Cli:       ctx,
		CliMap:    rootFlagKeys,
		Defaults:  config.DefaultConfig,
		EnvPrefix: "GATEWAY_",
		FileName:  ctx.Path("config"),
		Log:       zap.NewNop(),
	})
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time

	// Teardown runs after the app exited, before the process does.
	Teardown func()
}

func Execute(params ExecuteParams) {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	code := run(context.Background(), rootApp, os.Args)

	if params.Teardown != nil {
		params.Teardown()
	}

	os.Exit(code)
}

func run(ctx context.Context, app *cli.App, args []string) int {
	err := app.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())

	// exit with the code carried by the error, 1 otherwise
	return shell.ExitCode(err)
}
