package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/mealtrack/gateway/app"
	"github.com/mealtrack/gateway/app/standalone"
	"github.com/mealtrack/gateway/internal/server"
	"github.com/mealtrack/gateway/util/logging"
)

var (
	serveCmdDescription = `The serve command starts a http server and serves the
application until it receives a termination signal. Use it
for local development and for container platforms.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and serve the application.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Value:    "localhost",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    8080,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT", "PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
			&cli.DurationFlag{
				Name:     "read-header-timeout",
				Usage:    "The maximum duration for reading request headers.",
				Category: "http",
				EnvVars:  []string{"HTTP_READ_HEADER_TIMEOUT"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg := standalone.Config{
		HttpConfig: server.HttpConfig{
			Host:              ctx.String("host"),
			Port:              ctx.Int("port"),
			H2c:               ctx.Bool("h2c"),
			ReadHeaderTimeout: ctx.Duration("read-header-timeout"),
		},
	}

	log.Info("starting http server")

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
