package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/mealtrack/gateway/app"
	"github.com/mealtrack/gateway/app/lambda"
	"github.com/mealtrack/gateway/util/conf"
	"github.com/mealtrack/gateway/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the application as an AWS Lambda
runtime interface client. Every invocation event is translated
into a http request for the application, and the application's
response is translated back into the invocation result.

The command starts the AWS runtime interface client and blocks
indefinitely, processing incoming AWS Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    "API_GW_V2",
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Cli:       ctx,
		Defaults:  lambda.DefaultConfig,
		EnvPrefix: "GATEWAY_",
		Log:       log,
	})
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
