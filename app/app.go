package app

import (
	"github.com/urfave/cli/v2"

	"github.com/mealtrack/gateway/config"
	"github.com/mealtrack/gateway/internal/shell"
	"github.com/mealtrack/gateway/util/conf"
	"github.com/mealtrack/gateway/util/logging"
)

// New creates the shell for the current cli invocation. The shell
// carries the modules every entry point shares.
func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	cfg, err := conf.ConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	return shell.New(log, SharedModule(cfg)), nil
}
