package cli

import (
	"context"
	"errors"
	"log"

	"github.com/entigolabs/entigo-flow-agent/commands/deploy"
	"github.com/entigolabs/entigo-flow-agent/common"
	"github.com/urfave/cli/v3"
)

func action(cmd common.Command) cli.ActionFunc {
	return func(ctx context.Context, _ *cli.Command) error {
		if err := flags.Setup(cmd); err != nil {
			log.Fatal(&common.PrefixedError{Reason: err})
		}
		common.ChooseLogger(flags.LoggingLevel)
		run(ctx, cmd)
		return nil
	}
}

func run(ctx context.Context, cmd common.Command) {
	switch cmd {
	case common.DeployCommand:
		deploy.Deploy(ctx, flags)
	default:
		log.Fatal(&common.PrefixedError{Reason: errors.New("unsupported command")})
	}
}
