package cli

import (
	"github.com/entigolabs/entigo-flow-agent/common"
	"github.com/urfave/cli/v3"
)

// rootCommand deploys on invocation. The agent has no subcommands.
func rootCommand() *cli.Command {
	return &cli.Command{
		Action: action(common.DeployCommand),
		Flags:  cliFlags(common.DeployCommand),
	}
}
