package cli

import (
	"context"
	"log"
	"os"

	"github.com/entigolabs/entigo-flow-agent/common"
	"github.com/urfave/cli/v3"
)

var flags = new(common.Flags)

func Run(ctx context.Context) {
	app := rootCommand()
	addAppInfo(app)
	err := app.Run(ctx, os.Args)
	if err != nil {
		log.Fatal(&common.PrefixedError{Reason: err})
	}
}

func addAppInfo(app *cli.Command) {
	app.Name = "fd-agent"
	app.Usage = "bedrock flow deploy and test agent"
	app.Version = common.GetVersion().Version
}
