package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/entigolabs/entigo-flow-agent/cli"
	"github.com/entigolabs/entigo-flow-agent/common"
)

func main() {
	time.Local = time.UTC
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	terminated := make(chan os.Signal, 1)
	signal.Notify(terminated, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		cli.Run(ctx)
		close(terminated)
	}()

	sig := <-terminated
	if sig != nil {
		cancel()
		common.PrintWarning("agent was terminated, exiting")
	}
}
