package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.minekube.com/collections/pkg/cmd/chunkcli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := chunkcli.App().RunContext(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
