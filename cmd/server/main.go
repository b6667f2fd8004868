package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"farmapi/cmd/server/commands"
)

// Set via ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, Version); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
