package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MichalMitros/price-tracker/cmd/tracker/commands"
)

func main() {
	// handle graceful shutdown and context cancellation
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	commands.ExecuteContext(ctx)
}
