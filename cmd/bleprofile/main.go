package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bleprofile/cmd/bleprofile/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
