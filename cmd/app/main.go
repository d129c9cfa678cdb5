package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/application"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := application.Run(ctx)
	if err != nil {
		panic(err)
	}
}
