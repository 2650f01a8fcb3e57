package main

import (
	"context"
	"log/slog"

	"github.com/3lvia/ice-problems/config"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	svc, err := NewProblemsService(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create problems service", "error", err)
		panic(err)
	}

	if err := svc.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to run problems service", "error", err)
		panic(err)
	}

	if err := svc.Stop(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to stop problems service", "error", err)
		panic(err)
	}
}
