package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/XwaeK/2024-assignment-pandas/internal/cli"
	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
	"github.com/XwaeK/2024-assignment-pandas/internal/infrastructure"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		infrastructure.GetLogger().Error("Run failed",
			slog.String("error_type", string(errors.TypeOf(err))),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
