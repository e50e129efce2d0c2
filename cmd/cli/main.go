package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/ccrun/internal/app"
	"github.com/vk/ccrun/internal/cli"
)

// main is the entrypoint for the ccrun launcher.
func main() {
	// Use a minimal logger until the per-invocation one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	code, err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:])
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(code)
}

// run encapsulates the launcher pipeline for easier testing: parse, then hand
// the invocation to the orchestrator and report its exit status.
func run(ctx context.Context, outW, errW io.Writer, args []string) (int, error) {
	inv, err := cli.Parse(ctx, args)
	if err != nil {
		return 0, err
	}

	launcher := app.NewApp(outW, errW, inv.Config, inv.LauncherArgs, inv.RunArgs)
	return launcher.Run(ctx), nil
}
