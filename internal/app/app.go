package app

import (
	"io"
	"log/slog"

	"github.com/vk/ccrun/internal/config"
	"github.com/vk/ccrun/internal/executor"
)

// App encapsulates one launcher invocation: the interpreted configuration,
// both argument partitions, the subprocess runner, and an isolated logger.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	cfg    *config.Config

	launcherArgs []string
	runArgs      []string

	runner *executor.Runner
}

// NewApp is the constructor for the orchestrator. outW and errW stand in for
// the launcher's standard streams; children inherit them, the verbose command
// echo goes to outW, and diagnostics go to errW.
func NewApp(outW, errW io.Writer, cfg *config.Config, launcherArgs, runArgs []string) *App {
	logger := newLogger(cfg.Verbose, errW)
	logger.Debug("Logger configured.", "verbose", cfg.Verbose)

	return &App{
		outW:         outW,
		errW:         errW,
		logger:       logger,
		cfg:          cfg,
		launcherArgs: launcherArgs,
		runArgs:      runArgs,
		runner: &executor.Runner{
			Verbose: cfg.Verbose,
			EchoW:   outW,
			Stdout:  outW,
			Stderr:  errW,
		},
	}
}
