package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/vk/ccrun/internal/argsplit"
	"github.com/vk/ccrun/internal/config"
	"github.com/vk/ccrun/internal/ctxlog"
	"github.com/vk/ccrun/internal/hclconfig"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Invocation bundles the interpreted configuration with the argument
// partition it was built from. RunArgs are forwarded untouched to the
// compiled artifact; LauncherArgs are kept because the orchestrator
// recognizes the version tokens literally among them.
type Invocation struct {
	Config       *config.Config
	LauncherArgs []string
	RunArgs      []string
}

// Parse processes the raw command line into an Invocation. Configuration
// errors (malformed launcher arguments, unreadable defaults file) are
// returned as an ExitError with code 2 before any subprocess is spawned.
func Parse(ctx context.Context, args []string) (*Invocation, error) {
	logger := ctxlog.FromContext(ctx)

	env := config.Capture()

	var fileDefaults *config.FileDefaults
	if path, required := hclconfig.Locate(env.Config); path != "" {
		fd, err := hclconfig.Load(ctx, path, os.Environ())
		switch {
		case err == nil:
			fileDefaults = fd
		case !required && errors.Is(err, fs.ErrNotExist):
			logger.Debug("No defaults file found.", "path", path)
		default:
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	launcherArgs, runArgs := argsplit.Split(args)

	cfg, err := config.Interpret(launcherArgs, env, fileDefaults)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	logger.Debug("Arguments interpreted.", "compiler", cfg.Compiler, "flags", cfg.Flags)

	return &Invocation{
		Config:       cfg,
		LauncherArgs: launcherArgs,
		RunArgs:      runArgs,
	}, nil
}
