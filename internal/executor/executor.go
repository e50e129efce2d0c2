package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/vk/ccrun/internal/ctxlog"
	"github.com/vk/ccrun/internal/shellquote"
)

// Exit-status mapping for subprocess terminations.
const (
	// LaunchFailure is returned when the child could not be spawned at all.
	LaunchFailure = 127
	// signalBase is added to the signal number for signaled children.
	signalBase = 128
)

// Runner spawns subprocesses synchronously. The zero value inherits the
// launcher's own standard streams and echoes nothing; tests substitute
// buffers.
type Runner struct {
	// Verbose echoes ">>> program args" before each spawn.
	Verbose bool

	// EchoW receives the verbose echo. Defaults to os.Stdout.
	EchoW io.Writer

	// Stdin, Stdout and Stderr are handed to the child. They default to the
	// launcher's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes prog with args and blocks until it terminates. A normal exit
// yields the child's exit code, termination by signal yields 128 plus the
// signal number, and a spawn failure is diagnosed on the error stream and
// yields 127. At most one subprocess is in flight at a time; there is no
// timeout and no retry.
func (r *Runner) Run(ctx context.Context, prog string, args []string) int {
	logger := ctxlog.FromContext(ctx)

	if r.Verbose {
		fmt.Fprintf(r.echoW(), ">>> %s %s\n", prog, shellquote.Join(args))
	}
	logger.Debug("Spawning subprocess.", "program", prog, "args", args)

	cmd := exec.CommandContext(ctx, prog, args...)
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	err := cmd.Run()
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			status := signalBase + int(ws.Signal())
			logger.Debug("Subprocess terminated by signal.", "program", prog, "status", status)
			return status
		}
		return exitErr.ExitCode()
	}

	fmt.Fprintf(r.stderr(), "ccrun: %s: %v\n", prog, err)
	return LaunchFailure
}

func (r *Runner) echoW() io.Writer {
	if r.EchoW != nil {
		return r.EchoW
	}
	return os.Stdout
}

func (r *Runner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
