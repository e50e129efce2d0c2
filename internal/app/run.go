package app

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/vk/ccrun/internal/artifact"
	"github.com/vk/ccrun/internal/config"
	"github.com/vk/ccrun/internal/ctxlog"
	"github.com/vk/ccrun/internal/executor"
)

// Version tokens recognized literally anywhere among the launcher arguments;
// either switches the invocation into compiler-info mode.
const (
	versionToken      = "--version"
	versionTokenShort = "-v"
)

// versionQueryFlag is the single flag passed to the compiler in info mode.
const versionQueryFlag = "--version"

// missingArtifactStatus is returned when the compiler reports success but
// the expected artifact does not exist.
const missingArtifactStatus = 127

// Run drives the invocation to completion and returns its exit status:
// the compiler's in info and compile-only modes, the artifact's otherwise.
// Launcher-owned temporary state is cleaned up on every path once the output
// location has been resolved.
func (a *App) Run(ctx context.Context) int {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if a.cfg.ShowCompilerInfo ||
		slices.Contains(a.launcherArgs, versionToken) ||
		slices.Contains(a.launcherArgs, versionTokenShort) {
		return a.compilerInfo(ctx)
	}

	loc, err := artifact.Resolve(a.cfg.OutputPath, a.cfg.CompileOnly)
	if err != nil {
		fmt.Fprintf(a.errW, "ccrun: %v\n", err)
		return 2
	}
	defer loc.Cleanup(ctx)

	rc := a.runner.Run(ctx, a.cfg.Compiler, buildPlan(a.cfg, loc.Path))
	if rc != 0 || a.cfg.CompileOnly {
		return rc
	}

	if _, err := os.Stat(loc.Path); err != nil {
		fmt.Fprintf(a.errW, "ccrun: expected output file at %s was not created, unable to continue\n", loc.Path)
		return missingArtifactStatus
	}

	return a.runner.Run(ctx, loc.Path, a.runArgs)
}

// compilerInfo queries the compiler's version, always echoing the command,
// and terminates the invocation with the query's exit status.
func (a *App) compilerInfo(ctx context.Context) int {
	info := &executor.Runner{
		Verbose: true,
		EchoW:   a.outW,
		Stdout:  a.outW,
		Stderr:  a.errW,
	}
	return info.Run(ctx, a.cfg.Compiler, []string{versionQueryFlag})
}

// buildPlan assembles the compiler invocation deterministically: the standard
// flag when active, the compiler flags in order, -c in compile-only mode, and
// finally the output flag with the resolved path.
func buildPlan(cfg *config.Config, outputPath string) []string {
	var plan []string
	if cfg.Standard != nil {
		plan = append(plan, *cfg.Standard)
	}
	plan = append(plan, cfg.Flags...)
	if cfg.CompileOnly {
		plan = append(plan, config.TokenCompileOnly)
	}
	return append(plan, config.TokenOutput, outputPath)
}
