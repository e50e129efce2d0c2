package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Launcher tokens recognized during the argument scan.
const (
	TokenCompilerInfo = "--ccrun-compiler-info"
	TokenCompileOnly  = "-c"
	TokenOutput       = "-o"
	StandardPrefix    = "-std="
)

// Interpret walks the launcher-argument list and produces the normalized
// Config. Precedence per value is built-in < file < env < command line; for
// the standard flag the last setting wins and an explicitly empty value
// disables it. All unrecognized tokens are appended verbatim, in order, to
// the compiler-flag list after the base flags.
//
// The only failure mode is a missing value after the output-path token; it
// aborts interpretation before any subprocess is spawned.
func Interpret(launcherArgs []string, env Environment, file *FileDefaults) (*Config, error) {
	cfg := &Config{
		Compiler: DefaultCompiler,
		Standard: ptr(DefaultStandard),
	}

	if file != nil && file.Flags != nil {
		cfg.Flags = slices.Clone(file.Flags)
	} else {
		cfg.Flags = slices.Clone(DefaultFlags)
	}
	// Set-but-empty wipes the base list entirely.
	if env.Flags != nil {
		cfg.Flags = strings.Fields(*env.Flags)
	}

	if file != nil && file.Verbose != nil {
		cfg.Verbose = *file.Verbose
	}
	if env.Verbose != nil {
		// Only a value that parses as a nonzero integer enables verbose.
		n, err := strconv.Atoi(strings.TrimSpace(*env.Verbose))
		cfg.Verbose = err == nil && n != 0
	}

	if file != nil && file.Standard != nil {
		cfg.Standard = normalizeStandard(*file.Standard)
	}
	if env.Standard != nil {
		cfg.Standard = normalizeStandard(*env.Standard)
	}

	if file != nil && file.Compiler != nil {
		cfg.Compiler = *file.Compiler
	}
	if env.Compiler != nil {
		cfg.Compiler = *env.Compiler
	}

	for i := 0; i < len(launcherArgs); i++ {
		switch a := launcherArgs[i]; {
		case a == TokenCompilerInfo:
			cfg.ShowCompilerInfo = true
		case a == TokenCompileOnly:
			cfg.CompileOnly = true
		case a == TokenOutput:
			if i+1 >= len(launcherArgs) {
				return nil, fmt.Errorf("%s requires an argument", TokenOutput)
			}
			i++
			cfg.OutputPath = launcherArgs[i]
		case strings.HasPrefix(a, StandardPrefix):
			// Prefix match on purpose: the token is captured literally,
			// without validating what follows the prefix.
			cfg.Standard = ptr(a)
		default:
			cfg.Flags = append(cfg.Flags, a)
		}
	}

	return cfg, nil
}

// normalizeStandard maps the empty string to "standard flag disabled".
func normalizeStandard(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func ptr(s string) *string { return &s }
