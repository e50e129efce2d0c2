package config

// Built-in defaults, overridable by the defaults file, the environment, and
// the command line, in that order of increasing precedence.
var DefaultFlags = []string{"-Wall", "-Wextra", "-pedantic", "-g"}

const (
	DefaultStandard = "-std=c++23"
	DefaultCompiler = "c++"
)

// Config is the normalized result of argument interpretation. It is created
// once per invocation and never mutated afterwards.
type Config struct {
	// ShowCompilerInfo requests compiler version information instead of a build.
	ShowCompilerInfo bool

	// CompileOnly skips linking and execution; only an object file is produced.
	CompileOnly bool

	// Verbose echoes every spawned command and temp-dir removal.
	Verbose bool

	// Compiler is the executable name the build is delegated to.
	Compiler string

	// Standard is the literal standard-selection token (e.g. "-std=c++23").
	// Nil means the standard flag was explicitly disabled and none is emitted.
	Standard *string

	// OutputPath is the user-supplied artifact path. Empty means the launcher
	// owns the artifact and generates a path in a fresh temporary directory.
	OutputPath string

	// Flags are the remaining compiler flags, verbatim and order-preserving.
	// Duplicates are allowed.
	Flags []string
}

// FileDefaults carries the values the optional defaults file may supply. Nil
// fields were not set by the file. A non-nil empty Standard disables the
// standard flag, mirroring the environment variable.
type FileDefaults struct {
	Compiler *string
	Standard *string
	Flags    []string
	Verbose  *bool
}
