package config

import "os"

// Environment variable names recognized by the launcher.
const (
	EnvFlags    = "CCRUN_CXXFLAGS"
	EnvVerbose  = "CCRUN_VERBOSE"
	EnvStandard = "CCRUN_CXX_STANDARD"
	EnvCompiler = "CCRUN_CXX"
	EnvConfig   = "CCRUN_CONFIG"
)

// Environment is an explicit snapshot of the recognized environment
// variables. A nil field means the variable was unset; presence and value are
// distinguished because several variables change behavior when set to the
// empty string.
type Environment struct {
	Flags    *string
	Verbose  *string
	Standard *string
	Compiler *string
	Config   *string
}

// Capture reads the recognized environment variables once. Everything after
// this point operates on the snapshot.
func Capture() Environment {
	return Environment{
		Flags:    lookup(EnvFlags),
		Verbose:  lookup(EnvVerbose),
		Standard: lookup(EnvStandard),
		Compiler: lookup(EnvCompiler),
		Config:   lookup(EnvConfig),
	}
}

func lookup(name string) *string {
	if v, ok := os.LookupEnv(name); ok {
		return &v
	}
	return nil
}
