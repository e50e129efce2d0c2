package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/ccrun/internal/config"
)

// isolateEnv unsets every recognized launcher variable and points the user
// config dir at an empty temp dir, so ambient configuration cannot leak into
// a test. Restoration is handled by t.Setenv/t.Cleanup.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvFlags, config.EnvVerbose, config.EnvStandard,
		config.EnvCompiler, config.EnvConfig,
	} {
		if v, ok := os.LookupEnv(name); ok {
			t.Setenv(name, v) // register restoration
			require.NoError(t, os.Unsetenv(name))
		}
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestParse(t *testing.T) {
	isolateEnv(t)

	inv, err := Parse(context.Background(), []string{"-c", "-foo", "--", "run1", "run2"})
	require.NoError(t, err)

	assert.True(t, inv.Config.CompileOnly)
	assert.Equal(t, append(append([]string{}, config.DefaultFlags...), "-foo"), inv.Config.Flags)
	assert.Equal(t, []string{"-c", "-foo"}, inv.LauncherArgs)
	assert.Equal(t, []string{"run1", "run2"}, inv.RunArgs)
}

func TestParse_ConfigurationError(t *testing.T) {
	isolateEnv(t)

	inv, err := Parse(context.Background(), []string{"-o"})

	require.Error(t, err)
	assert.Nil(t, inv)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "-o requires an argument")
}

func TestParse_EnvironmentSnapshot(t *testing.T) {
	isolateEnv(t)
	t.Setenv(config.EnvCompiler, "clang++")
	t.Setenv(config.EnvVerbose, "1")

	inv, err := Parse(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "clang++", inv.Config.Compiler)
	assert.True(t, inv.Config.Verbose)
}

func TestParse_DefaultsFile(t *testing.T) {
	t.Run("explicit file is applied below the environment", func(t *testing.T) {
		isolateEnv(t)

		path := filepath.Join(t.TempDir(), "ccrun.hcl")
		require.NoError(t, os.WriteFile(path, []byte(`
compiler = "g++-14"
flags    = ["-O2"]
`), 0600))
		t.Setenv(config.EnvConfig, path)
		t.Setenv(config.EnvCompiler, "clang++")

		inv, err := Parse(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, "clang++", inv.Config.Compiler, "environment wins over the file")
		assert.Equal(t, []string{"-O2"}, inv.Config.Flags, "file flags replace the built-in base")
	})

	t.Run("explicit file must exist", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "missing.hcl"))

		_, err := Parse(context.Background(), nil)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("conventional location is optional", func(t *testing.T) {
		isolateEnv(t)

		inv, err := Parse(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultCompiler, inv.Config.Compiler)
	})

	t.Run("conventional location is picked up when present", func(t *testing.T) {
		isolateEnv(t)

		confDir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "ccrun")
		require.NoError(t, os.MkdirAll(confDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(confDir, "ccrun.hcl"),
			[]byte(`standard = "-std=c++20"`), 0600))

		inv, err := Parse(context.Background(), nil)
		require.NoError(t, err)
		require.NotNil(t, inv.Config.Standard)
		assert.Equal(t, "-std=c++20", *inv.Config.Standard)
	})
}
