package artifact

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempDir(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 64 {
		dir := tempDir()

		assert.True(t, strings.HasPrefix(filepath.Base(dir), TempDirPrefix),
			"generated dir %q must carry the fixed prefix", dir)
		assert.Equal(t, os.TempDir(), filepath.Dir(dir))

		_, dup := seen[dir]
		assert.False(t, dup, "generated dir %q repeated", dir)
		seen[dir] = struct{}{}
	}
}

func TestResolve_ExplicitPath(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	explicit := filepath.Join(base, "nested", "out.bin")

	loc, err := Resolve(explicit, false)
	require.NoError(t, err)

	assert.False(t, loc.Owned())
	assert.True(t, filepath.IsAbs(loc.Path))
	assert.Equal(t, explicit, loc.Path)
	assert.DirExists(t, filepath.Dir(loc.Path), "parent directory must be created recursively")
}

func TestResolve_ExplicitRelativePath(t *testing.T) {
	// Changes the working directory; cannot run in parallel.
	t.Chdir(t.TempDir())

	loc, err := Resolve("out.bin", false)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(loc.Path))
	assert.Equal(t, "out.bin", filepath.Base(loc.Path))
	assert.False(t, loc.Owned())
}

func TestResolve_GeneratedPath(t *testing.T) {
	t.Parallel()

	t.Run("run mode", func(t *testing.T) {
		t.Parallel()

		loc, err := Resolve("", false)
		require.NoError(t, err)
		t.Cleanup(func() { loc.Cleanup(context.Background()) })

		assert.True(t, loc.Owned())
		assert.Equal(t, "artifact.exe", filepath.Base(loc.Path))
		assert.True(t, strings.HasPrefix(filepath.Base(filepath.Dir(loc.Path)), TempDirPrefix))
		assert.DirExists(t, filepath.Dir(loc.Path))
	})

	t.Run("compile-only mode", func(t *testing.T) {
		t.Parallel()

		loc, err := Resolve("", true)
		require.NoError(t, err)
		t.Cleanup(func() { loc.Cleanup(context.Background()) })

		assert.True(t, loc.Owned())
		assert.Equal(t, "artifact.o", filepath.Base(loc.Path))
	})
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	t.Run("owned location removes its parent directory", func(t *testing.T) {
		t.Parallel()

		loc, err := Resolve("", false)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(loc.Path, []byte("payload"), 0o755))

		loc.Cleanup(context.Background())

		assert.NoDirExists(t, filepath.Dir(loc.Path))
	})

	t.Run("explicit location is left untouched", func(t *testing.T) {
		t.Parallel()

		explicit := filepath.Join(t.TempDir(), "out.bin")
		loc, err := Resolve(explicit, false)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(loc.Path, []byte("payload"), 0o755))

		loc.Cleanup(context.Background())

		assert.FileExists(t, loc.Path)
	})

	t.Run("repeated cleanup is harmless", func(t *testing.T) {
		t.Parallel()

		loc, err := Resolve("", false)
		require.NoError(t, err)

		loc.Cleanup(context.Background())
		loc.Cleanup(context.Background())

		assert.NoDirExists(t, filepath.Dir(loc.Path))
	})
}
