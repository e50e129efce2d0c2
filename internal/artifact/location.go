package artifact

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/vk/ccrun/internal/ctxlog"
)

// TempDirPrefix starts every generated temporary directory name. The rest of
// the name is a random numeric component plus the launcher's pid, which makes
// collisions across concurrent invocations improbable without any locking.
const TempDirPrefix = "ccrun-"

// Artifact filenames inside a generated temporary directory.
const (
	executableName = "artifact.exe"
	objectName     = "artifact.o"
)

// Location is a resolved output artifact path. Owned locations sit inside a
// launcher-created temporary directory and are removed by Cleanup; explicit
// user paths are never touched.
type Location struct {
	Path  string
	owned bool
}

// Owned reports whether the launcher generated the path and is responsible
// for removing its parent directory.
func (l *Location) Owned() bool { return l.owned }

// Resolve turns an optional explicit output path into a concrete Location.
// An empty explicit path yields a generated location under a fresh temporary
// directory, named artifact.o in compile-only mode and artifact.exe
// otherwise. The parent directory is created recursively in either case.
func Resolve(explicit string, compileOnly bool) (*Location, error) {
	loc := &Location{}
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return nil, fmt.Errorf("resolving output path: %w", err)
		}
		loc.Path = abs
	} else {
		name := executableName
		if compileOnly {
			name = objectName
		}
		loc.Path = filepath.Join(tempDir(), name)
		loc.owned = true
	}

	if err := os.MkdirAll(filepath.Dir(loc.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return loc, nil
}

// Cleanup removes the parent temporary directory of an owned location.
// Errors are deliberately swallowed: cleanup must never mask or alter the
// invocation's result code.
func (l *Location) Cleanup(ctx context.Context) {
	if !l.owned {
		return
	}
	logger := ctxlog.FromContext(ctx)
	dir := filepath.Dir(l.Path)
	logger.Debug("Removing temporary directory.", "path", dir)
	if err := os.RemoveAll(dir); err != nil {
		logger.Debug("Temporary directory removal failed.", "path", dir, "error", err)
	}
}

// tempDir generates a fresh candidate directory path under the system temp
// directory. Uniqueness is probabilistic, not guaranteed.
func tempDir() string {
	name := fmt.Sprintf("%s%d-%d", TempDirPrefix, rand.Uint32(), os.Getpid())
	return filepath.Join(os.TempDir(), name)
}
