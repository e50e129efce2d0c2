package hclconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/vk/ccrun/internal/config"
	"github.com/vk/ccrun/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// FileName is the defaults file looked up under the user config directory
// when no explicit path is given.
const FileName = "ccrun.hcl"

// fileSchema is the HCL-facing shape of the defaults file. Pointer fields
// distinguish "not set" from "set to the zero value".
type fileSchema struct {
	Compiler *string  `hcl:"compiler,optional"`
	Standard *string  `hcl:"standard,optional"`
	Flags    []string `hcl:"flags,optional"`
	Verbose  *bool    `hcl:"verbose,optional"`
}

// Locate resolves the defaults-file path. An explicit path (from the
// environment snapshot) is required to exist; the conventional location under
// the user config dir is not. An empty path means there is no file to try.
func Locate(explicit *string) (path string, required bool) {
	if explicit != nil {
		return *explicit, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "ccrun", FileName), false
}

// Load reads and decodes the defaults file at path. The provided environ
// (os.Environ form) is exposed to the file's expressions as the `env` map.
// A read failure is returned as-is so the caller can distinguish a missing
// optional file; a decode failure is wrapped with the path.
func Load(ctx context.Context, path string, environ []string) (*config.FileDefaults, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var schema fileSchema
	if err := hclsimple.Decode(path, src, evalContext(environ), &schema); err != nil {
		return nil, fmt.Errorf("defaults file %s: %w", path, err)
	}

	logger.Debug("Defaults file loaded.", "path", path)
	return &config.FileDefaults{
		Compiler: schema.Compiler,
		Standard: schema.Standard,
		Flags:    schema.Flags,
		Verbose:  schema.Verbose,
	}, nil
}

// evalContext exposes the process environment to the file's expressions.
func evalContext(environ []string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vals[k] = cty.StringVal(v)
	}

	env := cty.MapValEmpty(cty.String)
	if len(vals) > 0 {
		env = cty.MapVal(vals)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
