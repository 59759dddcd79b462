package api

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWorkspace reads a dist.yaml file, sets Dir/FilePath, resolves the
// distribution directory, and validates the result.
func LoadWorkspace(filename string) (*Workspace, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading workspace file: %w", err)
	}

	var ws Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parsing workspace file: %w", err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}
	ws.FilePath = absPath
	ws.Dir = filepath.Dir(absPath)

	if ws.DistDir == "" {
		ws.DistDir = DefaultDistDir
	}
	if !filepath.IsAbs(ws.DistDir) {
		ws.DistDir = filepath.Join(ws.Dir, ws.DistDir)
	}

	if err := ws.Validate(); err != nil {
		return nil, fmt.Errorf("validating workspace %s: %w", filename, err)
	}

	return &ws, nil
}

// OverrideDistDir replaces the distribution directory, resolving a relative
// path against the workspace directory the same way the yaml distDir field
// is resolved.
func (w *Workspace) OverrideDistDir(dir string) {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(w.Dir, dir)
	}
	w.DistDir = dir
}
