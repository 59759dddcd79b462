package api

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindWorkspaceFile walks from startDir towards the filesystem root looking
// for a dist.yaml, so distbuild can be invoked from anywhere inside a
// workspace.
func FindWorkspaceFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, WorkspaceFilename)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or any parent directory", WorkspaceFilename, startDir)
		}
		dir = parent
	}
}
