package build

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/systemstart/distbuild/pkg/api"
)

// genericStep builds every binary of one target triple with the
// workspace-wide build command, then verifies and relocates the results.
type genericStep struct {
	target   string
	binaries []api.Binary
	command  []string
	context  map[string]any
	distDir  string
}

func (s *genericStep) Name() string { return s.target }

func (s *genericStep) Run(ctx StepContext) error {
	slog.Info("building generic target", "target", s.target, "command", strings.Join(s.command, " "))

	result, err := runBuild(ctx, s.command, s.context, s.target, s.distDir)
	if err != nil {
		return err
	}

	echoResult(ctx.Stdout, result)

	for _, binary := range s.binaries {
		if err := reconcileBinary(ctx.WorkDir, binary); err != nil {
			return err
		}
	}
	return nil
}

// reconcileBinary is the success gate for a built binary: the expected file
// must exist, and every declared executable copy must succeed. Symbol
// destinations are not copied here; a later pipeline stage owns those.
func reconcileBinary(workDir string, binary api.Binary) error {
	src := filepath.Join(workDir, binary.FileName)

	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return &MissingArtifactError{Path: binary.FileName}
		}
		return fmt.Errorf("checking %s: %w", binary.FileName, err)
	}

	for _, dest := range binary.CopyExeTo {
		dst := dest
		if !filepath.IsAbs(dst) {
			dst = filepath.Join(workDir, dst)
		}
		if err := copyFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}
