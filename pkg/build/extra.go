package build

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/systemstart/distbuild/pkg/api"
)

// extraStep runs an artifact-only build and collects its outputs into the
// distribution directory, preserving their relative paths.
type extraStep struct {
	index   int
	cfg     api.ExtraBuildConfig
	distDir string
	context map[string]any
}

func (s *extraStep) Name() string { return fmt.Sprintf("extra-artifacts-%d", s.index+1) }

func (s *extraStep) Run(ctx StepContext) error {
	slog.Info("building extra artifacts", "step", s.Name(), "command", strings.Join(s.cfg.Command, " "))

	result, err := runBuild(ctx, s.cfg.Command, s.context, "", s.distDir)
	if err != nil {
		return err
	}

	echoResult(ctx.Stdout, result)

	for _, pattern := range s.cfg.Artifacts {
		if err := s.collect(ctx.WorkDir, pattern); err != nil {
			return err
		}
	}
	return nil
}

// collect resolves one artifact expectation against the working directory
// and copies every match into the distribution directory. Expectations may
// be glob patterns; a pattern with no matches means the build did not
// produce what it promised.
func (s *extraStep) collect(workDir, pattern string) error {
	matches, err := doublestar.Glob(os.DirFS(workDir), filepath.ToSlash(pattern))
	if err != nil {
		return fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return &MissingArtifactError{Path: pattern}
	}

	for _, rel := range matches {
		src := filepath.Join(workDir, filepath.FromSlash(rel))
		dst := filepath.Join(s.distDir, filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}
