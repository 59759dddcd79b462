package build

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/systemstart/distbuild/pkg/api"
)

// RunPlan executes every step sequentially in plan order. workDir is where
// the build commands run and expected artifacts are checked; an empty value
// means the workspace directory. Failed steps are collected rather than
// aborting the loop, so one broken target does not hide the diagnostics of
// the others.
func RunPlan(ws *api.Workspace, steps []Step, workDir string) error {
	if workDir == "" {
		workDir = ws.Dir
	}

	ctx := StepContext{
		WorkDir: workDir,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	var failed []string
	for _, step := range steps {
		slog.Info("running build step", "step", step.Name())
		if err := step.Run(ctx); err != nil {
			slog.Error("build step failed", "step", step.Name(), "error", err)
			failed = append(failed, step.Name())
		} else {
			slog.Info("build step succeeded", "step", step.Name())
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d build step(s) failed: %v", len(failed), failed)
	}
	return nil
}
