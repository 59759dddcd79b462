package build

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/systemstart/distbuild/pkg/api"
)

type fakeStep struct {
	name    string
	err     error
	ran     bool
	workDir string
}

func (s *fakeStep) Name() string { return s.name }

func (s *fakeStep) Run(ctx StepContext) error {
	s.ran = true
	s.workDir = ctx.WorkDir
	return s.err
}

func TestRunPlanAllSucceed(t *testing.T) {
	ws := &api.Workspace{Dir: t.TempDir()}
	steps := []Step{&fakeStep{name: "a"}, &fakeStep{name: "b"}}

	if err := RunPlan(ws, steps, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, step := range steps {
		if !step.(*fakeStep).ran {
			t.Errorf("step %s did not run", step.Name())
		}
	}
}

func TestRunPlanDefaultsToWorkspaceDir(t *testing.T) {
	ws := &api.Workspace{Dir: t.TempDir()}
	step := &fakeStep{name: "a"}

	if err := RunPlan(ws, []Step{step}, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.workDir != ws.Dir {
		t.Errorf("WorkDir = %q, want workspace dir %q", step.workDir, ws.Dir)
	}
}

func TestRunPlanWorkingDirectoryOverride(t *testing.T) {
	skipWithoutSh(t)

	ws := &api.Workspace{Dir: t.TempDir(), BuildCommand: []string{"sh", "-c", "touch app"}}
	workDir := t.TempDir()

	steps := []Step{&genericStep{
		target:  "x86_64-unknown-linux-gnu",
		command: ws.BuildCommand,
		binaries: []api.Binary{
			{Name: "app", Target: "x86_64-unknown-linux-gnu", FileName: "app", CopyExeTo: []string{"dist/app"}},
		},
	}}

	if err := RunPlan(ws, steps, workDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The artifact and its copy resolve against the override, not the
	// workspace directory.
	if _, err := os.Stat(filepath.Join(workDir, "dist", "app")); err != nil {
		t.Errorf("artifact not copied under working directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ws.Dir, "app")); err == nil {
		t.Error("build ran in the workspace directory despite the override")
	}
}

func TestRunPlanContinuesPastFailures(t *testing.T) {
	ws := &api.Workspace{Dir: t.TempDir()}
	steps := []Step{
		&fakeStep{name: "a", err: errors.New("boom")},
		&fakeStep{name: "b"},
	}

	err := RunPlan(ws, steps, "")
	if err == nil {
		t.Fatal("expected aggregate error")
	}
	if !strings.Contains(err.Error(), "1 build step(s) failed") {
		t.Errorf("error = %q", err)
	}
	if !steps[1].(*fakeStep).ran {
		t.Error("later step skipped after earlier failure")
	}
}
