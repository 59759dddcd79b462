package build

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/systemstart/distbuild/pkg/buildenv"
)

// ExecutionResult is what running a build command yields: its exit status
// and captured stdout. Stderr is inherited by the child so diagnostics
// stream live while stdout stays available for later inspection.
type ExecutionResult struct {
	ExitCode int
	Stdout   []byte
}

// runCommand launches the build command and blocks until it terminates.
// There is no timeout or cancellation; the surrounding pipeline owns the
// process lifecycle beyond this call. A non-zero exit is not an error here,
// only a launch failure is.
func runCommand(command []string, workDir string, env *buildenv.Environ, stderr io.Writer) (*ExecutionResult, error) {
	cmd := exec.Command(command[0], command[1:]...)
	cmd.Dir = workDir
	cmd.Env = env.Slice()

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	slog.Info("exec", "command", strings.Join(command, " "))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &ExecutionError{Command: command, Err: err}
		}
	}

	return &ExecutionResult{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.Bytes(),
	}, nil
}

// runBuild composes the subprocess environment from its layered sources,
// renders the command, and executes it. target is empty for extra-artifact
// builds.
func runBuild(ctx StepContext, command []string, context map[string]any, target, distDir string) (*ExecutionResult, error) {
	harvested, err := buildenv.Harvest(ctx.WorkDir)
	if err != nil {
		return nil, err
	}

	env := composeEnv(target, harvested)

	rendered, err := renderCommand(command, templateData(context, target, distDir, env))
	if err != nil {
		return nil, err
	}

	return runCommand(rendered, ctx.WorkDir, env, ctx.Stderr)
}

// echoResult reports a non-zero exit and echoes the captured build output.
// This happens before artifact reconciliation so the build tool's own
// report is visible even when the step then fails.
func echoResult(w io.Writer, result *ExecutionResult) {
	if result.ExitCode != 0 {
		slog.Warn("build exited non-zero, checking artifacts anyway", "exitCode", result.ExitCode)
	}
	if len(result.Stdout) > 0 {
		fmt.Fprintln(w, "build stdout:")
		_, _ = w.Write(result.Stdout)
		if !bytes.HasSuffix(result.Stdout, []byte("\n")) {
			fmt.Fprintln(w)
		}
	}
}
