package build

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoBuildCommand is returned by ComputePlan when binaries need a real
// build but the workspace declares no build command.
var ErrNoBuildCommand = errors.New("workspace has no build command configured")

// ExecutionError indicates the build subprocess could not be launched at
// all, as opposed to running and exiting non-zero.
type ExecutionError struct {
	Command []string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to exec build command %q: %v", strings.Join(e.Command, " "), e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// MissingArtifactError indicates an expected output file was absent after
// the build subprocess completed. The subprocess's exit status is not
// trusted as the success signal, so this is where build failures surface.
type MissingArtifactError struct {
	Path string
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("failed to find %s -- did the build above have errors?", e.Path)
}
