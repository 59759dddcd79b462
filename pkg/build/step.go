package build

import "io"

// StepContext provides the runtime context for a build step.
type StepContext struct {
	// WorkDir is the directory the build command runs in; expected
	// artifact paths are resolved against it.
	WorkDir string

	// Stdout receives the echoed build output after the subprocess
	// completes. Stderr is handed to the subprocess directly so its
	// diagnostics stream live.
	Stdout io.Writer
	Stderr io.Writer
}

// Step is one unit of "run the build command, then verify and relocate its
// outputs".
type Step interface {
	Name() string
	Run(ctx StepContext) error
}
