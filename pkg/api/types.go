package api

const (
	// WorkspaceFilename is the configuration file distbuild looks for.
	WorkspaceFilename = "dist.yaml"

	// DefaultDistDir is used when the workspace does not set distDir,
	// relative to the workspace directory.
	DefaultDistDir = "dist"
)

// Workspace is the dist.yaml configuration format.
type Workspace struct {
	// BuildCommand is the workspace-wide command that produces every
	// binary. Entries may contain template expressions; see the build
	// package.
	BuildCommand []string `yaml:"buildCommand"`

	// DistDir is where extra-build artifacts are collected. Relative
	// paths are resolved against the workspace directory.
	DistDir string `yaml:"distDir"`

	// Context supplies additional variables to build-command templates.
	Context map[string]any `yaml:"context"`

	Binaries    []Binary           `yaml:"binaries"`
	ExtraBuilds []ExtraBuildConfig `yaml:"extraBuilds"`

	// Set by the loader, not from YAML.
	Dir      string `yaml:"-"`
	FilePath string `yaml:"-"`
}

// Binary describes one buildable artifact the workspace produces.
type Binary struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`

	// FileName is where the build leaves the binary, relative to the
	// working directory.
	FileName string `yaml:"fileName"`

	// CopyExeTo lists destinations the built executable is copied to.
	CopyExeTo []string `yaml:"copyExeTo"`

	// CopySymbolsTo lists destinations for debug symbols. Symbol
	// relocation is handled by a later pipeline stage; the field still
	// marks the binary as needing a real build.
	CopySymbolsTo []string `yaml:"copySymbolsTo"`
}

// NeedsBuild reports whether the binary must be physically relocated after a
// build. Binaries with no copy destinations are handled elsewhere.
func (b Binary) NeedsBuild() bool {
	return len(b.CopyExeTo) > 0 || len(b.CopySymbolsTo) > 0
}

// ExtraBuildConfig describes an artifact-only build not tied to identified
// binaries.
type ExtraBuildConfig struct {
	Command []string `yaml:"command"`

	// Artifacts are paths the build is expected to leave in the working
	// directory. Entries may be glob patterns.
	Artifacts []string `yaml:"artifacts"`
}
