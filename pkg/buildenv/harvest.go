package buildenv

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// SkipSentinel disables Brewfile environment harvesting entirely when set in
// the ambient environment, regardless of its value.
const SkipSentinel = "DISTBUILD_SKIP_BREWFILE"

const brewfileName = "Brewfile"

// ParseError indicates the external environment lookup produced output that
// could not be parsed as key=value lines.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing harvested environment: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// forwardedVars is the allow-list of harvested variables passed through to
// the build subprocess. Anything else in the harvested environment is
// dropped.
var forwardedVars = []string{
	"PATH",
	"CPATH",
	"LIBRARY_PATH",
	"LD_LIBRARY_PATH",
	"PKG_CONFIG_PATH",
	"PKG_CONFIG_LIBDIR",
	"HOMEBREW_PREFIX",
	"HOMEBREW_CELLAR",
	"HOMEBREW_REPOSITORY",
}

// Harvest queries the Brewfile-managed environment for workDir by running
// `brew bundle exec -- /usr/bin/env` and parsing its output.
//
// A nil map with a nil error means there is nothing to harvest: the sentinel
// is set, no Brewfile exists, brew is not installed, or the lookup itself
// failed. Only malformed output from a successful lookup is an error.
func Harvest(workDir string) (map[string]string, error) {
	if _, skip := os.LookupEnv(SkipSentinel); skip {
		slog.Debug("brew environment harvesting disabled", "sentinel", SkipSentinel)
		return nil, nil
	}

	if _, err := os.Stat(filepath.Join(workDir, brewfileName)); err != nil {
		return nil, nil
	}

	brew, err := exec.LookPath("brew")
	if err != nil {
		slog.Debug("Brewfile present but brew not in PATH")
		return nil, nil
	}

	cmd := exec.Command(brew, "bundle", "exec", "--", "/usr/bin/env")
	cmd.Dir = workDir

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		slog.Warn("brew environment lookup failed, continuing without it", "error", err)
		return nil, nil
	}

	return Parse(stdout.String())
}

// Parse converts raw key=value environment output into a map.
func Parse(output string) (map[string]string, error) {
	env, err := godotenv.Unmarshal(output)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return env, nil
}

// Select filters a harvested environment down to the allow-listed subset.
func Select(env map[string]string) map[string]string {
	selected := make(map[string]string)
	for _, key := range forwardedVars {
		if value, ok := env[key]; ok {
			selected[key] = value
		}
	}
	return selected
}

// CFlags derives compiler include flags from the harvested CPATH entries.
func CFlags(env map[string]string) string {
	return pathFlags(env["CPATH"], "-I")
}

// LDFlags derives linker search flags from the harvested LIBRARY_PATH
// entries.
func LDFlags(env map[string]string) string {
	return pathFlags(env["LIBRARY_PATH"], "-L")
}

func pathFlags(pathList, prefix string) string {
	var flags []string
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			continue
		}
		flags = append(flags, prefix+dir)
	}
	return strings.Join(flags, " ")
}
