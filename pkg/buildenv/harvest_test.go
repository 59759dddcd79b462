package buildenv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	env, err := Parse("CPATH=/opt/include\nLIBRARY_PATH=/opt/lib\nHOMEBREW_PREFIX=/opt/homebrew\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if env["CPATH"] != "/opt/include" {
		t.Errorf("CPATH = %q, want %q", env["CPATH"], "/opt/include")
	}
	if env["HOMEBREW_PREFIX"] != "/opt/homebrew" {
		t.Errorf("HOMEBREW_PREFIX = %q, want %q", env["HOMEBREW_PREFIX"], "/opt/homebrew")
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("this is not an environment dump\n")
	if err == nil {
		t.Fatal("expected error for malformed input")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *ParseError, got %T", err)
	}
}

func TestSelectDropsUnknownVariables(t *testing.T) {
	env := map[string]string{
		"PATH":            "/opt/homebrew/bin:/usr/bin",
		"HOMEBREW_PREFIX": "/opt/homebrew",
		"SHELL":           "/bin/zsh",
		"SECRET_TOKEN":    "hunter2",
	}

	selected := Select(env)

	if selected["PATH"] != env["PATH"] {
		t.Errorf("PATH = %q, want %q", selected["PATH"], env["PATH"])
	}
	if selected["HOMEBREW_PREFIX"] != env["HOMEBREW_PREFIX"] {
		t.Errorf("HOMEBREW_PREFIX = %q, want %q", selected["HOMEBREW_PREFIX"], env["HOMEBREW_PREFIX"])
	}
	if _, ok := selected["SHELL"]; ok {
		t.Error("SHELL should not be forwarded")
	}
	if _, ok := selected["SECRET_TOKEN"]; ok {
		t.Error("SECRET_TOKEN should not be forwarded")
	}
}

func TestFlagDerivation(t *testing.T) {
	env := map[string]string{
		"CPATH":        "/opt/include" + string(os.PathListSeparator) + "/usr/local/include",
		"LIBRARY_PATH": "/opt/lib",
	}

	if got, want := CFlags(env), "-I/opt/include -I/usr/local/include"; got != want {
		t.Errorf("CFlags = %q, want %q", got, want)
	}
	if got, want := LDFlags(env), "-L/opt/lib"; got != want {
		t.Errorf("LDFlags = %q, want %q", got, want)
	}
}

func TestFlagDerivationEmpty(t *testing.T) {
	if got := CFlags(map[string]string{}); got != "" {
		t.Errorf("CFlags of empty env = %q, want empty", got)
	}
	if got := LDFlags(map[string]string{"LIBRARY_PATH": ""}); got != "" {
		t.Errorf("LDFlags of empty LIBRARY_PATH = %q, want empty", got)
	}
}

func TestHarvestSentinelDisables(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, brewfileName), []byte("brew \"zlib\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(SkipSentinel, "1")

	env, err := Harvest(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env != nil {
		t.Errorf("expected no harvested environment, got %v", env)
	}
}

func TestHarvestWithoutBrewfile(t *testing.T) {
	env, err := Harvest(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env != nil {
		t.Errorf("expected no harvested environment, got %v", env)
	}
}
