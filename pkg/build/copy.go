package build

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// copyFile copies src to dst, creating parent directories and preserving
// the source file mode so executables stay executable.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}

	if err := os.WriteFile(dst, data, info.Mode()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	slog.Debug("copied artifact", "src", src, "dst", dst)
	return nil
}
