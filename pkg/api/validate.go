package api

import "fmt"

// Validate checks the workspace configuration for errors.
func (w *Workspace) Validate() error {
	names := make(map[string]int)

	for i, binary := range w.Binaries {
		if binary.Name == "" {
			return fmt.Errorf("binary %d: name is required", i)
		}
		if prev, exists := names[binary.Name]; exists {
			return fmt.Errorf("binary %d: duplicate name %q (first defined at binary %d)", i, binary.Name, prev)
		}
		names[binary.Name] = i

		if binary.Target == "" {
			return fmt.Errorf("binary %q: target is required", binary.Name)
		}
		if binary.FileName == "" {
			return fmt.Errorf("binary %q: fileName is required", binary.Name)
		}
	}

	for i, extra := range w.ExtraBuilds {
		if len(extra.Command) == 0 {
			return fmt.Errorf("extra build %d: command is required", i)
		}
		if len(extra.Artifacts) == 0 {
			return fmt.Errorf("extra build %d: at least one artifact is required", i)
		}
	}

	return nil
}
