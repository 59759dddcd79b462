package build

import (
	"bytes"
	"fmt"
	"maps"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/systemstart/distbuild/pkg/buildenv"
	"github.com/systemstart/distbuild/pkg/toolchain"
)

// templateData assembles the variables available to build-command
// templates: the workspace context map with the step's built-ins merged on
// top. Built-ins win on collision.
func templateData(context map[string]any, target, distDir string, env *buildenv.Environ) map[string]any {
	cc, _ := env.Lookup("CC")
	cxx, _ := env.Lookup("CXX")

	family := ""
	if target != "" {
		family = toolchain.Classify(target).String()
	}

	builtins := map[string]any{
		"Target":  target,
		"Family":  family,
		"CC":      cc,
		"CXX":     cxx,
		"DistDir": distDir,
	}

	merged := make(map[string]any, len(context)+len(builtins))
	maps.Copy(merged, context)
	maps.Copy(merged, builtins)
	return merged
}

// renderCommand expands template expressions in each command entry. A
// command without expressions renders to itself.
func renderCommand(command []string, data map[string]any) ([]string, error) {
	rendered := make([]string, len(command))
	for i, arg := range command {
		tmpl, err := template.New("arg").Funcs(sprig.FuncMap()).Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("parsing command entry %q: %w", arg, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("rendering command entry %q: %w", arg, err)
		}
		rendered[i] = buf.String()
	}
	return rendered, nil
}
