package build

import (
	"slices"

	"github.com/systemstart/distbuild/pkg/api"
)

// ComputePlan produces the ordered build steps for a workspace: one generic
// step per target triple that has binaries needing relocation, sorted by
// triple so repeated planning over the same workspace yields the same order,
// followed by the extra-artifact builds in declaration order.
func ComputePlan(ws *api.Workspace) ([]Step, error) {
	targets := make(map[string][]api.Binary)
	for _, binary := range ws.Binaries {
		if binary.NeedsBuild() {
			targets[binary.Target] = append(targets[binary.Target], binary)
		}
	}

	if len(targets) > 0 && len(ws.BuildCommand) == 0 {
		return nil, ErrNoBuildCommand
	}

	var steps []Step
	sortedTargets := make([]string, 0, len(targets))
	for target := range targets {
		sortedTargets = append(sortedTargets, target)
	}
	slices.Sort(sortedTargets)
	for _, target := range sortedTargets {
		steps = append(steps, &genericStep{
			target:   target,
			binaries: targets[target],
			command:  ws.BuildCommand,
			context:  ws.Context,
			distDir:  ws.DistDir,
		})
	}

	for i, extra := range ws.ExtraBuilds {
		steps = append(steps, &extraStep{
			index:   i,
			cfg:     extra,
			distDir: ws.DistDir,
			context: ws.Context,
		})
	}

	return steps, nil
}
