package build

import (
	"github.com/systemstart/distbuild/pkg/buildenv"
	"github.com/systemstart/distbuild/pkg/toolchain"
)

// TargetEnvVar announces the cross-compilation target to the build command.
const TargetEnvVar = "DISTBUILD_TARGET"

// composeEnv layers the child-process environment: ambient snapshot, then
// the allow-listed harvested subset, then derived compiler/linker flags,
// then the target and toolchain variables. target is empty for
// extra-artifact builds, which get no target or toolchain layer.
func composeEnv(target string, harvested map[string]string) *buildenv.Environ {
	env := buildenv.Ambient()

	env.SetAll(buildenv.Select(harvested))

	if cflags := buildenv.CFlags(harvested); cflags != "" {
		// Strictly CPPFLAGS is for C++ and CFLAGS for C, but many
		// buildsystems treat them as interchangeable, so both point at
		// the same set.
		env.Set("CFLAGS", cflags)
		env.Set("CPPFLAGS", cflags)
	}
	if ldflags := buildenv.LDFlags(harvested); ldflags != "" {
		env.Set("LDFLAGS", ldflags)
	}

	if target != "" {
		env.Set(TargetEnvVar, target)

		// An ambient CC/CXX is a deliberate user override and wins over
		// the platform default.
		family := toolchain.Classify(target)
		if _, ok := env.Lookup("CC"); !ok {
			env.Set("CC", family.CC())
		}
		if _, ok := env.Lookup("CXX"); !ok {
			env.Set("CXX", family.CXX())
		}
	}

	return env
}
