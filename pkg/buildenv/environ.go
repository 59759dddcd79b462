package buildenv

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Environ is the set of environment variable assignments composed for a
// child process. Layers are applied with Set/SetAll, later layers override
// earlier ones. The ambient process environment is only ever snapshotted,
// never modified.
type Environ struct {
	vars map[string]string
}

// Ambient returns an Environ seeded from a snapshot of the current process
// environment.
func Ambient() *Environ {
	e := &Environ{vars: make(map[string]string)}
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			e.vars[key] = value
		}
	}
	return e
}

// Set assigns a variable, overriding any earlier layer.
func (e *Environ) Set(key, value string) {
	e.vars[key] = value
}

// SetAll assigns every variable in vars.
func (e *Environ) SetAll(vars map[string]string) {
	for key, value := range vars {
		e.vars[key] = value
	}
}

// Lookup reports the current value of a variable.
func (e *Environ) Lookup(key string) (string, bool) {
	value, ok := e.vars[key]
	return value, ok
}

// Slice renders the environment as KEY=value pairs in sorted key order,
// suitable for exec.Cmd.Env. Sorting keeps composed environments
// deterministic across runs.
func (e *Environ) Slice() []string {
	result := make([]string, 0, len(e.vars))
	for key, value := range e.vars {
		result = append(result, fmt.Sprintf("%s=%s", key, value))
	}
	slices.Sort(result)
	return result
}
