// Package probe checks that external executables are present before the
// operations that need them run.
package probe

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Justype/condorkit/internal/errdefs"
	"github.com/Justype/condorkit/internal/utils"
)

// Prober resolves executables on the search path. The zero value uses exec.LookPath.
type Prober struct {
	// LookPath overrides the lookup, mainly for tests.
	LookPath func(file string) (string, error)
}

var defaultProber = &Prober{}

// Default returns the process-wide prober.
func Default() *Prober {
	return defaultProber
}

// Result is the outcome of probing a single executable.
type Result struct {
	Name  string
	Path  string
	Found bool
}

func (p *Prober) lookPath(name string) (string, error) {
	if p != nil && p.LookPath != nil {
		return p.LookPath(name)
	}
	return exec.LookPath(name)
}

// Which returns the resolved path of name. On Windows the lookup honors PATHEXT.
func (p *Prober) Which(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errdefs.NewValueError("executable name", "must be non-empty")
	}

	path, err := p.lookPath(name)
	if err != nil || path == "" {
		utils.PrintDebug("Executable %s not found: %v", utils.StyleName(name), err)
		return "", errdefs.NewEnvironmentError(name,
			fmt.Sprintf("the command '%s' was not found on this machine", name),
			errdefs.ErrExecutableNotFound)
	}
	utils.PrintDebug("Executable %s resolved to %s", utils.StyleName(name), utils.StylePath(path))
	return path, nil
}

// AssertExecutableExists fails with an EnvironmentError when name is not on the search path.
func (p *Prober) AssertExecutableExists(name string) error {
	_, err := p.Which(name)
	return err
}

// Check probes every name without failing and reports each outcome in order.
func (p *Prober) Check(names ...string) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		path, err := p.Which(name)
		results = append(results, Result{Name: name, Path: path, Found: err == nil})
	}
	return results
}

// Which resolves name with the default prober.
func Which(name string) (string, error) {
	return defaultProber.Which(name)
}

// AssertExecutableExists checks name with the default prober.
func AssertExecutableExists(name string) error {
	return defaultProber.AssertExecutableExists(name)
}

// Check probes names with the default prober.
func Check(names ...string) []Result {
	return defaultProber.Check(names...)
}
