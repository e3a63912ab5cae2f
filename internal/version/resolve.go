package version

import (
	"strings"
	"sync"

	"github.com/Justype/condorkit/internal/config"
	"github.com/Justype/condorkit/internal/errdefs"
	"github.com/Justype/condorkit/internal/exec"
	"github.com/Justype/condorkit/internal/probe"
	"github.com/Justype/condorkit/internal/utils"
)

// Binding is an in-process HTCondor client able to report its version text.
type Binding interface {
	Version() (string, error)
}

// BindingLoader locates the optional binding. It returns (nil, nil) or an
// error when no binding is available on this host.
type BindingLoader func() (Binding, error)

// bindingHolder loads the registered binding at most once.
type bindingHolder struct {
	mu      sync.Mutex
	loader  BindingLoader
	loaded  bool
	binding Binding
	err     error
}

func (h *bindingHolder) set(loader BindingLoader) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loader = loader
	h.loaded = false
	h.binding = nil
	h.err = nil
}

func (h *bindingHolder) get() (Binding, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.loader == nil {
		return nil, nil
	}
	if !h.loaded {
		h.binding, h.err = h.loader()
		h.loaded = true
	}
	return h.binding, h.err
}

var registered bindingHolder

// RegisterBinding installs the loader used to find an in-process binding.
// Passing nil removes it, so resolution always shells out.
func RegisterBinding(loader BindingLoader) {
	registered.set(loader)
}

// Resolver determines the installed HTCondor version.
type Resolver struct {
	// Binding returns the optional in-process binding. Nil means none.
	Binding BindingLoader
	// Runner runs Command when no binding is usable.
	Runner exec.Runner
	// Prober checks that Command exists before running it.
	Prober *probe.Prober
	// Command is the version command line, condor_version by default.
	Command string
}

// NewResolver returns a resolver using the registered binding, the system
// shell and config.Global.VersionCommand.
func NewResolver() *Resolver {
	return &Resolver{
		Binding: registered.get,
		Runner:  exec.NewShellRunner(),
		Prober:  probe.Default(),
		Command: config.Global.VersionCommand,
	}
}

// ResolveInstalledVersion returns the HTCondor version of this host.
//
// Only meaningful on a submit-capable host, i.e. one with the HTCondor
// client tools (or an in-process binding) installed.
func ResolveInstalledVersion() (Tuple, error) {
	return NewResolver().Resolve()
}

// Resolve prefers the in-process binding and falls back to running the
// version command. The text obtained either way goes through ParseVersionString.
func (r *Resolver) Resolve() (Tuple, error) {
	info := r.fromBinding()
	if strings.TrimSpace(info) == "" {
		out, err := r.fromCommand()
		if err != nil {
			return nil, err
		}
		info = out
	}

	if strings.TrimSpace(info) == "" {
		return nil, errdefs.NewEnvironmentError(r.command(),
			"could not find HTCondor version", errdefs.ErrVersionUnavailable)
	}
	return ParseVersionString(info)
}

func (r *Resolver) command() string {
	if r.Command != "" {
		return r.Command
	}
	return config.DefaultVersionCommand
}

func (r *Resolver) fromBinding() string {
	if r.Binding == nil {
		return ""
	}
	b, err := r.Binding()
	if err != nil || b == nil {
		utils.PrintDebug("No in-process HTCondor binding: %v", err)
		return ""
	}
	info, err := b.Version()
	if err != nil {
		utils.PrintDebug("HTCondor binding failed to report a version: %v", err)
		return ""
	}
	return info
}

func (r *Resolver) fromCommand() (string, error) {
	command := r.command()

	prober := r.Prober
	if prober == nil {
		prober = probe.Default()
	}
	// The command line may carry arguments; only the program is probed.
	program := command
	if fields := strings.Fields(command); len(fields) > 0 {
		program = fields[0]
	}
	if err := prober.AssertExecutableExists(program); err != nil {
		return "", err
	}

	runner := r.Runner
	if runner == nil {
		runner = exec.NewShellRunner()
	}
	out, err := runner.Output(command)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
