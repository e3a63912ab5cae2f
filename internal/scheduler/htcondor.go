package scheduler

import (
	"os"
	"strings"

	"github.com/Justype/condorkit/internal/config"
	"github.com/Justype/condorkit/internal/exec"
	"github.com/Justype/condorkit/internal/probe"
	"github.com/Justype/condorkit/internal/utils"
	"github.com/Justype/condorkit/internal/version"
)

// HTCondor command-line tools.
const (
	CondorSubmit  = "condor_submit"
	CondorQ       = "condor_q"
	CondorVersion = "condor_version"
)

// HTCondorTools are the executables a submit-capable host must provide.
var HTCondorTools = []string{CondorSubmit, CondorQ, CondorVersion}

// HTCondorScheduler describes the HTCondor installation on this host.
type HTCondorScheduler struct {
	condorSubmitBin string

	prober *probe.Prober
	runner exec.Runner
}

// NewHTCondorScheduler locates condor_submit (config.Global.SubmitCommand) on the search path.
func NewHTCondorScheduler() (*HTCondorScheduler, error) {
	return newHTCondorScheduler(probe.Default(), exec.NewShellRunner())
}

func newHTCondorScheduler(p *probe.Prober, runner exec.Runner) (*HTCondorScheduler, error) {
	submit := config.Global.SubmitCommand
	if submit == "" {
		submit = CondorSubmit
	}
	binPath, err := p.Which(submit)
	if err != nil {
		return nil, err
	}

	return &HTCondorScheduler{
		condorSubmitBin: binPath,
		prober:          p,
		runner:          runner,
	}, nil
}

// IsAvailable checks if HTCondor is available and we're not inside an HTCondor job
func (h *HTCondorScheduler) IsAvailable() bool {
	if h.condorSubmitBin == "" {
		return false
	}
	if _, inJob := os.LookupEnv("_CONDOR_JOB_AD"); inJob {
		return false
	}
	return true
}

// GetInfo returns information about the HTCondor scheduler
func (h *HTCondorScheduler) GetInfo() *SchedulerInfo {
	_, inJob := os.LookupEnv("_CONDOR_JOB_AD")

	info := &SchedulerInfo{
		Type:      string(SchedulerHTCondor),
		Binary:    h.condorSubmitBin,
		InJob:     inJob,
		Available: h.IsAvailable(),
	}

	if v, err := h.Version(); err == nil {
		info.Version = v.String()
	} else {
		utils.PrintDebug("HTCondor version unavailable: %v", err)
	}
	return info
}

// Version resolves the installed HTCondor version.
func (h *HTCondorScheduler) Version() (version.Tuple, error) {
	r := version.NewResolver()
	r.Prober = h.prober
	r.Runner = h.runner
	return r.Resolve()
}

// program returns the first word of a command line.
func program(command string) string {
	if fields := strings.Fields(command); len(fields) > 0 {
		return fields[0]
	}
	return command
}
