// Package scheduler knows which HTCondor tools exist on this host and wraps
// the read-only queries condorkit makes against them.
package scheduler

import (
	"os"

	"github.com/Justype/condorkit/internal/probe"
)

// SchedulerType represents the type of job scheduler
type SchedulerType string

const (
	SchedulerUnknown  SchedulerType = ""
	SchedulerSLURM    SchedulerType = "SLURM"
	SchedulerPBS      SchedulerType = "PBS"
	SchedulerLSF      SchedulerType = "LSF"
	SchedulerHTCondor SchedulerType = "HTCondor"
)

// submitBinaries maps each scheduler to the command that proves it is installed,
// in detection order.
var submitBinaries = []struct {
	typ SchedulerType
	bin string
}{
	{SchedulerHTCondor, CondorSubmit},
	{SchedulerSLURM, "sbatch"},
	{SchedulerPBS, "qsub"},
	{SchedulerLSF, "bsub"},
}

// SchedulerInfo holds information about the detected scheduler
type SchedulerInfo struct {
	Type      string // Scheduler type, always "HTCondor" here
	Binary    string // Path to condor_submit
	Version   string // Scheduler version (if available)
	InJob     bool   // Whether we're currently inside a scheduled job
	Available bool   // Whether the scheduler is available for job submission
}

// DetectType returns the scheduler whose submit command is on the search path.
// HTCondor wins when several are installed.
func DetectType() SchedulerType {
	return detectTypeWith(probe.Default())
}

func detectTypeWith(p *probe.Prober) SchedulerType {
	for _, candidate := range submitBinaries {
		if _, err := p.Which(candidate.bin); err == nil {
			return candidate.typ
		}
	}
	return SchedulerUnknown
}

// IsInsideJob checks if we're currently running inside a scheduler job.
// Tooling uses this to avoid nested submission.
func IsInsideJob() bool {
	for _, key := range []string{"_CONDOR_JOB_AD", "SLURM_JOB_ID", "PBS_JOBID", "LSB_JOBID"} {
		if _, ok := os.LookupEnv(key); ok {
			return true
		}
	}
	return false
}
