package scheduler

import (
	"fmt"

	"github.com/Justype/condorkit/internal/config"
	"github.com/Justype/condorkit/internal/exec"
	"github.com/Justype/condorkit/internal/probe"
)

// QueueCommand builds the queue query, e.g. "condor_q -submitter alice".
func QueueCommand(base, submitter string) string {
	if submitter == "" {
		return base
	}
	return fmt.Sprintf("%s -submitter %s", base, submitter)
}

// Queue runs the queue query through runner and returns its raw stdout.
//
// The query's exit status is not checked and its stderr is dropped, unless
// the runner is configured otherwise (exec.Options.CheckExit).
func Queue(runner exec.Runner, submitter string) ([]byte, error) {
	base := config.Global.QueueCommand
	if base == "" {
		base = CondorQ
	}
	return queueWith(probe.Default(), runner, base, submitter)
}

func queueWith(p *probe.Prober, runner exec.Runner, base, submitter string) ([]byte, error) {
	if runner == nil {
		runner = exec.NewShellRunner()
	}
	command := QueueCommand(base, submitter)
	query := probe.Guarded(p.RequireExecutables(program(base)), func() ([]byte, error) {
		return runner.Output(command)
	})
	return query()
}
