package scheduler

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justype/condorkit/internal/config"
	"github.com/Justype/condorkit/internal/errdefs"
	"github.com/Justype/condorkit/internal/probe"
)

type fakeRunner struct {
	out   []byte
	err   error
	calls []string
}

func (r *fakeRunner) Output(command string) ([]byte, error) {
	r.calls = append(r.calls, command)
	return r.out, r.err
}

func proberWith(present ...string) *probe.Prober {
	set := map[string]bool{}
	for _, p := range present {
		set[p] = true
	}
	return &probe.Prober{LookPath: func(file string) (string, error) {
		if set[file] {
			return "/usr/bin/" + file, nil
		}
		return "", exec.ErrNotFound
	}}
}

func clearJobEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"_CONDOR_JOB_AD", "SLURM_JOB_ID", "PBS_JOBID", "LSB_JOBID"} {
		t.Setenv(key, "") // restored on cleanup
		require.NoError(t, os.Unsetenv(key))
	}
}

func withConfig(t *testing.T) {
	t.Helper()
	saved := config.Global
	t.Cleanup(func() { config.Global = saved })
}

func TestQueueCommand(t *testing.T) {
	assert.Equal(t, "condor_q", QueueCommand("condor_q", ""))
	assert.Equal(t, "condor_q -submitter alice", QueueCommand("condor_q", "alice"))
	assert.Equal(t, "condor_q -global -submitter bob", QueueCommand("condor_q -global", "bob"))
}

func TestQueueRunsQuery(t *testing.T) {
	runner := &fakeRunner{out: []byte("-- Schedd: submit.example.org\n")}

	out, err := queueWith(proberWith("condor_q"), runner, "condor_q", "alice")
	require.NoError(t, err)
	assert.Equal(t, "-- Schedd: submit.example.org\n", string(out))
	assert.Equal(t, []string{"condor_q -submitter alice"}, runner.calls)
}

func TestQueueMissingExecutable(t *testing.T) {
	runner := &fakeRunner{}

	_, err := queueWith(proberWith(), runner, "condor_q", "")
	require.Error(t, err)
	assert.True(t, errdefs.IsEnvironmentError(err))
	assert.ErrorIs(t, err, errdefs.ErrExecutableNotFound)
	assert.Empty(t, runner.calls, "query must not run when condor_q is missing")
}

func TestQueueProbesFirstWordOnly(t *testing.T) {
	runner := &fakeRunner{out: []byte("ok")}

	_, err := queueWith(proberWith("condor_q"), runner, "condor_q -global", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"condor_q -global"}, runner.calls)
}

func TestQueuePropagatesRunnerError(t *testing.T) {
	failure := errors.New("shell unavailable")
	runner := &fakeRunner{err: failure}

	_, err := queueWith(proberWith("condor_q"), runner, "condor_q", "")
	assert.ErrorIs(t, err, failure)
}

func TestDetectType(t *testing.T) {
	assert.Equal(t, SchedulerHTCondor, detectTypeWith(proberWith("condor_submit", "sbatch")))
	assert.Equal(t, SchedulerSLURM, detectTypeWith(proberWith("sbatch")))
	assert.Equal(t, SchedulerPBS, detectTypeWith(proberWith("qsub")))
	assert.Equal(t, SchedulerLSF, detectTypeWith(proberWith("bsub")))
	assert.Equal(t, SchedulerUnknown, detectTypeWith(proberWith()))
}

func TestIsInsideJob(t *testing.T) {
	clearJobEnv(t)
	assert.False(t, IsInsideJob())

	t.Setenv("_CONDOR_JOB_AD", "/var/lib/condor/execute/dir_1/.job.ad")
	assert.True(t, IsInsideJob())
}

func TestHTCondorScheduler(t *testing.T) {
	clearJobEnv(t)
	withConfig(t)
	config.Global.SubmitCommand = CondorSubmit
	config.Global.VersionCommand = CondorVersion

	runner := &fakeRunner{out: []byte("$CondorVersion: 23.0.3 2024-01-04 $\n")}
	p := proberWith(CondorSubmit, CondorQ, CondorVersion)

	h, err := newHTCondorScheduler(p, runner)
	require.NoError(t, err)
	assert.True(t, h.IsAvailable())

	info := h.GetInfo()
	assert.Equal(t, "HTCondor", info.Type)
	assert.Equal(t, "/usr/bin/condor_submit", info.Binary)
	assert.False(t, info.InJob)

	t.Setenv("_CONDOR_JOB_AD", "job.ad")
	assert.False(t, h.IsAvailable(), "submission is unavailable from inside a job")
}

func TestHTCondorSchedulerMissing(t *testing.T) {
	withConfig(t)
	config.Global.SubmitCommand = CondorSubmit

	_, err := newHTCondorScheduler(proberWith(), &fakeRunner{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrExecutableNotFound)
}
