package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justype/condorkit/internal/config"
	"github.com/Justype/condorkit/internal/errdefs"
	"github.com/Justype/condorkit/internal/utils"
)

// execute runs the root command with args in an isolated home directory and
// returns what the command wrote to its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var console bytes.Buffer
	return executeWithConsole(t, &console, args...)
}

// executeWithConsole is execute with the [CDK] console lines captured in console.
func executeWithConsole(t *testing.T, console *bytes.Buffer, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	chdir(t, dir)
	viper.Reset()
	t.Cleanup(viper.Reset)

	savedOut, savedErr := utils.Stdout, utils.Stderr
	utils.Stdout, utils.Stderr = console, console
	t.Cleanup(func() { utils.Stdout, utils.Stderr = savedOut, savedErr })

	// flag variables outlive a single Execute
	attrQuote, splitPlatform, checkdirCreate = false, "", false
	versionFile, versionMin = "", ""
	queueSubmitter, queueStrict = "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestGetConfigEnvVars(t *testing.T) {
	vars := getConfigEnvVars()

	expected := make([]string, 0, len(config.Keys()))
	for _, key := range config.Keys() {
		expected = append(expected, "CONDORKIT_"+strings.ToUpper(key))
	}
	sort.Strings(expected)

	assert.Equal(t, expected, vars)
	assert.Contains(t, vars, "CONDORKIT_SUBMIT_DIR")
	assert.Contains(t, vars, "CONDORKIT_VERBOSITY")
}

func TestConfigValueCompletion(t *testing.T) {
	assert.Equal(t, []string{"low", "medium", "high"}, configValueCompletion("verbosity"))
	assert.Contains(t, configValueCompletion("queue_command"), "condor_q")
	assert.Nil(t, configValueCompletion("log_dir"))
}

func TestSplitCommand(t *testing.T) {
	out, err := execute(t, "split", "--platform", "posix", `python run.py --name "my job"`)
	require.NoError(t, err)
	assert.Equal(t, "python\nrun.py\n--name\nmy job\n", out)

	out, err = execute(t, "split", "--platform", "windows", `copy "a b.txt" dest`)
	require.NoError(t, err)
	assert.Equal(t, "copy\n\"a b.txt\"\ndest\n", out)
}

func TestSplitCommandErrors(t *testing.T) {
	_, err := execute(t, "split", "--platform", "amiga", "ls")
	assert.True(t, errdefs.IsValueError(err))

	_, err = execute(t, "split", "--platform", "posix", `echo "unterminated`)
	assert.True(t, errdefs.IsValueError(err))
}

func TestAttrCommand(t *testing.T) {
	out, err := execute(t, "attr", "a.txt", "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt, b.txt\n", out)

	out, err = execute(t, "attr", "--quote", "my job")
	require.NoError(t, err)
	assert.Equal(t, "\"my job\"\n", out)
}

func TestVersionFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "condor_version.txt")
	require.NoError(t, os.WriteFile(path,
		[]byte("$CondorVersion: 23.0.3 2024-01-04 BuildID: 123 $\n$CondorPlatform: x86_64_AlmaLinux9 $\n"), 0644))

	out, err := execute(t, "version", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "23.0.3\n", out)

	_, err = execute(t, "version", "--file", path, "--min", "10.0")
	require.NoError(t, err)

	_, err = execute(t, "version", "--file", path, "--min", "24.1.0")
	require.Error(t, err)
	assert.True(t, errdefs.IsEnvironmentError(err))
}

func TestVersionFromUnparseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.txt")
	require.NoError(t, os.WriteFile(path, []byte("no version here"), 0644))

	_, err := execute(t, "version", "--file", path)
	assert.True(t, errdefs.IsParseError(err))
}

func TestCheckdirCommand(t *testing.T) {
	_, err := execute(t, "checkdir", "logs/job.log")
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrDirectoryNotFound)

	_, err = execute(t, "checkdir", "--create", "logs/job.log", "job.sub")
	require.NoError(t, err)
	assert.DirExists(t, "logs")
}

func TestEnvClearCommand(t *testing.T) {
	t.Setenv("CONDORKIT_LOG_DIR", "/tmp/logs")
	t.Setenv("CONDORKIT_OUTPUT_DIR", "/tmp/out")

	_, err := execute(t, "env", "clear")
	require.NoError(t, err)

	for _, name := range config.ManagedEnvVars() {
		_, ok := os.LookupEnv(name)
		assert.False(t, ok, "%s should be unset", name)
	}
}

func TestConfigSetAndShow(t *testing.T) {
	_, err := execute(t, "config", "set", "verbosity", "2")
	require.NoError(t, err)

	path, err := config.GetUserConfigPath()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "verbosity: high")

	_, err = execute(t, "config", "set", "no_such_key", "x")
	assert.Error(t, err)
}

func TestDetectShell(t *testing.T) {
	for shell, want := range map[string]string{
		"/usr/bin/zsh":   "zsh",
		"/usr/bin/fish":  "fish",
		"/opt/pwsh/pwsh": "powershell",
		"/bin/bash":      "bash",
		"":               "bash",
	} {
		t.Setenv("SHELL", shell)
		assert.Equal(t, want, detectShell(), "SHELL=%q", shell)
	}
}

func TestPostProcessBashCompletion(t *testing.T) {
	script := "    args=(\"${words[@]:1}\")\n    requestComp=\"${words[0]} __complete ${args[*]}\"\n"
	got := postProcessBashCompletion(script)
	assert.Contains(t, got, `if [[ "$word" == "--" ]]; then`)
	assert.Contains(t, got, "requestComp=")

	assert.Equal(t, "unrelated", postProcessBashCompletion("unrelated"))
}

func TestCompletionRestoresShorthands(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "condorkit")

	f := queueCmd.Flags().Lookup("submitter")
	require.NotNil(t, f)
	assert.Equal(t, "s", f.Shorthand)
}

// fakeCondor puts shell-script stand-ins for the HTCondor tools first on PATH.
func fakeCondor(t *testing.T, tools ...string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell scripts")
	}
	bin := t.TempDir()
	scripts := map[string]string{
		"condor_submit":  "#!/bin/sh\nexit 0\n",
		"condor_q":       "#!/bin/sh\necho '-- Schedd: submit.example.org'\n",
		"condor_version": "#!/bin/sh\necho '$CondorVersion: 23.0.3 2024-01-04 $'\n",
	}
	for _, tool := range tools {
		require.NoError(t, os.WriteFile(filepath.Join(bin, tool), []byte(scripts[tool]), 0755))
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func clearJobMarkers(t *testing.T) {
	t.Helper()
	for _, key := range []string{"_CONDOR_JOB_AD", "SLURM_JOB_ID", "PBS_JOBID", "LSB_JOBID"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestSchedulerCommand(t *testing.T) {
	clearJobMarkers(t)
	fakeCondor(t, "condor_submit", "condor_q", "condor_version")

	out, err := execute(t, "scheduler")
	require.NoError(t, err)
	assert.Contains(t, out, "HTCondor")
	assert.Contains(t, out, "condor_submit")
	assert.Contains(t, out, "23.0.3")
	assert.Contains(t, out, "Available")
}

func TestSchedulerCommandInsideJob(t *testing.T) {
	clearJobMarkers(t)
	fakeCondor(t, "condor_submit", "condor_version")
	t.Setenv("_CONDOR_JOB_AD", "/var/lib/condor/execute/dir_1/.job.ad")

	out, err := execute(t, "scheduler")
	require.NoError(t, err)
	assert.Contains(t, out, "inside job")
}

func TestSchedulerCommandMissing(t *testing.T) {
	clearJobMarkers(t)
	t.Setenv("PATH", t.TempDir())

	_, err := execute(t, "scheduler")
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrExecutableNotFound)
}

func TestConfigSetWarnsOnUnknownCommand(t *testing.T) {
	var console bytes.Buffer
	_, err := executeWithConsole(t, &console, "config", "set", "queue_command", "definitely-not-condor-q-xyz -global")
	require.NoError(t, err)
	assert.Contains(t, console.String(), "does not name an executable")

	console.Reset()
	fakeCondor(t, "condor_q")
	_, err = executeWithConsole(t, &console, "config", "set", "queue_command", "condor_q -global")
	require.NoError(t, err)
	assert.NotContains(t, console.String(), "does not name an executable")
}

func TestEnvListsManagedVariables(t *testing.T) {
	for _, name := range config.ManagedEnvVars() {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	t.Setenv("CONDORKIT_SUBMIT_DIR", "/scratch/submit")

	out, err := execute(t, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "CONDORKIT_SUBMIT_DIR=/scratch/submit")
	assert.Contains(t, out, "CONDORKIT_LOG_DIR")
	assert.Contains(t, out, "(unset)")
}
