// Package exec runs shell-interpreted command lines and captures their output.
package exec

import (
	"bytes"
	"errors"
	"fmt"
	osexec "os/exec"

	"github.com/Justype/condorkit/internal/errdefs"
	"github.com/Justype/condorkit/internal/utils"
)

// Runner runs a command line and returns its standard output.
type Runner interface {
	Output(command string) ([]byte, error)
}

// ShellRunner hands command lines to the system shell.
//
// Standard error is discarded and, unless Options.CheckExit is set, the exit
// status is ignored: a command that prints and then fails still returns its
// output. Only a failure to start the shell is reported. Output blocks until
// the command exits; there is no timeout.
type ShellRunner struct {
	Options Options
}

// NewShellRunner returns a ShellRunner with default options.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{}
}

// Output runs command and returns everything it wrote to stdout.
func (r *ShellRunner) Output(command string) ([]byte, error) {
	opts := r.Options.ensureDefaults()

	cmd := osexec.Command(opts.Shell, opts.ShellFlag, command)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	utils.PrintDebug("[EXEC] %s %s %s", opts.Shell, opts.ShellFlag, utils.StyleCommand(command))

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	var exitErr *osexec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("failed to run %s: %w", command, err)
	}
	if opts.CheckExit {
		return stdout.Bytes(), errdefs.NewEnvironmentError(command,
			fmt.Sprintf("the command '%s' exited with status %d", command, exitErr.ExitCode()),
			errdefs.ErrCommandFailed)
	}
	utils.PrintDebug("[EXEC] %s exited with status %d (ignored)", command, exitErr.ExitCode())
	return stdout.Bytes(), nil
}
