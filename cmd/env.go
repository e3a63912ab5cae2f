package cmd

import (
	"errors"
	"fmt"
	"os"
	osexec "os/exec"

	"github.com/spf13/cobra"

	"github.com/Justype/condorkit/internal/config"
	"github.com/Justype/condorkit/internal/utils"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the managed directory environment variables",
	Long: `List the environment variables condorkit manages:
  CONDORKIT_SUBMIT_DIR, CONDORKIT_OUTPUT_DIR, CONDORKIT_ERROR_DIR, CONDORKIT_LOG_DIR`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, key := range config.ManagedDirKeys {
			name := config.ManagedEnvVar(key)
			if val, ok := os.LookupEnv(name); ok {
				fmt.Fprintf(out, "%s=%s\n", name, val)
			} else if dir := config.Global.ManagedDir(key); dir != "" {
				fmt.Fprintf(out, "%s %s\n", name, utils.StyleDebug("(unset, config: "+dir+")"))
			} else {
				fmt.Fprintf(out, "%s %s\n", name, utils.StyleDebug("(unset)"))
			}
		}
	},
}

var envClearCmd = &cobra.Command{
	Use:   "clear [-- COMMAND [ARGS...]]",
	Short: "Clear the managed variables, optionally running a command without them",
	Long: `Unset every managed directory variable that is set.

Since a process cannot change its parent's environment, the cleared
environment is only visible to a command given after '--'.`,
	Example: `  condorkit env clear -- condor_submit job.sub`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runEnvClear,
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.AddCommand(envClearCmd)
}

func runEnvClear(cmd *cobra.Command, args []string) error {
	if err := config.ClearManagedEnvironmentVariables(); err != nil {
		return err
	}
	logger.Info().Strs("variables", config.ManagedEnvVars()).Msg("cleared managed environment")

	if len(args) == 0 {
		utils.PrintSuccess("Managed environment variables cleared.")
		return nil
	}

	child := osexec.CommandContext(cmd.Context(), args[0], args[1:]...)
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()
	utils.PrintDebug("[EXEC] %s", utils.StyleCommand(child.String()))

	if err := child.Run(); err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with status %d", args[0], exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run %s: %w", args[0], err)
	}
	return nil
}
