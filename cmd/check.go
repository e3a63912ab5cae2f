package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Justype/condorkit/internal/probe"
	"github.com/Justype/condorkit/internal/scheduler"
	"github.com/Justype/condorkit/internal/utils"
)

var checkCmd = &cobra.Command{
	Use:   "check [executable...]",
	Short: "Check that HTCondor executables are on the search path",
	Long: `Check that the given executables can be found on the search path.

Without arguments the HTCondor client tools are checked:
  condor_submit, condor_q, condor_version

The command fails if any executable is missing.`,
	Example: `  condorkit check                 # Check the HTCondor client tools
  condorkit check condor_status   # Check a single executable`,
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = scheduler.HTCondorTools
	}

	missing := 0
	for _, r := range probe.Check(names...) {
		if r.Found {
			utils.PrintMessage("%s: %s", utils.StyleName(r.Name), utils.StylePath(r.Path))
			logger.Debug().Str("executable", r.Name).Str("path", r.Path).Msg("found")
			continue
		}
		utils.PrintMessage("%s: %s", utils.StyleName(r.Name), utils.StyleError("(missing)"))
		logger.Warn().Str("executable", r.Name).Msg("not found")
		missing++
	}

	if missing > 0 {
		if scheduler.IsInsideJob() {
			utils.PrintHint("Running inside a batch job; the HTCondor client tools are usually only installed on submit hosts.")
		}
		return fmt.Errorf("%d of %d executables not found", missing, len(names))
	}
	utils.PrintSuccess("All executables found.")
	return nil
}
