package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Justype/condorkit/internal/scheduler"
	"github.com/Justype/condorkit/internal/utils"
)

var schedulerCmd = &cobra.Command{
	Use:     "scheduler",
	Aliases: []string{"sched"},
	Short:   "Display scheduler information",
	Long: `Display information about the job scheduler on this host.

Shows the detected scheduler type and, for HTCondor, the condor_submit path,
the installed version and whether job submission is available.`,
	Example: `  condorkit scheduler           # Show scheduler information
  condorkit sched               # Short alias`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runScheduler,
}

func init() {
	rootCmd.AddCommand(schedulerCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	detected := scheduler.DetectType()

	sched, err := scheduler.NewHTCondorScheduler()
	if err != nil {
		if scheduler.IsInsideJob() {
			utils.PrintMessage("Scheduler Status: %s", utils.StyleWarning("Unavailable (inside job)"))
			utils.PrintMessage("You are currently inside a scheduled job; the submit tools are not available here.")
			return nil
		}
		if detected != scheduler.SchedulerUnknown {
			utils.PrintMessage("Detected scheduler: %s", utils.StyleName(string(detected)))
			utils.PrintMessage("Only HTCondor is supported.")
			return err
		}
		utils.PrintMessage("Scheduler Status: %s", utils.StyleError("Not Found"))
		utils.PrintMessage("No job scheduler detected on this system.")
		return err
	}

	info := sched.GetInfo()
	logger.Debug().Str("type", info.Type).Str("binary", info.Binary).Str("version", info.Version).Msg("scheduler detected")

	// No [CDK] prefix for structured output
	fmt.Fprintln(out, "Scheduler Information:")
	fmt.Fprintf(out, "  Type:      %s\n", utils.StyleName(info.Type))
	fmt.Fprintf(out, "  Binary:    %s\n", utils.StylePath(info.Binary))
	if info.Version != "" {
		fmt.Fprintf(out, "  Version:   %s\n", utils.StyleNumber(info.Version))
	} else {
		fmt.Fprintf(out, "  Version:   %s\n", utils.StyleWarning("unknown"))
	}

	switch {
	case info.InJob:
		fmt.Fprintf(out, "  Status:    %s (inside job)\n", utils.StyleError("Unavailable"))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "You are currently inside an HTCondor job (detected via _CONDOR_JOB_AD).")
		fmt.Fprintln(out, "Job submission is disabled to prevent nested job submissions.")
	case info.Available:
		fmt.Fprintf(out, "  Status:    %s\n", utils.StyleName("Available"))
	default:
		fmt.Fprintf(out, "  Status:    %s\n", utils.StyleError("Unavailable"))
	}
	return nil
}
