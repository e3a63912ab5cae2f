package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Justype/condorkit/internal/exec"
	"github.com/Justype/condorkit/internal/scheduler"
)

var (
	queueSubmitter string
	queueStrict    bool
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Print the HTCondor job queue",
	Long: `Run the queue command (condor_q by default) and print its output.

By default the exit status of the query is not checked and its standard
error is discarded. With --strict a non-zero exit status is an error.`,
	Example: `  condorkit queue
  condorkit queue --submitter alice
  condorkit queue --strict`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runQueue,
}

func init() {
	rootCmd.AddCommand(queueCmd)
	queueCmd.Flags().StringVarP(&queueSubmitter, "submitter", "s", "", "Only show jobs of this submitter")
	queueCmd.Flags().BoolVar(&queueStrict, "strict", false, "Fail when the query exits with a non-zero status")
}

func runQueue(cmd *cobra.Command, args []string) error {
	runner := exec.NewShellRunner()
	runner.Options.CheckExit = queueStrict

	out, err := scheduler.Queue(runner, queueSubmitter)
	if err != nil {
		return err
	}
	logger.Debug().Str("submitter", queueSubmitter).Int("bytes", len(out)).Msg("queue query finished")
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
