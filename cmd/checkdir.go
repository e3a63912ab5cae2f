package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Justype/condorkit/internal/utils"
)

var checkdirCreate bool

var checkdirCmd = &cobra.Command{
	Use:   "checkdir PATH...",
	Short: "Check that the parent directory of each path exists",
	Long: `Check that the directory each path lives in exists, e.g. the directory
of a job's output or log file. With --create missing directories are created.`,
	Example: `  condorkit checkdir logs/job.log out/job.out
  condorkit checkdir --create logs/job.log`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if err := utils.EnsureDirectoryExists(path, checkdirCreate); err != nil {
				return err
			}
			logger.Debug().Str("path", path).Msg("directory ok")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkdirCmd)
	checkdirCmd.Flags().BoolVarP(&checkdirCreate, "create", "c", false, "Create missing directories")
}
