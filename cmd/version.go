package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Justype/condorkit/internal/errdefs"
	"github.com/Justype/condorkit/internal/version"
)

var (
	versionFile string
	versionMin  string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the installed HTCondor version",
	Long: `Print the installed HTCondor version as MAJOR.MINOR.PATCH.

The version is taken from the in-process binding when one is registered,
otherwise from the output of the version command (condor_version by default,
see 'condorkit config set version_command').

Use --file to parse saved condor_version output instead ('-' reads stdin).
Use --min to fail when the version is older than required.`,
	Example: `  condorkit version
  condorkit version --min 10.0.0
  condor_version | condorkit version --file -`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().StringVarP(&versionFile, "file", "f", "", "Parse version text from `PATH` ('-' for stdin)")
	versionCmd.Flags().StringVar(&versionMin, "min", "", "Fail unless the version is at least `X.Y.Z`")
}

func runVersion(cmd *cobra.Command, args []string) error {
	var required version.Tuple
	if versionMin != "" {
		parsed, err := version.ParseTuple(versionMin)
		if err != nil {
			return err
		}
		required = parsed
	}

	v, err := installedOrFileVersion(cmd)
	if err != nil {
		return err
	}
	logger.Info().Str("version", v.String()).Msg("resolved HTCondor version")

	if required != nil && !v.AtLeast(required) {
		return errdefs.NewEnvironmentError("HTCondor",
			fmt.Sprintf("HTCondor %s is older than the required %s", v, required), nil)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func installedOrFileVersion(cmd *cobra.Command) (version.Tuple, error) {
	if versionFile == "" {
		return version.ResolveInstalledVersion()
	}

	var (
		data []byte
		err  error
	)
	if versionFile == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(versionFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read version text: %w", err)
	}
	return version.ParseVersionString(data)
}
