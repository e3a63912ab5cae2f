package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Justype/condorkit/internal/format"
)

var splitPlatform string

var splitCmd = &cobra.Command{
	Use:   "split COMMAND",
	Short: "Split a command string into arguments",
	Long: `Split a command string into arguments and print one per line.

POSIX rules remove quotes and honor backslash escapes. Windows rules keep
quotes in the token and have no escape character. The host's rules are used
unless --platform is given.`,
	Example: `  condorkit split 'python run.py --name "my job"'
  condorkit split --platform windows 'copy "a b.txt" dest'`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringVar(&splitPlatform, "platform", "", "Quoting rules: posix or windows (default: host)")
	_ = splitCmd.RegisterFlagCompletionFunc("platform", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"posix", "windows"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runSplit(cmd *cobra.Command, args []string) error {
	platform := format.HostPlatform()
	if splitPlatform != "" {
		p, err := format.ParsePlatform(splitPlatform)
		if err != nil {
			return err
		}
		platform = p
	}

	tokens, err := format.TokenizeCommandFor(platform, strings.Join(args, " "))
	if err != nil {
		return err
	}
	logger.Debug().Stringer("platform", platform).Int("tokens", len(tokens)).Msg("split command")
	for _, tok := range tokens {
		fmt.Fprintln(cmd.OutOrStdout(), tok)
	}
	return nil
}
