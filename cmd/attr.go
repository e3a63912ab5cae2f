package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Justype/condorkit/internal/format"
)

var attrQuote bool

var attrCmd = &cobra.Command{
	Use:   "attr VALUE...",
	Short: "Render values as submit-description attribute text",
	Long: `Render values the way an HTCondor submit description expects them.

A single value is printed as-is; several values are joined with ", ".
With --quote the result is wrapped in double quotes.`,
	Example: `  condorkit attr a.txt b.txt            # a.txt, b.txt
  condorkit attr --quote "my job"       # "my job"`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runAttr,
}

func init() {
	rootCmd.AddCommand(attrCmd)
	attrCmd.Flags().BoolVar(&attrQuote, "quote", false, "Wrap the result in double quotes")
}

func runAttr(cmd *cobra.Command, args []string) error {
	var value any = args
	if len(args) == 1 {
		value = args[0]
	}
	text, err := format.ToAttributeText(value, attrQuote)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
