package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// completionShells maps each supported shell to its script generator.
var completionShells = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error {
		var buf bytes.Buffer
		if err := root.GenBashCompletionV2(&buf, true); err != nil {
			return err
		}
		_, err := io.WriteString(w, postProcessBashCompletion(buf.String()))
		return err
	},
	"zsh": func(root *cobra.Command, w io.Writer) error {
		return root.GenZshCompletion(w)
	},
	"fish": func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

// detectShell guesses the user's shell from $SHELL, defaulting to bash.
func detectShell() string {
	name := strings.ToLower(filepath.Base(os.Getenv("SHELL")))
	switch {
	case strings.Contains(name, "fish"):
		return "fish"
	case strings.Contains(name, "zsh"):
		return "zsh"
	case strings.Contains(name, "pwsh"), strings.Contains(name, "powershell"):
		return "powershell"
	}
	return "bash"
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate a shell completion script for condorkit.

If no shell is given it is detected from $SHELL.

Bash:
  $ source <(condorkit completion bash)

Zsh:
  $ condorkit completion zsh > "${fpath[1]}/_condorkit"

Fish:
  $ condorkit completion fish > ~/.config/fish/completions/condorkit.fish

PowerShell:
  PS> condorkit completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := detectShell()
		if len(args) > 0 {
			shell = args[0]
		}

		// Offer only long options (--submitter, not -s) in completions.
		root := cmd.Root()
		saved := stripShortFlagShorthands(root)
		defer restoreShortFlagShorthands(root, saved)

		return completionShells[shell](root, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// postProcessBashCompletion makes the bash script fall back to file
// completion once "--" appears on the command line (env clear -- CMD).
func postProcessBashCompletion(script string) string {
	const anchor = `args=("${words[@]:1}")`
	const guard = `args=("${words[@]:1}")
    for word in "${words[@]}"; do
        if [[ "$word" == "--" ]]; then
            return
        fi
    done`
	return strings.Replace(script, anchor, guard, 1)
}

// visitAllFlags calls fn for every flag of every command in the tree.
func visitAllFlags(root *cobra.Command, fn func(*pflag.Flag)) {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.LocalFlags().VisitAll(fn)
		c.PersistentFlags().VisitAll(fn)
		c.InheritedFlags().VisitAll(fn)
		for _, child := range c.Commands() {
			walk(child)
		}
	}
	walk(root)
}

// stripShortFlagShorthands clears every flag shorthand and returns the
// removed values keyed by flag name.
func stripShortFlagShorthands(root *cobra.Command) map[string]string {
	saved := make(map[string]string)
	visitAllFlags(root, func(f *pflag.Flag) {
		if f.Shorthand != "" {
			saved[f.Name] = f.Shorthand
			f.Shorthand = ""
		}
	})
	return saved
}

func restoreShortFlagShorthands(root *cobra.Command, saved map[string]string) {
	visitAllFlags(root, func(f *pflag.Flag) {
		if old, ok := saved[f.Name]; ok {
			f.Shorthand = old
		}
	})
}
