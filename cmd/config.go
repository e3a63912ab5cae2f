package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Justype/condorkit/internal/config"
	"github.com/Justype/condorkit/internal/utils"
)

// configKeysCompletion returns config keys for shell completion
func configKeysCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		// First arg: complete config keys
		return config.Keys(), cobra.ShellCompDirectiveNoFileComp
	}
	if len(args) == 1 {
		// Second arg: complete values based on the key
		return configValueCompletion(args[0]), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// configValueCompletion returns suggested values for a config key
func configValueCompletion(key string) []string {
	switch key {
	case "verbosity":
		return []string{"low", "medium", "high"}
	case "version_command":
		return []string{config.DefaultVersionCommand}
	case "queue_command":
		return []string{config.DefaultQueueCommand, config.DefaultQueueCommand + " -global"}
	case "submit_command":
		return []string{config.DefaultSubmitCommand}
	default:
		return nil
	}
}

// getConfigEnvVars returns the environment variable for every config key, sorted.
func getConfigEnvVars() []string {
	vars := make([]string, 0, len(config.Keys()))
	for _, key := range config.Keys() {
		vars = append(vars, config.EnvPrefix+"_"+strings.ToUpper(key))
	}
	sort.Strings(vars)
	return vars
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage condorkit configuration",
	Long: `Manage condorkit configuration settings.

Configuration priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (CONDORKIT_*)
  3. User config file (~/.config/condorkit/config.yaml)
  4. System config file (/etc/condorkit/config.yaml)
  5. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, utils.StyleTitle("Config File:"))
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(out, "  %s\n", used)
		} else {
			fmt.Fprintf(out, "  %s (use 'condorkit config set' to create)\n", utils.StyleWarning("No config file found"))
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, utils.StyleTitle("Current Configuration:"))
		for _, key := range config.Keys() {
			fmt.Fprintf(out, "  %-16s %s\n", key+":", viper.GetString(key))
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, utils.StyleTitle("Environment Variable Overrides:"))
		hasEnvOverrides := false
		for _, envVar := range getConfigEnvVars() {
			if val := os.Getenv(envVar); val != "" {
				fmt.Fprintf(out, "  %s=%s\n", envVar, val)
				hasEnvOverrides = true
			}
		}
		if !hasEnvOverrides {
			fmt.Fprintf(out, "  %s\n", utils.StyleDebug("none"))
		}
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save it to the user config file.

Examples:
  condorkit config set verbosity medium
  condorkit config set queue_command "condor_q -global"
  condorkit config set log_dir /scratch/alice/logs`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: configKeysCompletion,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.Set(key, value); err != nil {
			return err
		}
		if strings.HasSuffix(key, "_command") {
			if fields := strings.Fields(value); len(fields) == 0 || !config.ValidateBinary(fields[0]) {
				utils.PrintWarning("%s does not name an executable on this host: %s", utils.StyleName(key), utils.StyleCommand(value))
			}
		}
		if err := config.SaveConfig(); err != nil {
			return err
		}

		configPath, _ := config.GetUserConfigPath()
		utils.PrintSuccess("Set %s = %s", utils.StyleName(key), utils.StyleName(viper.GetString(key)))
		utils.PrintNote("Config saved to: %s", configPath)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the user config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetUserConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}
