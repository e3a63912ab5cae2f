package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Justype/condorkit/internal/config"
	"github.com/Justype/condorkit/internal/logging"
	"github.com/Justype/condorkit/internal/utils"
)

var (
	debugMode bool
	quietMode bool
	verbosity logging.Verbosity
)

// logger is the CLI's own structured logger, configured in PersistentPreRunE.
var logger = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:           "condorkit",
	Short:         "condorkit: small helpers for working with an HTCondor submit host.",
	Version:       config.VERSION,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Step 1: Load defaults
		config.LoadDefaults()

		// Step 2: Initialize Viper (read config file, env vars)
		if err := config.InitViper(); err != nil {
			utils.PrintDebug("Error reading config file: %v", err)
		}

		// Step 3: Load resolved values from Viper into Global config
		config.LoadFromViper()

		// Step 4: Apply command-line flags (highest priority)
		if cmd.Flags().Changed("verbosity") {
			config.Global.Verbosity = verbosity
		}
		if quietMode {
			utils.QuietMode = true
			config.Global.Quiet = true
		}
		if debugMode {
			utils.DebugMode = true
			config.Global.Debug = true
			config.Global.Verbosity = logging.High
			utils.PrintDebug("Debug mode enabled")
			utils.PrintDebug("condorkit Version: %s", utils.StyleNumber(config.VERSION))
			utils.PrintDebug("Version command: %s", utils.StyleCommand(config.Global.VersionCommand))
			utils.PrintDebug("Queue command: %s", utils.StyleCommand(config.Global.QueueCommand))
		}

		// Step 5: Structured logger for the command being run
		factory := logging.NewFactory(config.Global.Namespace, os.Stderr)
		l, err := factory.GetLogger(logging.Component(cmd.Name()), config.Global.Verbosity)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		utils.PrintError("%v", err)
		os.Exit(1)
	}
}

func init() {
	// Subcommands are attached to rootCmd in their respective init() functions
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode with verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Only print errors and warnings")
	rootCmd.PersistentFlags().Var(&verbosity, "verbosity",
		fmt.Sprintf("Log verbosity, one of %v", logging.ValidVerbosities()))
	_ = rootCmd.RegisterFlagCompletionFunc("verbosity", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"low", "medium", "high"}, cobra.ShellCompDirectiveNoFileComp
	})
}
