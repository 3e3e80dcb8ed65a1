// Package cli defines the cobra command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/osdeploy/winedition/internal/bootstrap"
	"github.com/osdeploy/winedition/internal/version"
)

// Exit codes. The deployment tooling branches on these: cancellation must be
// distinguishable from failure.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitCanceled = 2
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "winedition",
	Short: "Select the Windows edition for an OS deployment",
	Long: `winedition is a deployment-time helper for OS imaging systems.

It optionally runs an external OEM key-detection tool, presents a dialog to
pick a Windows edition (and OS family), and writes the choice into the
deployment-environment variable store.`,
	Version:       version.GetVersionString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSelection,
}

// Execute runs the root command and maps its outcome to an exit code.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if errors.Is(err, bootstrap.ErrCanceled) {
			os.Exit(ExitCanceled)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitFailure)
	}

	os.Exit(ExitOK)
}

// init initializes the root command and sets up flags.
func init() {
	RootCmd.CompletionOptions.DisableDefaultCmd = true
	addPersistentFlags(RootCmd)
}

// runSelection runs one selection pass.
func runSelection(cmd *cobra.Command, args []string) error {
	return bootstrap.Run(getBootstrapOptions(cmd))
}

// getBootstrapOptions converts cobra flags to bootstrap Options.
func getBootstrapOptions(cmd *cobra.Command) bootstrap.Options {
	configPath, _ := cmd.Flags().GetString("config")

	// Get config values from viper (which handles env vars)
	return bootstrap.Options{
		ConfigPath:             configPath,
		FlagFamily:             viper.GetString("family"),
		FlagDetector:           viper.GetString("detector"),
		FlagReport:             viper.GetString("report"),
		FlagLog:                viper.GetString("log"),
		FlagStore:              viper.GetString("store"),
		FlagTesting:            viper.GetBool("testing"),
		FlagSkipFamily:         viper.GetBool("skip_family"),
		FlagDefaultFamily:      viper.GetString("default_family"),
		FlagUnknownFamilyLabel: viper.GetString("unknown_family_label"),
		FlagFamilyVar:          viper.GetString("family_var"),
		FlagEditionVar:         viper.GetString("edition_var"),
		FlagAutoVar:            viper.GetString("auto_var"),
		FlagKeyVar:             viper.GetString("key_var"),
		FlagDebug:              viper.GetBool("debug"),
	}
}

// addPersistentFlags adds all the persistent flags to the root command.
func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "", "Path to YAML config file")
	cmd.PersistentFlags().String("family", "", "Pre-supplied OS family, skips the family selector")
	cmd.PersistentFlags().String("detector", "", "Path to the OEM key-detection executable")
	cmd.PersistentFlags().String("report", "", "Detection report file path (.txt)")
	cmd.PersistentFlags().String("log", "", "Log file path (.log)")
	cmd.PersistentFlags().String("store", "", "Variables file persisted into (empty: process environment)")
	cmd.PersistentFlags().BoolP("testing", "t", false, "Testing mode: suppress persistence and logging side effects")
	cmd.PersistentFlags().Bool("skip-family", false, "Skip the OS family selector")
	cmd.PersistentFlags().String("default-family", "", "Pre-selected OS family entry")
	cmd.PersistentFlags().String("unknown-family-label", "", "Label of the unselected family placeholder")
	cmd.PersistentFlags().String("family-var", "", "Variable name for the OS family")
	cmd.PersistentFlags().String("edition-var", "", "Variable name for the edition short code")
	cmd.PersistentFlags().String("auto-var", "", "Variable name for the auto-selection flag")
	cmd.PersistentFlags().String("key-var", "", "Variable name for the OEM product key")
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	// Bind flags to environment variables
	viper.SetEnvPrefix("WINEDITION")
	viper.AutomaticEnv()

	bindings := map[string]string{
		"family":               "family",
		"detector":             "detector",
		"report":               "report",
		"log":                  "log",
		"store":                "store",
		"testing":              "testing",
		"skip_family":          "skip-family",
		"default_family":       "default-family",
		"unknown_family_label": "unknown-family-label",
		"family_var":           "family-var",
		"edition_var":          "edition-var",
		"auto_var":             "auto-var",
		"key_var":              "key-var",
		"debug":                "debug",
	}
	for key, flagName := range bindings {
		if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flagName)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flagName, err))
		}
	}
}
