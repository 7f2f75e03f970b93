// Package cli implements the token-cli command surface.
package cli

import (
	"github.com/spf13/cobra"

	"token-extensions-cli/internal/config"
	"token-extensions-cli/internal/log"
)

var (
	cfgPath string
	verbose bool

	// cfg is loaded before every command; a malformed file degrades to the
	// defaults with a warning instead of failing.
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:        "token-cli",
		Short:      "Create SPL Token-2022 mints and accounts from named recipes",
		SuggestFor: []string{"tokencli", "token2022-cli"},
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.Init("debug")
			}
			cfg = config.Load(cfgPath)
			if cfg.ShowDetailedOutput && !verbose {
				log.Init("debug")
			}
		},
		SilenceUsage: true,
	}
)

func init() {
	cobra.EnablePrefixMatching = true

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		configCmd,
		setupCmd,

		createCmd,
		wizardCmd,

		listCmd,
		validateCmd,
		examplesCmd,

		balanceCmd,
		airdropCmd,
	)

	configCmd.AddCommand(
		configShowCmd,
		configSetCmd,
		configResetCmd,
		configPathCmd,
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
