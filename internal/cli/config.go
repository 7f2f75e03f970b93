package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"token-extensions-cli/internal/config"
	"token-extensions-cli/internal/log"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the stored configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(*cobra.Command, []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one configuration key and persist the file",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		saveConfig()
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in defaults",
	RunE: func(*cobra.Command, []string) error {
		cfg = config.Default()
		saveConfig()
		fmt.Println("configuration reset to defaults")
		return nil
	},
}

// saveConfig persists the current configuration. A write failure is reported
// but never fails the command; the change still applies to this invocation.
func saveConfig() {
	if err := config.Save(cfgPath, cfg); err != nil {
		log.Warn().Err(err).Str("path", cfgPath).Msg("configuration could not be saved")
	}
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(*cobra.Command, []string) error {
		abs, err := filepath.Abs(cfgPath)
		if err != nil {
			return err
		}
		fmt.Println(abs)
		return nil
	},
}
