package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"token-extensions-cli/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive first-run configuration",
	RunE: func(*cobra.Command, []string) error {
		networks := config.Networks()
		current := 0
		for i, n := range networks {
			if n == cfg.Network {
				current = i
			}
		}
		sel := promptui.Select{
			Label:     "Network",
			Items:     networks,
			CursorPos: current,
		}
		_, network, err := sel.Run()
		if err != nil {
			return err
		}
		cfg.Network = network

		walletPrompt := promptui.Prompt{
			Label:     "Wallet keypair path",
			Default:   cfg.WalletPath,
			AllowEdit: true,
			Validate:  nonEmpty,
		}
		if cfg.WalletPath, err = walletPrompt.Run(); err != nil {
			return err
		}

		outputPrompt := promptui.Prompt{
			Label:     "Token info output directory",
			Default:   cfg.OutputDir,
			AllowEdit: true,
			Validate:  nonEmpty,
		}
		if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
			return err
		}

		rpcPrompt := promptui.Prompt{
			Label:   "Custom RPC URL (empty for the cluster default)",
			Default: cfg.RPCUrl,
		}
		if cfg.RPCUrl, err = rpcPrompt.Run(); err != nil {
			return err
		}

		saveConfig()
		fmt.Printf("configuration written to %s\n", cfgPath)
		fmt.Printf("  network:  %s\n", cfg.Network)
		fmt.Printf("  endpoint: %s\n", cfg.RPCEndpoint())
		return nil
	},
}
