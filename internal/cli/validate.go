package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"token-extensions-cli/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the environment is ready for token creation",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		failed := false

		check := func(name string, err error) {
			if err != nil {
				failed = true
				fmt.Printf("  ✗ %-16s %v\n", name, err)
				return
			}
			fmt.Printf("  ✓ %-16s ok\n", name)
		}

		fmt.Printf("network %s (%s)\n", cfg.Network, cfg.RPCEndpoint())

		var cfgErr error
		if !config.ValidNetwork(cfg.Network) {
			cfgErr = fmt.Errorf("unknown network %q", cfg.Network)
		}
		check("config", cfgErr)

		payer, walletErr := loadPayer()
		check("wallet", walletErr)

		rpc := newRPC()
		health, healthErr := rpc.GetHealth(ctx)
		if healthErr == nil && health != "ok" {
			healthErr = fmt.Errorf("node reports %q", health)
		}
		check("rpc", healthErr)

		if walletErr == nil && healthErr == nil {
			lamports, err := rpc.GetBalance(ctx, payer.PublicKey().String())
			if err == nil && lamports == 0 {
				err = errors.New("payer has no SOL; fund the wallet or run airdrop")
			}
			if err == nil {
				fmt.Printf("  ✓ %-16s %s\n", "balance", solString(lamports))
			} else {
				failed = true
				fmt.Printf("  ✗ %-16s %v\n", "balance", err)
			}
		}

		if failed {
			return errors.New("environment validation failed")
		}
		fmt.Println("environment ready")
		return nil
	},
}
