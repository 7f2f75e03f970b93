package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"token-extensions-cli/internal/config"
)

var airdropSol float64

var airdropCmd = &cobra.Command{
	Use:   "airdrop",
	Short: "Request SOL for the payer (devnet/localnet only)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Network != config.NetworkDevnet && cfg.Network != config.NetworkLocalnet {
			return fmt.Errorf("airdrops are only available on devnet and localnet, not %s", cfg.Network)
		}
		if airdropSol <= 0 {
			return fmt.Errorf("amount must be greater than zero, got %g", airdropSol)
		}

		payer, err := loadPayer()
		if err != nil {
			return err
		}

		lamports := uint64(airdropSol * lamportsPerSol)
		sig, err := newRPC().RequestAirdrop(cmd.Context(), payer.PublicKey().String(), lamports)
		if err != nil {
			return err
		}

		fmt.Printf("requested %s for %s\n", solString(lamports), payer.PublicKey())
		fmt.Printf("  signature: %s\n", sig)
		return nil
	},
}

func init() {
	airdropCmd.Flags().Float64Var(&airdropSol, "amount", 1, "amount in SOL")
}
