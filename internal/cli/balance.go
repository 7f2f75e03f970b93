package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the payer's SOL balance",
	RunE: func(cmd *cobra.Command, _ []string) error {
		payer, err := loadPayer()
		if err != nil {
			return err
		}

		lamports, err := newRPC().GetBalance(cmd.Context(), payer.PublicKey().String())
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s\n", payer.PublicKey(), solString(lamports))
		return nil
	},
}
