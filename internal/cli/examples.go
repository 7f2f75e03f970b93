package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show worked example invocations",
	Run: func(*cobra.Command, []string) {
		fmt.Print(examplesText)
	},
}

const examplesText = `examples:

  # first-run setup and environment check
  token-cli setup
  token-cli validate

  # mint with a 0.5% transfer fee capped at 5000 base units
  token-cli create transfer-fee --name "Fee Token" --fee-basis-points 50 --max-fee 5000

  # interest-bearing mint at 2% APR, keep the configured decimals
  token-cli create interest-bearing --name "Bond" --interest-rate 200

  # non-transferable badge (0 decimals, supply of 1)
  token-cli create soulbound --name "Conference Badge 2026"

  # mint with on-chain metadata
  token-cli create metadata --name "Art Token" --symbol ART --uri https://example.com/art.json

  # token group and a member
  token-cli create group --name "Collection" --max-size 100
  token-cli create member --name "Item #1" --group <GROUP_MINT>

  # token account requiring memos on an existing mint
  token-cli create memo-transfers --name "Memo Account" --mint <MINT>

  # interactive flow
  token-cli wizard

  # inspect what was created
  token-cli list
  token-cli list --type transfer-fee

  # configuration
  token-cli config show
  token-cli config set network localnet
  token-cli config reset
`
