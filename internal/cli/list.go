package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"token-extensions-cli/internal/tokeninfo"
)

var listType string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded token creations",
	RunE: func(*cobra.Command, []string) error {
		infos, err := tokeninfo.NewStore(cfg.OutputDir).List(listType)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("no token records found")
			return nil
		}

		for _, info := range infos {
			fmt.Printf("%-24s %-18s %-13s %s\n",
				truncate(info.Name, 24), info.Type, info.Network, info.Mint)
			if info.TokenAccount != "" {
				fmt.Printf("  %-22s %-32s account %s\n", "", "", info.TokenAccount)
			}
		}
		fmt.Printf("\n%d record(s)\n", len(infos))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "only show records of this recipe type")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
