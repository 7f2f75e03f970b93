package cli

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/gagliardetto/solana-go"

	"token-extensions-cli/internal/recipes"
	"token-extensions-cli/internal/solana"
	"token-extensions-cli/internal/tokeninfo"
	"token-extensions-cli/internal/wallet"
)

const lamportsPerSol = 1_000_000_000

// loadPayer loads the configured wallet keypair.
func loadPayer() (sdk.PrivateKey, error) {
	w, err := wallet.Load(cfg.WalletPath)
	if err != nil {
		return nil, err
	}
	return w.PrivateKey, nil
}

// newRPC creates an RPC client for the configured endpoint.
func newRPC() solana.Client {
	return solana.NewHTTPClient(cfg.RPCEndpoint())
}

// newRunner wires a recipe runner from the current configuration:
// confirmation over websocket when enabled, record writing when enabled.
func newRunner(rpc solana.Client, payer sdk.PrivateKey) *recipes.Runner {
	opts := []recipes.RunnerOption{}
	if cfg.ConfirmTransactions {
		opts = append(opts, recipes.WithConfirmer(newConfirmer(rpc), solana.CommitmentConfirmed))
	}
	if cfg.SaveTokenInfo {
		opts = append(opts, recipes.WithStore(tokeninfo.NewStore(cfg.OutputDir)))
	}
	return recipes.NewRunner(rpc, payer, cfg.Network, opts...)
}

// newConfirmer prefers signatureSubscribe over the derived WebSocket
// endpoint, polling getSignatureStatuses instead when the endpoint cannot
// be dialed (or yields no ws/wss scheme at all).
func newConfirmer(rpc solana.Client) solana.Confirmer {
	polling := solana.NewPollingConfirmer(rpc, 0)
	if ws := cfg.WSEndpoint(); strings.HasPrefix(ws, "ws") {
		return solana.NewFallbackConfirmer(solana.NewWSConfirmer(ws, nil), polling)
	}
	return polling
}

// runRecipe drives one recipe end to end and prints the result summary.
func runRecipe(ctx context.Context, typ recipes.Type, p *recipes.Params) error {
	payer, err := loadPayer()
	if err != nil {
		return err
	}

	runner := newRunner(newRPC(), payer)
	result, err := runner.Run(ctx, typ, p)
	if err != nil {
		return err
	}

	printSummary(typ, result)
	return nil
}

func printSummary(typ recipes.Type, result *recipes.Result) {
	info := result.Info
	fmt.Printf("created %s token %q\n", typ, info.Name)
	fmt.Printf("  network:       %s\n", info.Network)
	fmt.Printf("  mint:          %s\n", info.Mint)
	if info.TokenAccount != "" {
		fmt.Printf("  token account: %s\n", info.TokenAccount)
	}
	if info.Amount > 0 {
		fmt.Printf("  minted:        %d (decimals %d)\n", info.Amount, info.Decimals)
	}
	for i, sig := range result.Signatures {
		fmt.Printf("  signature %d:   %s\n", i+1, sig)
	}
	if result.RecordPath != "" {
		fmt.Printf("  record:        %s\n", result.RecordPath)
	}
}

func solString(lamports uint64) string {
	return fmt.Sprintf("%.9f SOL", float64(lamports)/lamportsPerSol)
}
