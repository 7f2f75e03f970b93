package solana

import "context"

// Client defines the RPC surface the CLI uses. One command invocation
// performs a short sequence of calls against a single endpoint; every call
// is a single best-effort attempt.
type Client interface {
	// GetHealth reports node health ("ok" on success).
	GetHealth(ctx context.Context) (string, error)

	// GetBalance returns the lamport balance of an account.
	GetBalance(ctx context.Context, pubkey string) (uint64, error)

	// GetLatestBlockhash returns a recent blockhash for transaction assembly.
	GetLatestBlockhash(ctx context.Context) (*LatestBlockhash, error)

	// GetMinimumBalanceForRentExemption returns the lamports required to
	// make an account of the given size rent exempt.
	GetMinimumBalanceForRentExemption(ctx context.Context, size int) (uint64, error)

	// GetAccountInfo retrieves account info by public key. Returns nil when
	// the account does not exist.
	GetAccountInfo(ctx context.Context, pubkey string) (*AccountInfo, error)

	// SendTransaction submits a signed, serialized transaction and returns
	// its signature.
	SendTransaction(ctx context.Context, signedTx []byte) (string, error)

	// GetSignatureStatuses returns confirmation status per signature.
	// Entries are nil for unknown signatures.
	GetSignatureStatuses(ctx context.Context, signatures ...string) ([]*SignatureStatus, error)

	// RequestAirdrop requests lamports for an account (devnet/localnet only).
	RequestAirdrop(ctx context.Context, pubkey string, lamports uint64) (string, error)
}

// Confirmer waits for a submitted transaction to reach a commitment level.
type Confirmer interface {
	// WaitForSignature blocks until the signature reaches the commitment
	// or ctx expires.
	WaitForSignature(ctx context.Context, signature string, commitment string) error
}
