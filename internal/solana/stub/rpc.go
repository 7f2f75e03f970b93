package stub

import (
	"context"
	"fmt"

	"token-extensions-cli/internal/solana"
)

// RPCClient implements solana.Client for testing. Every call is counted so
// tests can assert that validation failures never reach the network.
type RPCClient struct {
	Calls int

	Health        string
	Balances      map[string]uint64
	Blockhash     string
	RentExemption map[int]uint64
	Accounts      map[string]*solana.AccountInfo
	Statuses      map[string]*solana.SignatureStatus

	// SendErr, when set, fails SendTransaction.
	SendErr error
	// Sent collects serialized transactions in submission order.
	Sent [][]byte

	nextSig int
}

// NewRPCClient creates a new stub RPC client with a healthy node and a
// usable blockhash.
func NewRPCClient() *RPCClient {
	return &RPCClient{
		Health:        "ok",
		Balances:      make(map[string]uint64),
		Blockhash:     "GfVcyD4kkTrj4bKc7WA9sZCin9JDbdT4Zkd3EittNR1W",
		RentExemption: make(map[int]uint64),
		Accounts:      make(map[string]*solana.AccountInfo),
		Statuses:      make(map[string]*solana.SignatureStatus),
	}
}

func (c *RPCClient) GetHealth(context.Context) (string, error) {
	c.Calls++
	return c.Health, nil
}

func (c *RPCClient) GetBalance(_ context.Context, pubkey string) (uint64, error) {
	c.Calls++
	return c.Balances[pubkey], nil
}

func (c *RPCClient) GetLatestBlockhash(context.Context) (*solana.LatestBlockhash, error) {
	c.Calls++
	return &solana.LatestBlockhash{Blockhash: c.Blockhash, LastValidBlockHeight: 1000}, nil
}

func (c *RPCClient) GetMinimumBalanceForRentExemption(_ context.Context, size int) (uint64, error) {
	c.Calls++
	if lamports, ok := c.RentExemption[size]; ok {
		return lamports, nil
	}
	// Roughly the real rent schedule so summaries look plausible.
	return uint64(890880 + 6960*size), nil
}

func (c *RPCClient) GetAccountInfo(_ context.Context, pubkey string) (*solana.AccountInfo, error) {
	c.Calls++
	return c.Accounts[pubkey], nil
}

func (c *RPCClient) SendTransaction(_ context.Context, signedTx []byte) (string, error) {
	c.Calls++
	if c.SendErr != nil {
		return "", c.SendErr
	}
	c.Sent = append(c.Sent, signedTx)
	c.nextSig++
	return fmt.Sprintf("StubSignature%d", c.nextSig), nil
}

func (c *RPCClient) GetSignatureStatuses(_ context.Context, signatures ...string) ([]*solana.SignatureStatus, error) {
	c.Calls++
	statuses := make([]*solana.SignatureStatus, len(signatures))
	for i, sig := range signatures {
		if s, ok := c.Statuses[sig]; ok {
			statuses[i] = s
		} else {
			statuses[i] = &solana.SignatureStatus{ConfirmationStatus: solana.CommitmentConfirmed}
		}
	}
	return statuses, nil
}

func (c *RPCClient) RequestAirdrop(_ context.Context, pubkey string, lamports uint64) (string, error) {
	c.Calls++
	c.Balances[pubkey] += lamports
	c.nextSig++
	return fmt.Sprintf("StubAirdrop%d", c.nextSig), nil
}

// Confirmer implements solana.Confirmer and always succeeds.
type Confirmer struct {
	Waited []string
}

func (c *Confirmer) WaitForSignature(_ context.Context, signature string, _ string) error {
	c.Waited = append(c.Waited, signature)
	return nil
}
