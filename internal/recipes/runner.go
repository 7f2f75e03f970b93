package recipes

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"

	"token-extensions-cli/internal/log"
	"token-extensions-cli/internal/solana"
	"token-extensions-cli/internal/tokeninfo"
)

// State tracks one run through the recipe pipeline.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateBuilding   State = "building"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Result is what a completed run produced.
type Result struct {
	Info *tokeninfo.TokenInfo

	// RecordPath is the written token-info file, empty when recording is
	// disabled or the write failed (a record-write failure never fails the
	// run; the token exists on chain regardless).
	RecordPath string

	Signatures []string
}

// Runner drives one recipe end to end: validate, build, then submit each
// transaction in order. Validation failures abort before any network call.
// Submission is strictly sequential; a failed transaction stops the run and
// nothing is recorded.
type Runner struct {
	rpc       solana.Client
	confirmer solana.Confirmer // nil skips confirmation waits
	store     *tokeninfo.Store // nil skips recording

	payer      sdk.PrivateKey
	network    string
	commitment string

	state  State
	logger zerolog.Logger
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithConfirmer makes the runner wait for each signature to reach the given
// commitment before sending the next transaction.
func WithConfirmer(c solana.Confirmer, commitment string) RunnerOption {
	return func(r *Runner) {
		r.confirmer = c
		r.commitment = commitment
	}
}

// WithStore makes the runner write a token-info record on success.
func WithStore(s *tokeninfo.Store) RunnerOption {
	return func(r *Runner) {
		r.store = s
	}
}

// NewRunner creates a runner submitting as payer on the named network.
func NewRunner(rpc solana.Client, payer sdk.PrivateKey, network string, opts ...RunnerOption) *Runner {
	r := &Runner{
		rpc:        rpc,
		payer:      payer,
		network:    network,
		commitment: solana.CommitmentConfirmed,
		state:      StateIdle,
		logger:     log.WithComponent("recipes"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State reports where the last run stopped.
func (r *Runner) State() State {
	return r.state
}

// Run executes one recipe. Params are validated first; an invalid set of
// params returns before the runner touches the network.
func (r *Runner) Run(ctx context.Context, typ Type, p *Params) (*Result, error) {
	r.state = StateValidating
	if err := Validate(typ, p); err != nil {
		r.state = StateFailed
		return nil, err
	}

	r.state = StateBuilding
	built, err := NewBuilder(r.rpc).Build(ctx, typ, p, r.payer.PublicKey())
	if err != nil {
		r.state = StateFailed
		return nil, err
	}

	r.state = StateSubmitting
	signatures := make([]string, 0, len(built.Plans))
	for _, plan := range built.Plans {
		sig, err := r.submit(ctx, plan)
		if err != nil {
			r.state = StateFailed
			return nil, fmt.Errorf("%s: %w", plan.Label, err)
		}
		signatures = append(signatures, sig)
		r.logger.Info().Str("step", plan.Label).Str("signature", sig).Msg("transaction submitted")
	}

	r.state = StateSucceeded
	result := &Result{
		Info:       r.tokenInfo(typ, p, built, signatures),
		Signatures: signatures,
	}

	if r.store != nil {
		path, err := r.store.Record(result.Info)
		if err != nil {
			// The token already exists on chain; losing the record must not
			// turn success into failure.
			r.logger.Warn().Err(err).Msg("token created but record could not be written")
		} else {
			result.RecordPath = path
		}
	}

	return result, nil
}

// submit assembles, signs and sends one transaction, then waits for
// confirmation when a confirmer is set. Each transaction gets a fresh
// blockhash.
func (r *Runner) submit(ctx context.Context, plan TxPlan) (string, error) {
	latest, err := r.rpc.GetLatestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch blockhash: %w", err)
	}
	blockhash, err := sdk.HashFromBase58(latest.Blockhash)
	if err != nil {
		return "", fmt.Errorf("parse blockhash %q: %w", latest.Blockhash, err)
	}

	tx, err := sdk.NewTransaction(plan.Instructions, blockhash, sdk.TransactionPayer(r.payer.PublicKey()))
	if err != nil {
		return "", fmt.Errorf("assemble transaction: %w", err)
	}

	signers := map[sdk.PublicKey]sdk.PrivateKey{
		r.payer.PublicKey(): r.payer,
	}
	for _, key := range plan.Signers {
		signers[key.PublicKey()] = key
	}
	if _, err := tx.Sign(func(key sdk.PublicKey) *sdk.PrivateKey {
		if priv, ok := signers[key]; ok {
			return &priv
		}
		return nil
	}); err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("serialize transaction: %w", err)
	}

	sig, err := r.rpc.SendTransaction(ctx, raw)
	if err != nil {
		return "", err
	}

	if r.confirmer != nil {
		if err := r.confirmer.WaitForSignature(ctx, sig, r.commitment); err != nil {
			return "", fmt.Errorf("confirm %s: %w", sig, err)
		}
	}
	return sig, nil
}

// tokenInfo assembles the record for a successful run. Only the fields the
// recipe actually set are populated.
func (r *Runner) tokenInfo(typ Type, p *Params, built *BuildResult, signatures []string) *tokeninfo.TokenInfo {
	info := &tokeninfo.TokenInfo{
		Name:          p.Name,
		Type:          string(typ),
		Network:       r.network,
		Mint:          built.Mint.String(),
		MintAuthority: built.MintAuthority.String(),
		Decimals:      uint8(p.Decimals),
		Signatures:    signatures,
		CreatedAt:     time.Now().UTC(),
	}

	if !built.TokenAccount.IsZero() {
		info.TokenAccount = built.TokenAccount.String()
	}

	switch typ {
	case TypeTransferFee:
		info.FeeBasisPoints = uint16(p.FeeBasisPoints)
		info.MaxFee = uint64(p.MaxFee)
	case TypeInterestBearing:
		info.InterestRate = int16(p.InterestRate)
	case TypeSoulbound:
		info.NonTransferable = true
	case TypeCloseAuthority:
		info.CloseAuthority = built.CloseAuthority.String()
	case TypePermanentDelegate:
		info.Delegate = built.Delegate.String()
	case TypeDefaultState:
		info.DefaultFrozen = p.DefaultFrozen
	case TypeTransferHook:
		if !built.HookProgram.IsZero() {
			info.HookProgram = built.HookProgram.String()
		}
	case TypeMetadata:
		info.Symbol = p.Symbol
		info.URI = p.URI
	case TypeScaledUI:
		info.Multiplier = p.Multiplier
	case TypeGroup:
		info.MaxSize = uint32(p.MaxSize)
	case TypeMember:
		info.Group = p.Group
	}

	if desc, ok := Lookup(typ); ok {
		if desc.Kind == KindMint && !p.SkipMint {
			info.Amount = uint64(p.Amount)
		}
		if desc.Kind == KindAccount {
			// Account recipes attach to an existing mint whose decimals are
			// not re-read; the record carries only what this run set.
			info.Decimals = 0
			info.Amount = 0
		}
	}

	return info
}
