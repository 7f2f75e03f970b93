package recipes

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	sdk "github.com/gagliardetto/solana-go"

	"token-extensions-cli/internal/solana/stub"
	"token-extensions-cli/internal/tokeninfo"
)

func TestRun_ValidationFailureMakesNoNetworkCalls(t *testing.T) {
	rpc := stub.NewRPCClient()
	runner := NewRunner(rpc, sdk.NewWallet().PrivateKey, "devnet")

	p := baseParams(TypeTransferFee)
	p.Decimals = 12

	_, err := runner.Run(context.Background(), TypeTransferFee, p)
	if !errors.Is(err, ErrDecimalsRange) {
		t.Fatalf("expected ErrDecimalsRange, got %v", err)
	}
	if rpc.Calls != 0 {
		t.Errorf("validation failure must not touch the network, saw %d calls", rpc.Calls)
	}
	if runner.State() != StateFailed {
		t.Errorf("expected failed state, got %s", runner.State())
	}
}

func TestRun_TransferFeeSuccess(t *testing.T) {
	rpc := stub.NewRPCClient()
	confirmer := &stub.Confirmer{}
	store := tokeninfo.NewStore(t.TempDir())
	runner := NewRunner(rpc, sdk.NewWallet().PrivateKey, "devnet",
		WithConfirmer(confirmer, "confirmed"),
		WithStore(store),
	)

	p := baseParams(TypeTransferFee)
	p.Name = "Fee Token"
	p.Decimals = 6
	p.FeeBasisPoints = 50
	p.Amount = 10000

	result, err := runner.Run(context.Background(), TypeTransferFee, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if runner.State() != StateSucceeded {
		t.Errorf("expected succeeded state, got %s", runner.State())
	}

	if len(result.Signatures) != 2 {
		t.Fatalf("expected 2 signatures, got %d", len(result.Signatures))
	}
	if len(rpc.Sent) != 2 {
		t.Errorf("expected 2 submitted transactions, got %d", len(rpc.Sent))
	}
	if len(confirmer.Waited) != 2 {
		t.Errorf("each transaction must be confirmed before the next, got %d waits", len(confirmer.Waited))
	}

	info := result.Info
	if info.Type != "transfer-fee" {
		t.Errorf("expected type transfer-fee, got %s", info.Type)
	}
	if info.FeeBasisPoints != 50 {
		t.Errorf("expected feeBasisPoints 50, got %d", info.FeeBasisPoints)
	}
	if info.Decimals != 6 {
		t.Errorf("expected decimals 6, got %d", info.Decimals)
	}
	if info.Amount != 10000 {
		t.Errorf("expected amount 10000, got %d", info.Amount)
	}
	if info.Mint == "" || info.TokenAccount == "" {
		t.Error("record must carry mint and token account")
	}
	if info.Network != "devnet" {
		t.Errorf("expected network devnet, got %s", info.Network)
	}

	if result.RecordPath == "" {
		t.Fatal("expected a written record")
	}
	if _, err := os.Stat(result.RecordPath); err != nil {
		t.Errorf("record file must exist: %v", err)
	}
}

func TestRun_SoulboundRecord(t *testing.T) {
	rpc := stub.NewRPCClient()
	runner := NewRunner(rpc, sdk.NewWallet().PrivateKey, "devnet")

	p := baseParams(TypeSoulbound)
	p.Name = "Badge"

	result, err := runner.Run(context.Background(), TypeSoulbound, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	info := result.Info
	if !info.NonTransferable {
		t.Error("soulbound record must be marked non-transferable")
	}
	if info.Decimals != 0 {
		t.Errorf("expected 0 decimals, got %d", info.Decimals)
	}
	if info.Amount != 1 {
		t.Errorf("expected amount 1, got %d", info.Amount)
	}
}

func TestRun_SendFailureStopsRunAndRecordsNothing(t *testing.T) {
	rpc := stub.NewRPCClient()
	rpc.SendErr = errors.New("Transaction simulation failed: insufficient funds")
	dir := t.TempDir()
	runner := NewRunner(rpc, sdk.NewWallet().PrivateKey, "devnet",
		WithStore(tokeninfo.NewStore(dir)),
	)

	_, err := runner.Run(context.Background(), TypeInterestBearing, baseParams(TypeInterestBearing))
	if err == nil {
		t.Fatal("expected submission error")
	}
	if runner.State() != StateFailed {
		t.Errorf("expected failed state, got %s", runner.State())
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("failed run must not write records, found %d files", len(entries))
	}
}

func TestRun_WithoutStoreSkipsRecording(t *testing.T) {
	runner := NewRunner(stub.NewRPCClient(), sdk.NewWallet().PrivateKey, "localnet")

	result, err := runner.Run(context.Background(), TypePausable, baseParams(TypePausable))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.RecordPath != "" {
		t.Errorf("no store configured, got record path %s", result.RecordPath)
	}
}

func TestRun_RecordWriteFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "out")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := NewRunner(stub.NewRPCClient(), sdk.NewWallet().PrivateKey, "devnet",
		WithStore(tokeninfo.NewStore(blocked)), // a file, so MkdirAll fails
	)

	result, err := runner.Run(context.Background(), TypeScaledUI, baseParams(TypeScaledUI))
	if err != nil {
		t.Fatalf("record failure must not fail the run: %v", err)
	}
	if result.RecordPath != "" {
		t.Error("record path must be empty when the write failed")
	}
	if len(result.Signatures) == 0 {
		t.Error("submitted signatures must still be reported")
	}
}

func TestRun_AccountRecipeRecord(t *testing.T) {
	rpc := stub.NewRPCClient()
	runner := NewRunner(rpc, sdk.NewWallet().PrivateKey, "devnet")

	p := baseParams(TypeCpiGuard)
	p.Mint = sdk.NewWallet().PublicKey().String()

	result, err := runner.Run(context.Background(), TypeCpiGuard, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Signatures) != 2 {
		t.Fatalf("expected create + enable signatures, got %d", len(result.Signatures))
	}
	if result.Info.Mint != p.Mint {
		t.Error("record must reference the existing mint")
	}
	if result.Info.TokenAccount == "" {
		t.Error("record must carry the created token account")
	}
	if result.Info.Amount != 0 {
		t.Error("account recipes mint nothing")
	}
}
