package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.json"))

	if cfg.Network != NetworkDevnet {
		t.Errorf("expected devnet default, got %s", cfg.Network)
	}
	if cfg.DefaultDecimals != 9 {
		t.Errorf("expected default decimals 9, got %d", cfg.DefaultDecimals)
	}
	if !cfg.ConfirmTransactions || !cfg.SaveTokenInfo {
		t.Error("expected behavior toggles on by default")
	}
}

func TestLoad_MalformedFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.Network != NetworkDevnet {
		t.Errorf("expected defaults for malformed config, got network %s", cfg.Network)
	}
}

func TestLoad_PartialOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := `{"network":"testnet","defaultDecimals":6,"someFutureOption":true}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.Network != NetworkTestnet {
		t.Errorf("expected testnet, got %s", cfg.Network)
	}
	if cfg.DefaultDecimals != 6 {
		t.Errorf("expected decimals 6, got %d", cfg.DefaultDecimals)
	}
	// Untouched keys keep defaults; unknown keys are ignored.
	if cfg.DefaultFeeBasisPoints != 50 {
		t.Errorf("expected fee bps default 50, got %d", cfg.DefaultFeeBasisPoints)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Network = NetworkLocalnet
	cfg.DefaultAmount = 42
	cfg.ShowDetailedOutput = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := Load(path)
	if loaded.Network != NetworkLocalnet {
		t.Errorf("expected localnet, got %s", loaded.Network)
	}
	if loaded.DefaultAmount != 42 {
		t.Errorf("expected amount 42, got %d", loaded.DefaultAmount)
	}
	if !loaded.ShowDetailedOutput {
		t.Error("expected showDetailedOutput true")
	}
}

func TestRPCEndpoint_OverrideWins(t *testing.T) {
	cfg := Default()
	if cfg.RPCEndpoint() != "https://api.devnet.solana.com" {
		t.Errorf("unexpected devnet endpoint %s", cfg.RPCEndpoint())
	}

	cfg.RPCUrl = "http://localhost:1234"
	if cfg.RPCEndpoint() != "http://localhost:1234" {
		t.Errorf("expected override, got %s", cfg.RPCEndpoint())
	}
}

func TestWSEndpoint_Derivation(t *testing.T) {
	cfg := Default()
	if got := cfg.WSEndpoint(); got != "wss://api.devnet.solana.com" {
		t.Errorf("unexpected ws endpoint %s", got)
	}

	cfg.Network = NetworkLocalnet
	if got := cfg.WSEndpoint(); got != "ws://127.0.0.1:8900" {
		t.Errorf("expected localnet ws on 8900, got %s", got)
	}
}

func TestSet_ValidatesPerKey(t *testing.T) {
	cfg := Default()

	if err := cfg.Set("network", "devnet"); err != nil {
		t.Errorf("Set network: %v", err)
	}
	if err := cfg.Set("network", "betanet"); err == nil {
		t.Error("expected error for unknown network")
	}
	if err := cfg.Set("defaultDecimals", "6"); err != nil || cfg.DefaultDecimals != 6 {
		t.Errorf("Set defaultDecimals: %v (got %d)", err, cfg.DefaultDecimals)
	}
	if err := cfg.Set("defaultDecimals", "lots"); err == nil {
		t.Error("expected error for non-numeric decimals")
	}
	if err := cfg.Set("defaultInterestRate", "-300"); err != nil || cfg.DefaultInterestRate != -300 {
		t.Errorf("Set defaultInterestRate: %v (got %d)", err, cfg.DefaultInterestRate)
	}
	if err := cfg.Set("confirmTransactions", "false"); err != nil || cfg.ConfirmTransactions {
		t.Errorf("Set confirmTransactions: %v", err)
	}
	if err := cfg.Set("nonsense", "1"); err == nil {
		t.Error("expected error for unknown key")
	}
}
