package cli

import (
	"testing"

	"token-extensions-cli/internal/config"
	"token-extensions-cli/internal/recipes"
)

func TestCreateCommands_OnePerRecipe(t *testing.T) {
	for _, desc := range recipes.Catalog {
		found := false
		for _, sub := range createCmd.Commands() {
			if sub.Name() == string(desc.Type) {
				found = true
			}
		}
		if !found {
			t.Errorf("missing create subcommand for %s", desc.Type)
		}
	}
}

func TestApplyFlags_OverridesOnlyChangedFlags(t *testing.T) {
	desc, _ := recipes.Lookup(recipes.TypeTransferFee)
	cmd := newCreateCommand(desc)
	if err := cmd.Flags().Set("name", "Fee Token"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("fee-basis-points", "75"); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	p := recipes.NewParams(cfg, recipes.TypeTransferFee)
	if err := applyFlags(cmd, &p); err != nil {
		t.Fatal(err)
	}

	if p.FeeBasisPoints != 75 {
		t.Errorf("expected overridden fee 75, got %d", p.FeeBasisPoints)
	}
	if p.Decimals != int(cfg.DefaultDecimals) {
		t.Errorf("unset decimals flag must keep the configured default, got %d", p.Decimals)
	}
	if p.MaxFee != int64(cfg.DefaultMaxFee) {
		t.Errorf("unset max-fee flag must keep the configured default, got %d", p.MaxFee)
	}
}

func TestRegisterRecipeFlags_AccountRecipeHasNoMintFlags(t *testing.T) {
	desc, _ := recipes.Lookup(recipes.TypeCpiGuard)
	cmd := newCreateCommand(desc)

	if cmd.Flags().Lookup("amount") != nil {
		t.Error("account recipes must not expose --amount")
	}
	if cmd.Flags().Lookup("mint") == nil {
		t.Error("account recipes must expose --mint")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 24); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}
	if got := truncate("a very long token name indeed", 10); len([]rune(got)) != 10 {
		t.Errorf("expected 10 runes, got %q", got)
	}
}

func TestSolString(t *testing.T) {
	if got := solString(1_500_000_000); got != "1.500000000 SOL" {
		t.Errorf("unexpected formatting: %q", got)
	}
}
