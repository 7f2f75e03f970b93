package recipes

import (
	"token-extensions-cli/internal/config"
)

// Params carries every flag a recipe may consume. Numeric fields use wide
// signed types so out-of-range input survives until validation instead of
// wrapping at parse time.
type Params struct {
	Name   string
	Symbol string
	URI    string

	Decimals       int
	FeeBasisPoints int
	MaxFee         int64
	InterestRate   int
	Multiplier     float64
	MaxSize        int

	// Amount to mint in base units. Zero with SkipMint unset is rejected;
	// SkipMint creates the mint without a token account.
	Amount   int64
	SkipMint bool

	// Address parameters, base58.
	Mint           string // account recipes: existing mint
	Group          string // member recipe: group mint
	Delegate       string
	CloseAuthority string
	HookProgram    string

	DefaultFrozen bool
}

// NewParams returns params seeded from the configured defaults for the
// given recipe.
func NewParams(cfg *config.Config, typ Type) Params {
	p := Params{
		Decimals:       int(cfg.DefaultDecimals),
		FeeBasisPoints: int(cfg.DefaultFeeBasisPoints),
		MaxFee:         int64(cfg.DefaultMaxFee),
		InterestRate:   int(cfg.DefaultInterestRate),
		Multiplier:     1.0,
		MaxSize:        100,
		Amount:         int64(cfg.DefaultAmount),
		DefaultFrozen:  true,
	}
	if d, ok := Lookup(typ); ok && d.DefaultDecimals >= 0 {
		p.Decimals = d.DefaultDecimals
	}
	if typ == TypeSoulbound {
		p.Amount = 1
	}
	return p
}
