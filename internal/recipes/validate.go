package recipes

import (
	"errors"
	"fmt"

	sdk "github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"token-extensions-cli/internal/wallet"
)

// Validation sentinels. Each names the constraint that failed; commands
// report them before any network call is attempted.
var (
	ErrUnknownRecipe      = errors.New("unknown recipe")
	ErrNameRequired       = errors.New("name is required")
	ErrDecimalsRange      = errors.New("decimals must be between 0 and 9")
	ErrFeeBasisPoints     = errors.New("feeBasisPoints must be between 0 and 10000")
	ErrMaxFeeNegative     = errors.New("maxFee must not be negative")
	ErrInterestRateRange  = errors.New("interestRate must be between -10000 and 10000")
	ErrAmountNotPositive  = errors.New("amount must be greater than zero")
	ErrMultiplierRange    = errors.New("multiplier must be greater than zero")
	ErrMaxSizeRange       = errors.New("maxSize must be greater than zero")
	ErrInvalidAddress     = errors.New("invalid base58 address")
	ErrAddressNotOnCurve  = errors.New("address is not on the ed25519 curve")
	ErrMintRequired       = errors.New("mint address is required")
	ErrGroupRequired      = errors.New("group mint address is required")
	ErrMetadataIncomplete = errors.New("metadata requires name, symbol and uri")
)

// Validate checks params against the recipe's documented constraints.
// It performs no I/O.
func Validate(typ Type, p *Params) error {
	desc, ok := Lookup(typ)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRecipe, typ)
	}

	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Decimals < 0 || p.Decimals > 9 {
		return fmt.Errorf("%w (got %d)", ErrDecimalsRange, p.Decimals)
	}
	if !p.SkipMint && desc.Kind == KindMint {
		if p.Amount <= 0 {
			return fmt.Errorf("%w (got %d)", ErrAmountNotPositive, p.Amount)
		}
	}

	switch typ {
	case TypeTransferFee:
		if p.FeeBasisPoints < 0 || p.FeeBasisPoints > 10000 {
			return fmt.Errorf("%w (got %d)", ErrFeeBasisPoints, p.FeeBasisPoints)
		}
		if p.MaxFee < 0 {
			return fmt.Errorf("%w (got %d)", ErrMaxFeeNegative, p.MaxFee)
		}
	case TypeInterestBearing:
		if p.InterestRate < -10000 || p.InterestRate > 10000 {
			return fmt.Errorf("%w (got %d)", ErrInterestRateRange, p.InterestRate)
		}
	case TypeScaledUI:
		if p.Multiplier <= 0 {
			return fmt.Errorf("%w (got %g)", ErrMultiplierRange, p.Multiplier)
		}
	case TypeGroup:
		if p.MaxSize <= 0 {
			return fmt.Errorf("%w (got %d)", ErrMaxSizeRange, p.MaxSize)
		}
	case TypeMember:
		if p.Group == "" {
			return ErrGroupRequired
		}
	case TypeMetadata:
		if p.Symbol == "" || p.URI == "" {
			return ErrMetadataIncomplete
		}
	}

	if desc.NeedsMint && p.Mint == "" {
		return ErrMintRequired
	}

	// Authorities that sign must be wallet keys, so they are additionally
	// checked against the curve; mints, groups and program IDs may be PDAs.
	curveChecked := map[string]bool{"delegate": true, "closeAuthority": true}

	for field, addr := range map[string]string{
		"mint":           p.Mint,
		"group":          p.Group,
		"delegate":       p.Delegate,
		"closeAuthority": p.CloseAuthority,
		"hookProgram":    p.HookProgram,
	} {
		if addr == "" {
			continue
		}
		raw, err := base58.Decode(addr)
		if err != nil || len(raw) != 32 {
			return fmt.Errorf("%w: %s %q", ErrInvalidAddress, field, addr)
		}
		if curveChecked[field] && !wallet.IsOnCurve(sdk.PublicKeyFromBytes(raw)) {
			return fmt.Errorf("%w: %s %q", ErrAddressNotOnCurve, field, addr)
		}
	}

	return nil
}
