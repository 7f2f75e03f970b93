// Package recipes maps each named token recipe to its validation rules and
// its fixed Token-2022 instruction sequence, and runs the resulting
// transactions against a cluster.
package recipes

// Type tags one recipe; the same tag is recorded in token-info files.
type Type string

// Mint recipes create a new mint carrying one extension; account recipes
// create a token account for an existing mint.
const (
	TypeTransferFee       Type = "transfer-fee"
	TypeInterestBearing   Type = "interest-bearing"
	TypeSoulbound         Type = "soulbound"
	TypeCloseAuthority    Type = "close-authority"
	TypePermanentDelegate Type = "permanent-delegate"
	TypeDefaultState      Type = "default-state"
	TypeTransferHook      Type = "transfer-hook"
	TypeMetadata          Type = "metadata"
	TypeScaledUI          Type = "scaled-ui"
	TypePausable          Type = "pausable"
	TypeGroup             Type = "group"
	TypeMember            Type = "member"

	TypeMemoTransfers  Type = "memo-transfers"
	TypeCpiGuard       Type = "cpi-guard"
	TypeImmutableOwner Type = "immutable-owner"
)

// Kind distinguishes mint-creating from account-creating recipes.
type Kind int

const (
	KindMint Kind = iota
	KindAccount
)

// Descriptor describes one recipe for dispatch, help text and the wizard.
type Descriptor struct {
	Type    Type
	Kind    Kind
	Summary string

	// DefaultDecimals overrides the configured default when >= 0
	// (soulbound badges default to zero decimals).
	DefaultDecimals int

	// Flags the recipe consumes beyond the shared ones.
	NeedsMetadataFields bool
	NeedsMint           bool // account recipes operate on an existing mint
}

// Catalog is the fixed recipe enumeration in display order.
var Catalog = []Descriptor{
	{Type: TypeTransferFee, Kind: KindMint, Summary: "mint charging a fee in basis points on every transfer", DefaultDecimals: -1},
	{Type: TypeInterestBearing, Kind: KindMint, Summary: "mint whose displayed amount accrues interest", DefaultDecimals: -1},
	{Type: TypeSoulbound, Kind: KindMint, Summary: "non-transferable badge token", DefaultDecimals: 0},
	{Type: TypeCloseAuthority, Kind: KindMint, Summary: "mint that can be closed once supply is zero", DefaultDecimals: -1},
	{Type: TypePermanentDelegate, Kind: KindMint, Summary: "mint with a permanent transfer/burn delegate", DefaultDecimals: -1},
	{Type: TypeDefaultState, Kind: KindMint, Summary: "mint whose new accounts start frozen", DefaultDecimals: -1},
	{Type: TypeTransferHook, Kind: KindMint, Summary: "mint invoking a hook program on every transfer", DefaultDecimals: -1},
	{Type: TypeMetadata, Kind: KindMint, Summary: "mint with on-chain name, symbol and URI", DefaultDecimals: -1, NeedsMetadataFields: true},
	{Type: TypeScaledUI, Kind: KindMint, Summary: "mint with a scaled display multiplier", DefaultDecimals: -1},
	{Type: TypePausable, Kind: KindMint, Summary: "mint whose transfers can be paused", DefaultDecimals: -1},
	{Type: TypeGroup, Kind: KindMint, Summary: "mint acting as a token group", DefaultDecimals: 0},
	{Type: TypeMember, Kind: KindMint, Summary: "mint joining an existing token group", DefaultDecimals: 0},
	{Type: TypeMemoTransfers, Kind: KindAccount, Summary: "token account requiring memos on inbound transfers", DefaultDecimals: -1, NeedsMint: true},
	{Type: TypeCpiGuard, Kind: KindAccount, Summary: "token account rejecting privileged CPI actions", DefaultDecimals: -1, NeedsMint: true},
	{Type: TypeImmutableOwner, Kind: KindAccount, Summary: "token account whose owner can never change", DefaultDecimals: -1, NeedsMint: true},
}

// Lookup returns the descriptor for a type tag.
func Lookup(typ Type) (Descriptor, bool) {
	for _, d := range Catalog {
		if d.Type == typ {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Types lists all recipe type tags in catalog order.
func Types() []string {
	names := make([]string, len(Catalog))
	for i, d := range Catalog {
		names[i] = string(d.Type)
	}
	return names
}
