// Package token2022 is a thin Go binding for the SPL Token-2022 program's
// instruction wire format. It encodes the instruction and extension
// initialization payloads the recipes need and computes the account sizes
// the on-chain program expects for each extension combination. Transaction
// assembly, signing and key handling are left to solana-go.
package token2022

import (
	"github.com/gagliardetto/solana-go"
)

// Program IDs the builders target.
var (
	// ProgramID is the SPL Token-2022 program.
	ProgramID = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	// AssociatedTokenProgramID is the associated token account program.
	AssociatedTokenProgramID = solana.MustPublicKeyFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
)

// ExtensionType identifies a Token-2022 extension in the TLV account layout.
type ExtensionType uint16

const (
	ExtensionTransferFeeConfig      ExtensionType = 1
	ExtensionMintCloseAuthority     ExtensionType = 3
	ExtensionDefaultAccountState    ExtensionType = 6
	ExtensionImmutableOwner         ExtensionType = 7
	ExtensionMemoTransfer           ExtensionType = 8
	ExtensionNonTransferable        ExtensionType = 9
	ExtensionInterestBearingConfig  ExtensionType = 10
	ExtensionCpiGuard               ExtensionType = 11
	ExtensionPermanentDelegate      ExtensionType = 12
	ExtensionTransferHook           ExtensionType = 14
	ExtensionMetadataPointer        ExtensionType = 18
	ExtensionTokenMetadata          ExtensionType = 19
	ExtensionGroupPointer           ExtensionType = 20
	ExtensionTokenGroup             ExtensionType = 21
	ExtensionGroupMemberPointer     ExtensionType = 22
	ExtensionTokenGroupMember       ExtensionType = 23
	ExtensionScaledUiAmountConfig   ExtensionType = 25
	ExtensionPausableConfig         ExtensionType = 26
)

// Account layout constants.
const (
	// MintBaseLen is the packed size of a mint without extensions.
	MintBaseLen = 82
	// AccountBaseLen is the packed size of a token account without extensions.
	AccountBaseLen = 165
	// accountTypeLen is the discriminant byte appended after the base layout
	// when any extension is present.
	accountTypeLen = 1
	// tlvHeaderLen is the per-extension type (u16) + length (u16) header.
	tlvHeaderLen = 4
)

// extensionLen is the packed state size of each fixed-size extension.
var extensionLen = map[ExtensionType]int{
	ExtensionTransferFeeConfig:     108,
	ExtensionMintCloseAuthority:    32,
	ExtensionDefaultAccountState:   1,
	ExtensionImmutableOwner:        0,
	ExtensionMemoTransfer:          1,
	ExtensionNonTransferable:       0,
	ExtensionInterestBearingConfig: 52,
	ExtensionCpiGuard:              1,
	ExtensionPermanentDelegate:     32,
	ExtensionTransferHook:          64,
	ExtensionMetadataPointer:       64,
	ExtensionGroupPointer:          64,
	ExtensionTokenGroup:            72,
	ExtensionGroupMemberPointer:    64,
	ExtensionTokenGroupMember:      68,
	ExtensionScaledUiAmountConfig:  56,
	ExtensionPausableConfig:        33,
}

// ExtensionStateLen returns the packed state size of a fixed-size extension.
func ExtensionStateLen(ext ExtensionType) int {
	return extensionLen[ext]
}

// MintLen returns the account size for a mint initialized with the given
// extensions. A mint with extensions is padded to the token account size
// before the account type byte and TLV entries.
func MintLen(extensions ...ExtensionType) int {
	if len(extensions) == 0 {
		return MintBaseLen
	}
	size := AccountBaseLen + accountTypeLen
	for _, ext := range extensions {
		size += tlvHeaderLen + extensionLen[ext]
	}
	return size
}

// AccountLen returns the account size for a token account initialized with
// the given extensions.
func AccountLen(extensions ...ExtensionType) int {
	if len(extensions) == 0 {
		return AccountBaseLen
	}
	size := AccountBaseLen + accountTypeLen
	for _, ext := range extensions {
		size += tlvHeaderLen + extensionLen[ext]
	}
	return size
}

// MetadataLen returns the variable TLV size the token-metadata extension
// occupies once initialized: update authority + mint, three borsh strings,
// and the (empty) additional-metadata vector, plus the TLV header.
func MetadataLen(name, symbol, uri string) int {
	const fixed = 32 + 32 // update authority + mint
	const vecLen = 4      // empty additional_metadata
	return tlvHeaderLen + fixed +
		4 + len(name) +
		4 + len(symbol) +
		4 + len(uri) +
		vecLen
}

// FindAssociatedTokenAddress derives the associated token account for a
// wallet and a Token-2022 mint.
func FindAssociatedTokenAddress(wallet, mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{wallet.Bytes(), ProgramID.Bytes(), mint.Bytes()},
		AssociatedTokenProgramID,
	)
	return addr, err
}
