package token2022

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

// Token-2022 instruction discriminants. The extension entries prefix a
// one-byte sub-instruction.
const (
	ixInitializeAccount3            = 18
	ixInitializeMint2               = 20
	ixInitializeImmutableOwner      = 22
	ixMintToChecked                 = 14
	ixInitializeMintCloseAuthority  = 25
	ixTransferFeeExtension          = 26
	ixDefaultAccountStateExtension  = 28
	ixMemoTransferExtension         = 30
	ixInitializeNonTransferableMint = 32
	ixInterestBearingMintExtension  = 33
	ixCpiGuardExtension             = 34
	ixInitializePermanentDelegate   = 35
	ixTransferHookExtension         = 36
	ixMetadataPointerExtension      = 39
	ixGroupPointerExtension         = 40
	ixGroupMemberPointerExtension   = 41
	ixScaledUiAmountExtension       = 43
	ixPausableExtension             = 44
)

// appendCOption writes the token program's COption<Pubkey> encoding:
// a one-byte tag followed by the key only when present.
func appendCOption(data []byte, key *solana.PublicKey) []byte {
	if key == nil {
		return append(data, 0)
	}
	data = append(data, 1)
	return append(data, key.Bytes()...)
}

// appendOptionalKey writes an OptionalNonZeroPubkey: always 32 bytes,
// all-zero meaning none.
func appendOptionalKey(data []byte, key *solana.PublicKey) []byte {
	if key == nil {
		return append(data, make([]byte, 32)...)
	}
	return append(data, key.Bytes()...)
}

func appendU16(data []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(data, v)
}

func appendU32(data []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(data, v)
}

func appendU64(data []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(data, v)
}

// InitializeMint2 initializes a mint after all extension initializations.
func InitializeMint2(mint, mintAuthority solana.PublicKey, freezeAuthority *solana.PublicKey, decimals uint8) solana.Instruction {
	data := []byte{ixInitializeMint2, decimals}
	data = append(data, mintAuthority.Bytes()...)
	data = appendCOption(data, freezeAuthority)
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(mint).WRITE(),
	}, data)
}

// InitializeAccount3 initializes a token account for the given mint and owner.
func InitializeAccount3(account, mint, owner solana.PublicKey) solana.Instruction {
	data := []byte{ixInitializeAccount3}
	data = append(data, owner.Bytes()...)
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(account).WRITE(),
		solana.Meta(mint),
	}, data)
}

// InitializeImmutableOwner marks a token account's owner as immutable.
// Must precede InitializeAccount3.
func InitializeImmutableOwner(account solana.PublicKey) solana.Instruction {
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(account).WRITE(),
	}, []byte{ixInitializeImmutableOwner})
}

// MintToChecked mints amount base units to a token account, asserting decimals.
func MintToChecked(mint, dest, authority solana.PublicKey, amount uint64, decimals uint8) solana.Instruction {
	data := []byte{ixMintToChecked}
	data = appendU64(data, amount)
	data = append(data, decimals)
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(mint).WRITE(),
		solana.Meta(dest).WRITE(),
		solana.Meta(authority).SIGNER(),
	}, data)
}

// CreateAssociatedTokenAccount creates the associated token account for
// owner and mint under the Token-2022 program.
func CreateAssociatedTokenAccount(payer, ata, owner, mint solana.PublicKey) solana.Instruction {
	return solana.NewInstruction(AssociatedTokenProgramID, solana.AccountMetaSlice{
		solana.Meta(payer).WRITE().SIGNER(),
		solana.Meta(ata).WRITE(),
		solana.Meta(owner),
		solana.Meta(mint),
		solana.Meta(solana.SystemProgramID),
		solana.Meta(ProgramID),
	}, []byte{})
}
