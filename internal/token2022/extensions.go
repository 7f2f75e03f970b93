package token2022

import (
	"encoding/binary"
	"math"

	"github.com/gagliardetto/solana-go"
)

// Mint extension initializers. All of these must run after the system
// create-account instruction and before InitializeMint2.

// InitializeTransferFeeConfig initializes the transfer fee extension.
// Fees are charged in basis points, capped at maximumFee base units per
// transfer.
func InitializeTransferFeeConfig(mint solana.PublicKey, configAuthority, withdrawAuthority *solana.PublicKey, feeBasisPoints uint16, maximumFee uint64) solana.Instruction {
	data := []byte{ixTransferFeeExtension, 0}
	data = appendCOption(data, configAuthority)
	data = appendCOption(data, withdrawAuthority)
	data = appendU16(data, feeBasisPoints)
	data = appendU64(data, maximumFee)
	return mintOnly(mint, data)
}

// InitializeMintCloseAuthority allows closeAuthority to close the mint once
// its supply is zero.
func InitializeMintCloseAuthority(mint solana.PublicKey, closeAuthority *solana.PublicKey) solana.Instruction {
	data := appendCOption([]byte{ixInitializeMintCloseAuthority}, closeAuthority)
	return mintOnly(mint, data)
}

// AccountState values for the default account state extension.
const (
	AccountStateInitialized uint8 = 1
	AccountStateFrozen      uint8 = 2
)

// InitializeDefaultAccountState sets the state new token accounts of this
// mint start in.
func InitializeDefaultAccountState(mint solana.PublicKey, state uint8) solana.Instruction {
	return mintOnly(mint, []byte{ixDefaultAccountStateExtension, 0, state})
}

// InitializeNonTransferableMint makes all tokens of the mint soulbound.
func InitializeNonTransferableMint(mint solana.PublicKey) solana.Instruction {
	return mintOnly(mint, []byte{ixInitializeNonTransferableMint})
}

// InitializeInterestBearingMint initializes the interest bearing extension
// with a rate in basis points (may be negative).
func InitializeInterestBearingMint(mint solana.PublicKey, rateAuthority *solana.PublicKey, rate int16) solana.Instruction {
	data := []byte{ixInterestBearingMintExtension, 0}
	data = appendOptionalKey(data, rateAuthority)
	data = appendU16(data, uint16(rate))
	return mintOnly(mint, data)
}

// InitializePermanentDelegate grants delegate permanent transfer and burn
// authority over every token account of the mint.
func InitializePermanentDelegate(mint, delegate solana.PublicKey) solana.Instruction {
	data := []byte{ixInitializePermanentDelegate}
	data = append(data, delegate.Bytes()...)
	return mintOnly(mint, data)
}

// InitializeTransferHook registers a transfer hook program invoked on every
// transfer of the mint.
func InitializeTransferHook(mint solana.PublicKey, authority, hookProgram *solana.PublicKey) solana.Instruction {
	data := []byte{ixTransferHookExtension, 0}
	data = appendOptionalKey(data, authority)
	data = appendOptionalKey(data, hookProgram)
	return mintOnly(mint, data)
}

// InitializeMetadataPointer points the mint at its metadata account. Passing
// the mint itself as metadataAddress stores metadata in the mint via the
// token-metadata extension.
func InitializeMetadataPointer(mint solana.PublicKey, authority, metadataAddress *solana.PublicKey) solana.Instruction {
	data := []byte{ixMetadataPointerExtension, 0}
	data = appendOptionalKey(data, authority)
	data = appendOptionalKey(data, metadataAddress)
	return mintOnly(mint, data)
}

// InitializeGroupPointer points the mint at its token-group account.
func InitializeGroupPointer(mint solana.PublicKey, authority, groupAddress *solana.PublicKey) solana.Instruction {
	data := []byte{ixGroupPointerExtension, 0}
	data = appendOptionalKey(data, authority)
	data = appendOptionalKey(data, groupAddress)
	return mintOnly(mint, data)
}

// InitializeGroupMemberPointer points the mint at its group-member account.
func InitializeGroupMemberPointer(mint solana.PublicKey, authority, memberAddress *solana.PublicKey) solana.Instruction {
	data := []byte{ixGroupMemberPointerExtension, 0}
	data = appendOptionalKey(data, authority)
	data = appendOptionalKey(data, memberAddress)
	return mintOnly(mint, data)
}

// InitializeScaledUiAmount initializes the scaled UI amount extension with
// the given display multiplier.
func InitializeScaledUiAmount(mint solana.PublicKey, authority *solana.PublicKey, multiplier float64) solana.Instruction {
	data := []byte{ixScaledUiAmountExtension, 0}
	data = appendOptionalKey(data, authority)
	data = binary.LittleEndian.AppendUint64(data, math.Float64bits(multiplier))
	return mintOnly(mint, data)
}

// InitializePausable initializes the pausable extension; authority may pause
// and resume all transfers, mints and burns.
func InitializePausable(mint, authority solana.PublicKey) solana.Instruction {
	data := []byte{ixPausableExtension, 0}
	data = append(data, authority.Bytes()...)
	return mintOnly(mint, data)
}

func mintOnly(mint solana.PublicKey, data []byte) solana.Instruction {
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(mint).WRITE(),
	}, data)
}
