package token2022

import (
	"github.com/gagliardetto/solana-go"
)

// Account extension toggles. These run against an initialized token account
// and must be signed by its owner.

// EnableRequiredMemoTransfers requires inbound transfers to the account to
// be accompanied by a memo instruction.
func EnableRequiredMemoTransfers(account, owner solana.PublicKey) solana.Instruction {
	return accountOwner(account, owner, []byte{ixMemoTransferExtension, 0})
}

// DisableRequiredMemoTransfers removes the memo requirement.
func DisableRequiredMemoTransfers(account, owner solana.PublicKey) solana.Instruction {
	return accountOwner(account, owner, []byte{ixMemoTransferExtension, 1})
}

// EnableCpiGuard blocks privileged token operations invoked via CPI.
func EnableCpiGuard(account, owner solana.PublicKey) solana.Instruction {
	return accountOwner(account, owner, []byte{ixCpiGuardExtension, 0})
}

// DisableCpiGuard lifts the CPI restrictions.
func DisableCpiGuard(account, owner solana.PublicKey) solana.Instruction {
	return accountOwner(account, owner, []byte{ixCpiGuardExtension, 1})
}

func accountOwner(account, owner solana.PublicKey, data []byte) solana.Instruction {
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(account).WRITE(),
		solana.Meta(owner).SIGNER(),
	}, data)
}
