package token2022

import (
	"crypto/sha256"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

// TLV interface instruction namespaces. Discriminators are the first eight
// bytes of the SHA-256 of the namespace string.
const (
	nsMetadataInitialize = "spl_token_metadata_interface:initialize_account"
	nsGroupInitialize    = "spl_token_group_interface:initialize_token_group"
	nsMemberInitialize   = "spl_token_group_interface:initialize_member"
)

// Discriminator computes the 8-byte TLV interface discriminator for a
// namespace string.
func Discriminator(namespace string) []byte {
	sum := sha256.Sum256([]byte(namespace))
	return sum[:8]
}

// metadataArgs is the borsh payload of token-metadata Initialize.
type metadataArgs struct {
	Name   string
	Symbol string
	URI    string
}

// InitializeTokenMetadata writes name, symbol and uri into the metadata
// account (the mint itself when the metadata pointer is self-referential).
// Must run after InitializeMint2.
func InitializeTokenMetadata(metadata, updateAuthority, mint, mintAuthority solana.PublicKey, name, symbol, uri string) (solana.Instruction, error) {
	payload, err := borsh.Serialize(metadataArgs{Name: name, Symbol: symbol, URI: uri})
	if err != nil {
		return nil, fmt.Errorf("serialize metadata args: %w", err)
	}
	data := append(Discriminator(nsMetadataInitialize), payload...)
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(metadata).WRITE(),
		solana.Meta(updateAuthority),
		solana.Meta(mint),
		solana.Meta(mintAuthority).SIGNER(),
	}, data), nil
}

// InitializeTokenGroup initializes the token-group state on a mint carrying
// the group pointer extension.
func InitializeTokenGroup(group, mint, mintAuthority solana.PublicKey, updateAuthority *solana.PublicKey, maxSize uint32) solana.Instruction {
	data := Discriminator(nsGroupInitialize)
	data = appendOptionalKey(data, updateAuthority)
	data = appendU32(data, maxSize)
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(group).WRITE(),
		solana.Meta(mint),
		solana.Meta(mintAuthority).SIGNER(),
	}, data)
}

// InitializeTokenGroupMember registers a mint as a member of an existing
// group. The group update authority must co-sign.
func InitializeTokenGroupMember(member, memberMint, memberMintAuthority, group, groupUpdateAuthority solana.PublicKey) solana.Instruction {
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(member).WRITE(),
		solana.Meta(memberMint),
		solana.Meta(memberMintAuthority).SIGNER(),
		solana.Meta(group).WRITE(),
		solana.Meta(groupUpdateAuthority).SIGNER(),
	}, Discriminator(nsMemberInitialize))
}
