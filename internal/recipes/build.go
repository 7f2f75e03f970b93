package recipes

import (
	"context"
	"fmt"

	sdk "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"

	"token-extensions-cli/internal/solana"
	"token-extensions-cli/internal/token2022"
)

// TxPlan is one transaction of a recipe: its instructions and the extra
// signers beyond the fee payer.
type TxPlan struct {
	Label        string
	Instructions []sdk.Instruction
	Signers      []sdk.PrivateKey
}

// BuildResult is the assembled instruction sequence plus the addresses the
// token-info record will report.
type BuildResult struct {
	Plans []TxPlan

	Mint          sdk.PublicKey
	MintAuthority sdk.PublicKey
	TokenAccount  sdk.PublicKey // zero when no account is created

	// Resolved recipe addresses for the record.
	Delegate       sdk.PublicKey
	CloseAuthority sdk.PublicKey
	HookProgram    sdk.PublicKey
}

// Builder assembles recipe instruction sequences. Account sizing comes from
// the extension layout tables; rent minimums come from the cluster.
type Builder struct {
	rpc solana.Client
}

// NewBuilder creates a builder backed by the given RPC client.
func NewBuilder(rpc solana.Client) *Builder {
	return &Builder{rpc: rpc}
}

// Build assembles the transaction plans for a validated recipe. payer funds
// the accounts and acts as every default authority.
func (b *Builder) Build(ctx context.Context, typ Type, p *Params, payer sdk.PublicKey) (*BuildResult, error) {
	desc, ok := Lookup(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecipe, typ)
	}
	if desc.Kind == KindAccount {
		return b.buildAccount(ctx, typ, p, payer)
	}
	return b.buildMint(ctx, typ, p, payer)
}

// buildMint assembles: create mint account sized for the extension →
// initialize extension → initialize mint → TLV data where the recipe has
// any → a separate associated-token-account + mint transaction unless
// minting is skipped.
func (b *Builder) buildMint(ctx context.Context, typ Type, p *Params, payer sdk.PublicKey) (*BuildResult, error) {
	mintKeypair := sdk.NewWallet()
	mint := mintKeypair.PublicKey()

	result := &BuildResult{
		Mint:          mint,
		MintAuthority: payer,
	}

	var (
		extensions      []token2022.ExtensionType
		extraSpace      int
		initExtension   sdk.Instruction
		afterMint       []sdk.Instruction
		freezeAuthority *sdk.PublicKey
	)

	switch typ {
	case TypeTransferFee:
		extensions = []token2022.ExtensionType{token2022.ExtensionTransferFeeConfig}
		initExtension = token2022.InitializeTransferFeeConfig(
			mint, &payer, &payer, uint16(p.FeeBasisPoints), uint64(p.MaxFee))

	case TypeInterestBearing:
		extensions = []token2022.ExtensionType{token2022.ExtensionInterestBearingConfig}
		initExtension = token2022.InitializeInterestBearingMint(mint, &payer, int16(p.InterestRate))

	case TypeSoulbound:
		extensions = []token2022.ExtensionType{token2022.ExtensionNonTransferable}
		initExtension = token2022.InitializeNonTransferableMint(mint)

	case TypeCloseAuthority:
		authority := resolveAddress(p.CloseAuthority, payer)
		result.CloseAuthority = authority
		extensions = []token2022.ExtensionType{token2022.ExtensionMintCloseAuthority}
		initExtension = token2022.InitializeMintCloseAuthority(mint, &authority)

	case TypePermanentDelegate:
		delegate := resolveAddress(p.Delegate, payer)
		result.Delegate = delegate
		extensions = []token2022.ExtensionType{token2022.ExtensionPermanentDelegate}
		initExtension = token2022.InitializePermanentDelegate(mint, delegate)

	case TypeDefaultState:
		state := token2022.AccountStateInitialized
		if p.DefaultFrozen {
			state = token2022.AccountStateFrozen
		}
		extensions = []token2022.ExtensionType{token2022.ExtensionDefaultAccountState}
		initExtension = token2022.InitializeDefaultAccountState(mint, state)
		// Freezing and thawing accounts needs a freeze authority on the mint.
		freezeAuthority = &payer

	case TypeTransferHook:
		var hook *sdk.PublicKey
		if p.HookProgram != "" {
			program := sdk.MustPublicKeyFromBase58(p.HookProgram)
			result.HookProgram = program
			hook = &program
		}
		extensions = []token2022.ExtensionType{token2022.ExtensionTransferHook}
		initExtension = token2022.InitializeTransferHook(mint, &payer, hook)

	case TypeMetadata:
		extensions = []token2022.ExtensionType{token2022.ExtensionMetadataPointer}
		// Pointer targets the mint itself; metadata lives in the mint's TLV.
		initExtension = token2022.InitializeMetadataPointer(mint, &payer, &mint)
		extraSpace = token2022.MetadataLen(p.Name, p.Symbol, p.URI)
		metadataIx, err := token2022.InitializeTokenMetadata(
			mint, payer, mint, payer, p.Name, p.Symbol, p.URI)
		if err != nil {
			return nil, err
		}
		afterMint = append(afterMint, metadataIx)

	case TypeScaledUI:
		extensions = []token2022.ExtensionType{token2022.ExtensionScaledUiAmountConfig}
		initExtension = token2022.InitializeScaledUiAmount(mint, &payer, p.Multiplier)

	case TypePausable:
		extensions = []token2022.ExtensionType{token2022.ExtensionPausableConfig}
		initExtension = token2022.InitializePausable(mint, payer)

	case TypeGroup:
		extensions = []token2022.ExtensionType{token2022.ExtensionGroupPointer, token2022.ExtensionTokenGroup}
		initExtension = token2022.InitializeGroupPointer(mint, &payer, &mint)
		afterMint = append(afterMint,
			token2022.InitializeTokenGroup(mint, mint, payer, &payer, uint32(p.MaxSize)))

	case TypeMember:
		group := sdk.MustPublicKeyFromBase58(p.Group)
		extensions = []token2022.ExtensionType{token2022.ExtensionGroupMemberPointer, token2022.ExtensionTokenGroupMember}
		initExtension = token2022.InitializeGroupMemberPointer(mint, &payer, &mint)
		afterMint = append(afterMint,
			token2022.InitializeTokenGroupMember(mint, mint, payer, group, payer))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecipe, typ)
	}

	// TLV-backed state (metadata, group, member) is written by the program
	// after mint initialization, so the create-account instruction sizes
	// the account for the pointer extension only and funds rent for the
	// eventual layout.
	space := token2022.MintLen(extensions[:1]...)
	if len(extensions) > 1 {
		extraSpace += spaceFor(extensions[1:])
	}
	lamports, err := b.rpc.GetMinimumBalanceForRentExemption(ctx, space+extraSpace)
	if err != nil {
		return nil, fmt.Errorf("fetch rent minimum: %w", err)
	}

	createMint := system.NewCreateAccountInstruction(
		lamports,
		uint64(space),
		token2022.ProgramID,
		payer,
		mint,
	).Build()

	createPlan := TxPlan{
		Label:        "create mint",
		Instructions: []sdk.Instruction{createMint, initExtension, token2022.InitializeMint2(mint, payer, freezeAuthority, uint8(p.Decimals))},
		Signers:      []sdk.PrivateKey{mintKeypair.PrivateKey},
	}
	createPlan.Instructions = append(createPlan.Instructions, afterMint...)
	result.Plans = append(result.Plans, createPlan)

	if !p.SkipMint && p.Amount > 0 {
		ata, err := token2022.FindAssociatedTokenAddress(payer, mint)
		if err != nil {
			return nil, fmt.Errorf("derive associated token account: %w", err)
		}
		result.TokenAccount = ata
		result.Plans = append(result.Plans, TxPlan{
			Label: "create account and mint",
			Instructions: []sdk.Instruction{
				token2022.CreateAssociatedTokenAccount(payer, ata, payer, mint),
				token2022.MintToChecked(mint, ata, payer, uint64(p.Amount), uint8(p.Decimals)),
			},
		})
	}

	return result, nil
}

// buildAccount assembles the account recipes: create a token account sized
// for the extension, initialize it for the existing mint, then enable the
// extension in a follow-up transaction where the program requires a
// post-initialization toggle.
func (b *Builder) buildAccount(ctx context.Context, typ Type, p *Params, payer sdk.PublicKey) (*BuildResult, error) {
	mint := sdk.MustPublicKeyFromBase58(p.Mint)
	accountKeypair := sdk.NewWallet()
	account := accountKeypair.PublicKey()

	result := &BuildResult{
		Mint:          mint,
		MintAuthority: payer,
		TokenAccount:  account,
	}

	var (
		ext    token2022.ExtensionType
		before []sdk.Instruction
		toggle sdk.Instruction
	)
	switch typ {
	case TypeMemoTransfers:
		ext = token2022.ExtensionMemoTransfer
		toggle = token2022.EnableRequiredMemoTransfers(account, payer)
	case TypeCpiGuard:
		ext = token2022.ExtensionCpiGuard
		toggle = token2022.EnableCpiGuard(account, payer)
	case TypeImmutableOwner:
		ext = token2022.ExtensionImmutableOwner
		before = append(before, token2022.InitializeImmutableOwner(account))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecipe, typ)
	}

	space := token2022.AccountLen(ext)
	lamports, err := b.rpc.GetMinimumBalanceForRentExemption(ctx, space)
	if err != nil {
		return nil, fmt.Errorf("fetch rent minimum: %w", err)
	}

	createAccount := system.NewCreateAccountInstruction(
		lamports,
		uint64(space),
		token2022.ProgramID,
		payer,
		account,
	).Build()

	createPlan := TxPlan{
		Label:        "create token account",
		Instructions: append(append([]sdk.Instruction{createAccount}, before...), token2022.InitializeAccount3(account, mint, payer)),
		Signers:      []sdk.PrivateKey{accountKeypair.PrivateKey},
	}
	result.Plans = append(result.Plans, createPlan)

	if toggle != nil {
		result.Plans = append(result.Plans, TxPlan{
			Label:        "enable extension",
			Instructions: []sdk.Instruction{toggle},
		})
	}

	return result, nil
}

// resolveAddress parses an optional base58 address, falling back to the
// payer. Callers validate the string beforehand.
func resolveAddress(addr string, fallback sdk.PublicKey) sdk.PublicKey {
	if addr == "" {
		return fallback
	}
	return sdk.MustPublicKeyFromBase58(addr)
}

// spaceFor sums the TLV footprint of fixed-size extensions written after
// mint initialization.
func spaceFor(exts []token2022.ExtensionType) int {
	total := 0
	for _, e := range exts {
		total += 4 + token2022.ExtensionStateLen(e)
	}
	return total
}
