package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"token-extensions-cli/internal/recipes"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a token from a named recipe",
}

func init() {
	for _, desc := range recipes.Catalog {
		createCmd.AddCommand(newCreateCommand(desc))
	}
}

// newCreateCommand builds the subcommand for one recipe. Flag defaults come
// from the configuration at run time, so only flags the user actually set
// override the configured values.
func newCreateCommand(desc recipes.Descriptor) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(desc.Type),
		Short: fmt.Sprintf("Create a %s", desc.Summary),
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := recipes.NewParams(cfg, desc.Type)
			if err := applyFlags(cmd, &p); err != nil {
				return err
			}
			return runRecipe(cmd.Context(), desc.Type, &p)
		},
	}
	registerRecipeFlags(cmd, desc)
	return cmd
}

// registerRecipeFlags declares the flags a recipe consumes. Default values
// shown in help are placeholders; the configuration supplies the real
// defaults when the flag is left unset.
func registerRecipeFlags(cmd *cobra.Command, desc recipes.Descriptor) {
	flags := cmd.Flags()

	flags.String("name", "", "token name (required)")
	_ = cmd.MarkFlagRequired("name")

	if desc.Kind == recipes.KindMint {
		flags.Int("decimals", 0, "mint decimals (0-9)")
		flags.Int64("amount", 0, "amount to mint in base units")
		flags.Bool("skip-mint", false, "create the mint without a token account")
	}
	if desc.NeedsMint {
		flags.String("mint", "", "existing mint address (required)")
		_ = cmd.MarkFlagRequired("mint")
	}
	if desc.NeedsMetadataFields {
		flags.String("symbol", "", "token symbol")
		flags.String("uri", "", "metadata URI")
	}

	switch desc.Type {
	case recipes.TypeTransferFee:
		flags.Int("fee-basis-points", 0, "transfer fee in basis points (0-10000)")
		flags.Int64("max-fee", 0, "fee cap in base units")
	case recipes.TypeInterestBearing:
		flags.Int("interest-rate", 0, "annual rate in basis points (-10000..10000)")
	case recipes.TypeScaledUI:
		flags.Float64("multiplier", 0, "UI amount multiplier")
	case recipes.TypeGroup:
		flags.Int("max-size", 0, "maximum number of group members")
	case recipes.TypeMember:
		flags.String("group", "", "group mint address (required)")
		_ = cmd.MarkFlagRequired("group")
	case recipes.TypeCloseAuthority:
		flags.String("close-authority", "", "close authority (defaults to the payer)")
	case recipes.TypePermanentDelegate:
		flags.String("delegate", "", "permanent delegate (defaults to the payer)")
	case recipes.TypeTransferHook:
		flags.String("hook-program", "", "transfer hook program address")
	case recipes.TypeDefaultState:
		flags.Bool("frozen", true, "new accounts start frozen")
	}
}

// applyFlags copies every flag the user set onto the params.
func applyFlags(cmd *cobra.Command, p *recipes.Params) error {
	flags := cmd.Flags()
	var err error

	set := func(name string, assign func() error) {
		if err != nil || !flags.Changed(name) {
			return
		}
		err = assign()
	}

	set("name", func() error { v, e := flags.GetString("name"); p.Name = v; return e })
	set("symbol", func() error { v, e := flags.GetString("symbol"); p.Symbol = v; return e })
	set("uri", func() error { v, e := flags.GetString("uri"); p.URI = v; return e })
	set("decimals", func() error { v, e := flags.GetInt("decimals"); p.Decimals = v; return e })
	set("amount", func() error { v, e := flags.GetInt64("amount"); p.Amount = v; return e })
	set("skip-mint", func() error { v, e := flags.GetBool("skip-mint"); p.SkipMint = v; return e })
	set("fee-basis-points", func() error { v, e := flags.GetInt("fee-basis-points"); p.FeeBasisPoints = v; return e })
	set("max-fee", func() error { v, e := flags.GetInt64("max-fee"); p.MaxFee = v; return e })
	set("interest-rate", func() error { v, e := flags.GetInt("interest-rate"); p.InterestRate = v; return e })
	set("multiplier", func() error { v, e := flags.GetFloat64("multiplier"); p.Multiplier = v; return e })
	set("max-size", func() error { v, e := flags.GetInt("max-size"); p.MaxSize = v; return e })
	set("mint", func() error { v, e := flags.GetString("mint"); p.Mint = v; return e })
	set("group", func() error { v, e := flags.GetString("group"); p.Group = v; return e })
	set("delegate", func() error { v, e := flags.GetString("delegate"); p.Delegate = v; return e })
	set("close-authority", func() error { v, e := flags.GetString("close-authority"); p.CloseAuthority = v; return e })
	set("hook-program", func() error { v, e := flags.GetString("hook-program"); p.HookProgram = v; return e })
	set("frozen", func() error { v, e := flags.GetBool("frozen"); p.DefaultFrozen = v; return e })

	return err
}
