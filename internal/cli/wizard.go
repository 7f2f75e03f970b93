package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	sdk "github.com/gagliardetto/solana-go"

	"token-extensions-cli/internal/recipes"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactively assemble and run a recipe",
	RunE: func(cmd *cobra.Command, _ []string) error {
		desc, err := selectRecipe()
		if err != nil {
			return err
		}

		p := recipes.NewParams(cfg, desc.Type)
		for _, step := range wizardSteps {
			if step.when != nil && !step.when(desc, &p) {
				continue
			}
			input, err := promptStep(step, &p)
			if err != nil {
				return err
			}
			if err := step.apply(&p, input); err != nil {
				return err
			}
		}

		return runRecipe(cmd.Context(), desc.Type, &p)
	},
}

// wizardStep is one prompt of the wizard. Steps run in declaration order and
// are skipped when their predicate rejects the chosen recipe or the values
// entered so far.
type wizardStep struct {
	label    string
	initial  func(p *recipes.Params) string
	validate promptui.ValidateFunc
	apply    func(p *recipes.Params, input string) error
	when     func(desc recipes.Descriptor, p *recipes.Params) bool
}

var wizardSteps = []wizardStep{
	{
		label:    "Token name",
		validate: nonEmpty,
		apply:    func(p *recipes.Params, in string) error { p.Name = in; return nil },
	},
	{
		label:    "Symbol",
		validate: nonEmpty,
		apply:    func(p *recipes.Params, in string) error { p.Symbol = in; return nil },
		when:     func(d recipes.Descriptor, _ *recipes.Params) bool { return d.NeedsMetadataFields },
	},
	{
		label:    "Metadata URI",
		validate: nonEmpty,
		apply:    func(p *recipes.Params, in string) error { p.URI = in; return nil },
		when:     func(d recipes.Descriptor, _ *recipes.Params) bool { return d.NeedsMetadataFields },
	},
	{
		label:    "Existing mint address",
		validate: validAddress,
		apply:    func(p *recipes.Params, in string) error { p.Mint = in; return nil },
		when:     func(d recipes.Descriptor, _ *recipes.Params) bool { return d.NeedsMint },
	},
	{
		label:    "Decimals (0-9)",
		initial:  func(p *recipes.Params) string { return strconv.Itoa(p.Decimals) },
		validate: intInRange(0, 9),
		apply:    applyInt(func(p *recipes.Params, v int) { p.Decimals = v }),
		when:     func(d recipes.Descriptor, _ *recipes.Params) bool { return d.Kind == recipes.KindMint },
	},
	{
		label:    "Fee basis points (0-10000)",
		initial:  func(p *recipes.Params) string { return strconv.Itoa(p.FeeBasisPoints) },
		validate: intInRange(0, 10000),
		apply:    applyInt(func(p *recipes.Params, v int) { p.FeeBasisPoints = v }),
		when:     forType(recipes.TypeTransferFee),
	},
	{
		label:    "Maximum fee in base units",
		initial:  func(p *recipes.Params) string { return strconv.FormatInt(p.MaxFee, 10) },
		validate: nonNegativeInt,
		apply: func(p *recipes.Params, in string) error {
			v, err := strconv.ParseInt(in, 10, 64)
			if err != nil {
				return err
			}
			p.MaxFee = v
			return nil
		},
		when: forType(recipes.TypeTransferFee),
	},
	{
		label:    "Annual interest rate in basis points (-10000..10000)",
		initial:  func(p *recipes.Params) string { return strconv.Itoa(p.InterestRate) },
		validate: intInRange(-10000, 10000),
		apply:    applyInt(func(p *recipes.Params, v int) { p.InterestRate = v }),
		when:     forType(recipes.TypeInterestBearing),
	},
	{
		label:    "UI amount multiplier",
		initial:  func(p *recipes.Params) string { return strconv.FormatFloat(p.Multiplier, 'g', -1, 64) },
		validate: positiveFloat,
		apply: func(p *recipes.Params, in string) error {
			v, err := strconv.ParseFloat(in, 64)
			if err != nil {
				return err
			}
			p.Multiplier = v
			return nil
		},
		when: forType(recipes.TypeScaledUI),
	},
	{
		label:    "Maximum group size",
		initial:  func(p *recipes.Params) string { return strconv.Itoa(p.MaxSize) },
		validate: intInRange(1, 1<<31-1),
		apply:    applyInt(func(p *recipes.Params, v int) { p.MaxSize = v }),
		when:     forType(recipes.TypeGroup),
	},
	{
		label:    "Group mint address",
		validate: validAddress,
		apply:    func(p *recipes.Params, in string) error { p.Group = in; return nil },
		when:     forType(recipes.TypeMember),
	},
	{
		label:    "Amount to mint in base units",
		initial:  func(p *recipes.Params) string { return strconv.FormatInt(p.Amount, 10) },
		validate: positiveInt,
		apply: func(p *recipes.Params, in string) error {
			v, err := strconv.ParseInt(in, 10, 64)
			if err != nil {
				return err
			}
			p.Amount = v
			return nil
		},
		when: func(d recipes.Descriptor, _ *recipes.Params) bool { return d.Kind == recipes.KindMint },
	},
}

func selectRecipe() (recipes.Descriptor, error) {
	items := make([]string, len(recipes.Catalog))
	for i, d := range recipes.Catalog {
		items[i] = fmt.Sprintf("%s — %s", d.Type, d.Summary)
	}
	sel := promptui.Select{
		Label: "Recipe",
		Items: items,
		Size:  len(items),
	}
	idx, _, err := sel.Run()
	if err != nil {
		return recipes.Descriptor{}, err
	}
	return recipes.Catalog[idx], nil
}

func promptStep(step wizardStep, p *recipes.Params) (string, error) {
	prompt := promptui.Prompt{
		Label:    step.label,
		Validate: step.validate,
	}
	if step.initial != nil {
		prompt.Default = step.initial(p)
		prompt.AllowEdit = true
	}
	return prompt.Run()
}

func forType(typ recipes.Type) func(recipes.Descriptor, *recipes.Params) bool {
	return func(d recipes.Descriptor, _ *recipes.Params) bool { return d.Type == typ }
}

func applyInt(assign func(*recipes.Params, int)) func(*recipes.Params, string) error {
	return func(p *recipes.Params, in string) error {
		v, err := strconv.Atoi(in)
		if err != nil {
			return err
		}
		assign(p, v)
		return nil
	}
}

func nonEmpty(input string) error {
	if len(input) == 0 {
		return errors.New("input is empty")
	}
	return nil
}

func validAddress(input string) error {
	if err := nonEmpty(input); err != nil {
		return err
	}
	_, err := sdk.PublicKeyFromBase58(input)
	return err
}

func intInRange(min, max int) promptui.ValidateFunc {
	return func(input string) error {
		v, err := strconv.Atoi(input)
		if err != nil {
			return err
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func nonNegativeInt(input string) error {
	v, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return err
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func positiveInt(input string) error {
	v, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return err
	}
	if v <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func positiveFloat(input string) error {
	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return err
	}
	if v <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}
