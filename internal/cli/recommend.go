package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hairdiag/backend/internal/domain"

	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type recommender interface {
	Recommend(ctx context.Context, profile domain.Profile) (*domain.Recommendation, error)
}

var (
	answers domain.Profile
	output  string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Fetch the catalog once and print the recommendations for a profile",
	Example: `  hairdiag recommend --hair-type Curly --chemistry None --objective "Curl definition" \
    --frequency "Intensive treatment (daily)" --vegan No --kit-size "Home Care Premium (1 kg)"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if output != outputText && output != outputJSON {
			return fmt.Errorf("unknown output %q, want %s or %s", output, outputText, outputJSON)
		}

		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return runRecommend(cmd.Context(), cmd.OutOrStdout(), newRecommendationService(cfg, log), answers, output)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	flags := recommendCmd.Flags()
	flags.StringVar(&answers.HairType, "hair-type", "", optionsHelp("hair type", domain.HairTypeOptions))
	flags.StringVar(&answers.Chemistry, "chemistry", "", optionsHelp("chemical treatment", domain.ChemistryOptions))
	flags.StringVar(&answers.Objective, "objective", "", optionsHelp("main objective", domain.ObjectiveOptions))
	flags.StringVar(&answers.Frequency, "frequency", "", optionsHelp("usage frequency", domain.FrequencyOptions))
	flags.StringVar(&answers.Vegan, "vegan", domain.VeganNo, optionsHelp("vegan / natural preference", domain.VeganOptions))
	flags.StringVar(&answers.KitSize, "kit-size", "", optionsHelp("kit size", domain.KitSizeOptions))
	flags.StringVarP(&output, "output", "o", outputText, "output format: text or json")

	for _, name := range []string{"hair-type", "chemistry", "objective", "frequency", "kit-size"} {
		_ = recommendCmd.MarkFlagRequired(name)
	}
}

func optionsHelp(label string, options []string) string {
	return fmt.Sprintf("%s, one of: %s", label, strings.Join(options, " | "))
}

func runRecommend(ctx context.Context, w io.Writer, svc recommender, profile domain.Profile, format string) error {
	rec, err := svc.Recommend(ctx, profile)
	if err != nil {
		return err
	}

	if format == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	printRecommendation(w, rec)
	return nil
}

func printRecommendation(w io.Writer, rec *domain.Recommendation) {
	if !rec.Covered {
		fmt.Fprintln(w, "No rule covers this profile.")
	}

	if len(rec.Products) == 0 {
		fmt.Fprintln(w, "We could not find exact products for your profile. Here are some options:")
		for _, s := range rec.Suggestions {
			fmt.Fprintf(w, "  - %s — %s\n", s.Name, domain.FormatPrice(s.PriceDiscount))
		}
		return
	}

	if rec.Relaxed {
		fmt.Fprintln(w, "No product matched the kit size; showing products for your profile in any size.")
	}
	fmt.Fprintln(w, "Here are your recommendations:")
	for _, s := range rec.Products {
		fmt.Fprintf(w, "  - %s (%s) — %s (was %s)\n", s.Name, s.SKU,
			domain.FormatPrice(s.PriceDiscount), domain.FormatPrice(s.PriceSale))
		if s.PurchaseURL != "" {
			fmt.Fprintf(w, "    %s\n", s.PurchaseURL)
		}
	}
}
