package cli

import (
	"fmt"

	"github.com/hairdiag/backend/config"
	"github.com/hairdiag/backend/internal/infrastructure/catalog"
	"github.com/hairdiag/backend/internal/logger"
	"github.com/hairdiag/backend/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	app = "hairdiag"

	catalogBurst = 5
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "hairdiag recommends hair-care kits from the store catalog based on a short questionnaire",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is config.yaml in ., ./config or /etc/hairdiag)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
}

// setup loads the configuration and builds a logger honoring the debug/json flags.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Log.Level = "debug"
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		cfg.Log.Format = "json"
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("creating a logger: %w", err)
	}

	return cfg, log, nil
}

// newRecommendationService wires the catalog client into the recommendation service.
func newRecommendationService(cfg *config.Config, log *zap.Logger) *usecase.RecommendationService {
	client := catalog.NewClient(
		catalog.Credentials{
			StoreAlias: cfg.Catalog.StoreAlias,
			Token:      cfg.Catalog.Token,
			SecretKey:  cfg.Catalog.SecretKey,
		},
		catalog.Options{
			BaseURL:       cfg.Catalog.BaseURL,
			PageLimit:     cfg.Catalog.PageLimit,
			Timeout:       cfg.Catalog.Timeout,
			RatePerSecond: cfg.RateLimit.Catalog,
			Burst:         catalogBurst,
		},
		log.Named("catalog"),
	)

	log.Info("catalog configured",
		zap.String("base_url", cfg.Catalog.BaseURL),
		zap.String("store", cfg.Catalog.StoreAlias),
		zap.String("token", logger.Redact(cfg.Catalog.Token, 4)),
		zap.Int("page_limit", cfg.Catalog.PageLimit),
		zap.Duration("timeout", cfg.Catalog.Timeout),
	)

	return usecase.NewRecommendationService(client, log.Named("recommendation"), usecase.RecommendationServiceConfig{})
}
