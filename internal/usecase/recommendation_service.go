package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/hairdiag/backend/internal/domain"
	"github.com/hairdiag/backend/internal/metrics"
	"go.uber.org/zap"
)

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	// Rules overrides the rule table; nil means DefaultRuleTable.
	Rules *RuleTable
}

// RecommendationService turns a questionnaire profile into product recommendations
type RecommendationService struct {
	catalog domain.CatalogFetcher
	matcher *Matcher
	logger  *zap.Logger
}

// NewRecommendationService creates a new recommendation service with dependencies
func NewRecommendationService(
	catalog domain.CatalogFetcher,
	logger *zap.Logger,
	config RecommendationServiceConfig,
) *RecommendationService {
	if logger == nil {
		logger = zap.NewNop()
	}

	rules := DefaultRuleTable()
	if config.Rules != nil {
		rules = *config.Rules
	}

	return &RecommendationService{
		catalog: catalog,
		matcher: NewMatcher(rules, logger.Named("matcher")),
		logger:  logger,
	}
}

// Recommend validates the profile, fetches the catalog and matches it.
// Flow: validate -> fetch catalog -> match -> fall back to generic suggestions
func (s *RecommendationService) Recommend(ctx context.Context, profile domain.Profile) (*domain.Recommendation, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	skus, err := s.catalog.FetchSKUs(ctx)
	if err != nil {
		s.logger.Error("catalog fetch failed", zap.Error(err))
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	result := s.matcher.Match(profile, skus)

	rec := &domain.Recommendation{
		Keywords:    result.Keywords,
		SizeMarkers: result.SizeMarkers,
		Products:    result.Products,
		Relaxed:     result.Relaxed,
		Covered:     len(result.Keywords) > 0,
		Suggestions: []domain.SKU{},
	}

	if !rec.Covered {
		// Uncovered profile combination produces zero recommendations.
		s.logger.Warn("profile combination not covered by rule table",
			zap.String("hair_type", profile.HairType),
			zap.String("chemistry", profile.Chemistry),
			zap.String("objective", profile.Objective),
		)
		metrics.UncoveredProfilesTotal.WithLabelValues(profile.HairType, profile.Objective).Inc()
	}

	switch {
	case len(rec.Products) == 0:
		rec.Suggestions = firstN(skus, MaxRecommendations)
		metrics.RecommendationsTotal.WithLabelValues(metrics.OutcomeNone).Inc()
	case rec.Relaxed:
		metrics.RecommendationsTotal.WithLabelValues(metrics.OutcomeRelaxed).Inc()
	default:
		metrics.RecommendationsTotal.WithLabelValues(metrics.OutcomeExact).Inc()
	}

	s.logger.Info("recommendation computed",
		zap.Int("catalog_size", len(skus)),
		zap.Int("products", len(rec.Products)),
		zap.Int("suggestions", len(rec.Suggestions)),
		zap.Bool("relaxed", rec.Relaxed),
	)

	return rec, nil
}

func firstN(skus []domain.SKU, n int) []domain.SKU {
	if len(skus) < n {
		n = len(skus)
	}
	out := make([]domain.SKU, n)
	copy(out, skus[:n])
	return out
}
