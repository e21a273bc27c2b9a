package usecase

import (
	"strings"

	"github.com/hairdiag/backend/internal/domain"
	"go.uber.org/zap"
)

// MaxRecommendations caps how many SKUs a single profile is shown
const MaxRecommendations = 3

// MatchResult is the output of a single Match call
type MatchResult struct {
	Keywords    []string
	SizeMarkers []string
	Products    []domain.SKU
	Relaxed     bool // strict match was empty, Products were found by keyword only
}

// Matcher filters a catalog down to the SKUs a profile should see.
// It holds no per-call state and is safe for concurrent use.
type Matcher struct {
	rules  RuleTable
	logger *zap.Logger
}

// NewMatcher creates a matcher over the given rule table
func NewMatcher(rules RuleTable, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{rules: rules, logger: logger}
}

// Match derives keywords and size markers from the profile, keeps the SKUs whose
// name or code mention at least one of each, and falls back to keyword-only
// matching when that yields nothing. Input order is preserved and the result is
// truncated to MaxRecommendations.
func (m *Matcher) Match(profile domain.Profile, products []domain.SKU) MatchResult {
	keywords := m.rules.NarrowVegan(m.rules.Keywords(profile), profile.Vegan)
	sizes := m.rules.Sizes(profile.KitSize)

	result := MatchResult{
		Keywords:    keywords,
		SizeMarkers: sizes,
	}

	lowerKeys := lowerAll(keywords)
	lowerSizes := lowerAll(sizes)

	result.Products = filterSKUs(products, func(text string) bool {
		return containsAny(text, lowerKeys) && containsAny(text, lowerSizes)
	})

	if len(result.Products) == 0 {
		result.Products = filterSKUs(products, func(text string) bool {
			return containsAny(text, lowerKeys)
		})
		result.Relaxed = len(result.Products) > 0
	}

	m.logger.Debug("profile matched",
		zap.String("hair_type", profile.HairType),
		zap.String("objective", profile.Objective),
		zap.Strings("keywords", keywords),
		zap.Strings("size_markers", sizes),
		zap.Int("catalog_size", len(products)),
		zap.Int("matches", len(result.Products)),
		zap.Bool("relaxed", result.Relaxed),
	)

	return result
}

// filterSKUs returns up to MaxRecommendations SKUs, in input order, whose
// lowercased "name sku" text satisfies keep.
func filterSKUs(products []domain.SKU, keep func(text string) bool) []domain.SKU {
	matched := make([]domain.SKU, 0, MaxRecommendations)
	for _, p := range products {
		if keep(searchText(p)) {
			matched = append(matched, p)
			if len(matched) == MaxRecommendations {
				break
			}
		}
	}
	return matched
}

func searchText(p domain.SKU) string {
	return strings.ToLower(p.Name + " " + p.SKU)
}

// containsAny reports whether text contains any of subs as a plain substring.
// An empty subs never matches.
func containsAny(text string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func lowerAll(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = strings.ToLower(v)
	}
	return out
}
