package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RecommendationsTotal
const (
	OutcomeExact   = "exact"
	OutcomeRelaxed = "relaxed"
	OutcomeNone    = "none"
)

var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hairdiag_recommendations_total",
			Help: "Questionnaire submissions matched, by outcome",
		},
		[]string{"outcome"},
	)

	UncoveredProfilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hairdiag_uncovered_profiles_total",
			Help: "Submissions whose answers map to no rule table keywords",
		},
		[]string{"hair_type", "objective"},
	)

	CatalogFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hairdiag_catalog_fetch_duration_seconds",
			Help:    "Duration of catalog API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hairdiag_catalog_fetch_failures_total",
			Help: "Catalog API requests that failed",
		},
	)

	CatalogSKUs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hairdiag_catalog_skus",
			Help: "Number of SKUs returned by the last successful catalog fetch",
		},
	)

	CatalogEntriesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hairdiag_catalog_entries_skipped_total",
			Help: "Malformed catalog products or SKUs dropped while decoding",
		},
	)
)
