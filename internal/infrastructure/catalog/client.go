package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hairdiag/backend/internal/domain"
	"github.com/hairdiag/backend/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultPageLimit = 200
	defaultTimeout   = 30 * time.Second
	userAgent        = "hairdiag/1.0"
)

// Credentials identify the store on the Yampi/Dooki catalog API
type Credentials struct {
	StoreAlias string
	Token      string
	SecretKey  string
}

// Options tune the client; zero values fall back to defaults
type Options struct {
	BaseURL   string
	PageLimit int
	Timeout   time.Duration
	// RatePerSecond limits outbound catalog requests; 0 disables limiting.
	RatePerSecond float64
	Burst         int
}

// Client handles communication with the store catalog API
type Client struct {
	httpClient  *http.Client
	credentials Credentials
	baseURL     string
	pageLimit   int
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a new catalog API client
func NewClient(credentials Credentials, opts Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	pageLimit := opts.PageLimit
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RatePerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		credentials: credentials,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		pageLimit:   pageLimit,
		rateLimiter: limiter,
		logger:      logger,
	}
}

// productsURL builds the store-scoped products endpoint with embedded SKUs
func (c *Client) productsURL() string {
	params := url.Values{}
	params.Add("include", "skus")
	params.Add("limit", strconv.Itoa(c.pageLimit))

	return fmt.Sprintf("%s/%s/catalog/products?%s", c.baseURL, url.PathEscape(c.credentials.StoreAlias), params.Encode())
}

// FetchSKUs retrieves the catalog and flattens it into one SKU per (product, sku) pair.
// Any transport error, non-2xx status or unreadable body fails the whole call; there is no retry.
func (c *Client) FetchSKUs(ctx context.Context) ([]domain.SKU, error) {
	start := time.Now()
	skus, err := c.fetch(ctx)
	metrics.CatalogFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.CatalogFetchFailures.Inc()
		return nil, err
	}

	metrics.CatalogSKUs.Set(float64(len(skus)))
	return skus, nil
}

func (c *Client) fetch(ctx context.Context) ([]domain.SKU, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrCatalogUnavailable, err)
	}

	reqURL := c.productsURL()
	c.logger.Debug("fetching catalog", zap.String("store", c.credentials.StoreAlias), zap.Int("limit", c.pageLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Token", c.credentials.Token)
	req.Header.Set("User-Secret-Key", c.credentials.SecretKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrCatalogUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("catalog API error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(body), 256)),
		)
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	var page productPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrCatalogUnavailable, err)
	}

	skus, skipped := flatten(page.Data)
	if skipped > 0 {
		metrics.CatalogEntriesSkipped.Add(float64(skipped))
		c.logger.Warn("skipped malformed catalog entries", zap.Int("skipped", skipped))
	}

	c.logger.Info("catalog fetched", zap.Int("products", len(page.Data)), zap.Int("skus", len(skus)))
	return skus, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
