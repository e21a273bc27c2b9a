package domain

import "context"

// CatalogFetcher defines the interface for retrieving the merchant's SKU list
type CatalogFetcher interface {
	FetchSKUs(ctx context.Context) ([]SKU, error)
}
