package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/hairdiag/backend/internal/domain"
)

// productPage is the top-level catalog response. Products are kept raw so one
// malformed entry cannot fail the whole page.
type productPage struct {
	Data []json.RawMessage `json:"data"`
}

type apiProduct struct {
	Name   string          `json:"name"`
	Images json.RawMessage `json:"images"`
	SKUs   struct {
		Data []json.RawMessage `json:"data"`
	} `json:"skus"`
}

type apiImage struct {
	URL string `json:"url"`
}

type apiSKU struct {
	SKU           string    `json:"sku"`
	PriceSale     flexFloat `json:"price_sale"`
	PriceDiscount flexFloat `json:"price_discount"`
	PurchaseURL   string    `json:"purchase_url"`
}

// flexFloat decodes a price given as a number or numeric string. Anything else,
// including null, decodes to 0 instead of failing.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = 0

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = flexFloat(v)
		}
	}
	return nil
}

// flatten maps raw products to domain SKUs in catalog order. Products that do
// not decode and SKUs without a code are dropped and counted in skipped.
func flatten(products []json.RawMessage) (skus []domain.SKU, skipped int) {
	skus = make([]domain.SKU, 0, len(products))

	for _, raw := range products {
		var p apiProduct
		if err := json.Unmarshal(raw, &p); err != nil {
			skipped++
			continue
		}

		images := decodeImages(p.Images)

		for _, rawSKU := range p.SKUs.Data {
			var s apiSKU
			if err := json.Unmarshal(rawSKU, &s); err != nil || strings.TrimSpace(s.SKU) == "" {
				skipped++
				continue
			}
			skus = append(skus, mapToSKU(p.Name, images, s))
		}
	}

	return skus, skipped
}

// mapToSKU converts one API SKU and its parent product fields to our domain SKU
func mapToSKU(name string, images []string, s apiSKU) domain.SKU {
	return domain.SKU{
		SKU:           s.SKU,
		Name:          name,
		PriceSale:     float64(s.PriceSale),
		PriceDiscount: float64(s.PriceDiscount),
		PurchaseURL:   s.PurchaseURL,
		Images:        images,
	}
}

// decodeImages accepts a list of image objects, the same list wrapped in
// {"data": [...]}, or a plain list of URLs, returning the non-empty URLs in order.
func decodeImages(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []string{}
	}

	var list []apiImage
	if err := json.Unmarshal(raw, &list); err != nil {
		var wrapped struct {
			Data []apiImage `json:"data"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			var plain []string
			if err := json.Unmarshal(raw, &plain); err != nil {
				return []string{}
			}
			list = nil
			for _, u := range plain {
				list = append(list, apiImage{URL: u})
			}
		} else {
			list = wrapped.Data
		}
	}

	urls := make([]string, 0, len(list))
	for _, img := range list {
		if img.URL != "" {
			urls = append(urls, img.URL)
		}
	}
	return urls
}
