package domain

import "fmt"

// SKU is one purchasable variant of a catalog product, flattened together with
// the parent product's name and images.
type SKU struct {
	SKU           string   `json:"sku"`
	Name          string   `json:"name"`
	PriceSale     float64  `json:"priceSale"`
	PriceDiscount float64  `json:"priceDiscount"`
	PurchaseURL   string   `json:"purchaseUrl"`
	Images        []string `json:"images"`
}

// FirstImage returns the first product image URL, or "" when there is none.
func (s SKU) FirstImage() string {
	if len(s.Images) == 0 {
		return ""
	}
	return s.Images[0]
}

// FormatPrice renders an amount the way the storefront does, e.g. "R$ 49.90".
func FormatPrice(amount float64) string {
	return fmt.Sprintf("R$ %.2f", amount)
}

// Recommendation is the outcome of one questionnaire submission
type Recommendation struct {
	Keywords    []string `json:"keywords"`
	SizeMarkers []string `json:"sizeMarkers"`
	Products    []SKU    `json:"products"`
	Relaxed     bool     `json:"relaxed"`     // size markers were ignored to find Products
	Covered     bool     `json:"covered"`     // the rule table produced at least one keyword
	Suggestions []SKU    `json:"suggestions"` // generic catalog entries, set only when Products is empty
}
