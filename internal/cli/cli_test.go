package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hairdiag/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecommender struct {
	rec *domain.Recommendation
	err error
}

func (s stubRecommender) Recommend(ctx context.Context, profile domain.Profile) (*domain.Recommendation, error) {
	return s.rec, s.err
}

func TestPrintRecommendation(t *testing.T) {
	t.Run("lists matched products", func(t *testing.T) {
		var buf bytes.Buffer
		printRecommendation(&buf, &domain.Recommendation{
			Covered: true,
			Products: []domain.SKU{{
				SKU:           "CUR-1KG",
				Name:          "Kit Curls-line Premium 1 kg",
				PriceSale:     199.9,
				PriceDiscount: 179.9,
				PurchaseURL:   "https://loja.example.com/cur-1kg",
			}},
		})

		out := buf.String()
		assert.Contains(t, out, "Here are your recommendations:")
		assert.Contains(t, out, "Kit Curls-line Premium 1 kg (CUR-1KG) — R$ 179.90 (was R$ 199.90)")
		assert.Contains(t, out, "https://loja.example.com/cur-1kg")
		assert.NotContains(t, out, "No rule covers")
	})

	t.Run("mentions relaxed size matching", func(t *testing.T) {
		var buf bytes.Buffer
		printRecommendation(&buf, &domain.Recommendation{
			Covered:  true,
			Relaxed:  true,
			Products: []domain.SKU{{SKU: "CUR-500", Name: "Curls-line 500ml"}},
		})

		assert.Contains(t, buf.String(), "any size")
	})

	t.Run("falls back to suggestions", func(t *testing.T) {
		var buf bytes.Buffer
		printRecommendation(&buf, &domain.Recommendation{
			Covered:     false,
			Products:    []domain.SKU{},
			Suggestions: []domain.SKU{{Name: "Shampoo Basico", PriceDiscount: 39.9}},
		})

		out := buf.String()
		assert.Contains(t, out, "No rule covers this profile.")
		assert.Contains(t, out, "Here are some options:")
		assert.Contains(t, out, "Shampoo Basico — R$ 39.90")
	})
}

func TestRunRecommend(t *testing.T) {
	rec := &domain.Recommendation{
		Keywords:    []string{"Curls-line"},
		SizeMarkers: []string{"1 kg", "Premium"},
		Products:    []domain.SKU{{SKU: "CUR-1KG", Name: "Kit Curls-line Premium 1 kg"}},
		Covered:     true,
		Suggestions: []domain.SKU{},
	}

	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		err := runRecommend(context.Background(), &buf, stubRecommender{rec: rec}, domain.Profile{}, outputJSON)
		require.NoError(t, err)

		var got domain.Recommendation
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, rec.Keywords, got.Keywords)
		assert.Equal(t, "CUR-1KG", got.Products[0].SKU)
	})

	t.Run("propagates service errors", func(t *testing.T) {
		var buf bytes.Buffer
		err := runRecommend(context.Background(), &buf, stubRecommender{err: domain.ErrCatalogUnavailable}, domain.Profile{}, outputText)

		assert.True(t, errors.Is(err, domain.ErrCatalogUnavailable))
		assert.Empty(t, buf.String())
	})
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	require.NoError(t, Execute())
	assert.Equal(t, "hairdiag version: dev\n", buf.String())
}

func TestRecommendCommand(t *testing.T) {
	const catalogJSON = `{"data":[
		{"name":"Kit Curls-line Home Care 500ml","skus":{"data":[{"sku":"CUR-500","price_sale":99.9,"price_discount":89.9}]}},
		{"name":"Kit Curls-line Premium 1 kg","images":{"data":[{"url":"https://img.example.com/cur.png"}]},
		 "skus":{"data":[{"sku":"CUR-1KG","price_sale":"199.90","price_discount":179.9,"purchase_url":"https://loja.example.com/cur-1kg"}]}}
	]}`

	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("User-Token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	t.Setenv("HAIRDIAG_CATALOG_BASE_URL", server.URL)
	t.Setenv("HAIRDIAG_CATALOG_STORE_ALIAS", "zsete")
	t.Setenv("HAIRDIAG_CATALOG_TOKEN", "cli-token")
	t.Setenv("HAIRDIAG_CATALOG_SECRET_KEY", "cli-secret")
	t.Setenv("HAIRDIAG_LOG_LEVEL", "error")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"recommend",
		"--hair-type", domain.HairCurly,
		"--chemistry", domain.ChemistryNone,
		"--objective", domain.ObjectiveCurlDefinition,
		"--frequency", domain.FrequencyIntensive,
		"--vegan", domain.VeganNo,
		"--kit-size", domain.KitHomeCarePremium,
		"--output", "json",
	})
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	require.NoError(t, Execute())
	assert.Equal(t, "cli-token", gotToken)

	var got domain.Recommendation
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Products, 1)
	assert.Equal(t, "CUR-1KG", got.Products[0].SKU)
	assert.Equal(t, 199.9, got.Products[0].PriceSale)
	assert.False(t, got.Relaxed)
	assert.True(t, got.Covered)
}

func TestRecommendCommandRejectsUnknownOutput(t *testing.T) {
	rootCmd.SetArgs([]string{
		"recommend",
		"--hair-type", domain.HairCurly,
		"--chemistry", domain.ChemistryNone,
		"--objective", domain.ObjectiveCurlDefinition,
		"--frequency", domain.FrequencyIntensive,
		"--kit-size", domain.KitHomeCare,
		"--output", "xml",
	})
	t.Cleanup(func() { output = outputText })

	err := Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output")
}
