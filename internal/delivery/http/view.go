package http

import (
	"embed"
	"html/template"

	"github.com/hairdiag/backend/internal/domain"
)

const questionnaireTemplate = "questionnaire"

//go:embed templates/*.html
var templatesFS embed.FS

// loadTemplates parses the embedded page templates
func loadTemplates() *template.Template {
	return template.Must(template.New("").
		Funcs(template.FuncMap{
			"field": newSelectField,
		}).
		ParseFS(templatesFS, "templates/*.html"))
}

// selectField feeds the "select" partial
type selectField struct {
	Label    string
	Name     string
	Options  []string
	Selected string
}

func newSelectField(label, name string, options []string, selected string) selectField {
	return selectField{Label: label, Name: name, Options: options, Selected: selected}
}

// questionOptions lists the choices for each select on the page
type questionOptions struct {
	HairTypes   []string
	Chemistry   []string
	Objectives  []string
	Frequencies []string
	Vegan       []string
	KitSizes    []string
}

// productView is one SKU as the page shows it
type productView struct {
	Name          string
	Price         string
	OriginalPrice string
	Image         string
	PurchaseURL   string
}

type pageData struct {
	Options     questionOptions
	Form        Submission
	Error       string
	Submitted   bool
	Products    []productView
	Suggestions []productView
}

func newPageData(form Submission) *pageData {
	return &pageData{
		Options: questionOptions{
			HairTypes:   domain.HairTypeOptions,
			Chemistry:   domain.ChemistryOptions,
			Objectives:  domain.ObjectiveOptions,
			Frequencies: domain.FrequencyOptions,
			Vegan:       domain.VeganOptions,
			KitSizes:    domain.KitSizeOptions,
		},
		Form: form,
	}
}

func (p *pageData) setRecommendation(rec *domain.Recommendation) {
	p.Submitted = true
	p.Products = toViews(rec.Products)
	p.Suggestions = toViews(rec.Suggestions)
}

func toViews(skus []domain.SKU) []productView {
	views := make([]productView, 0, len(skus))
	for _, s := range skus {
		views = append(views, productView{
			Name:          s.Name,
			Price:         domain.FormatPrice(s.PriceDiscount),
			OriginalPrice: domain.FormatPrice(s.PriceSale),
			Image:         s.FirstImage(),
			PurchaseURL:   s.PurchaseURL,
		})
	}
	return views
}
