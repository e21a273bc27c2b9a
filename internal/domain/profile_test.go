package domain

import (
	"errors"
	"testing"
)

func validProfile() Profile {
	return Profile{
		HairType:  HairCurly,
		Chemistry: ChemistryNone,
		Objective: ObjectiveCurlDefinition,
		Frequency: FrequencyLight,
		Vegan:     VeganNo,
		KitSize:   KitHomeCare,
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr bool
	}{
		{"valid profile", func(p *Profile) {}, false},
		{"rule-table objective accepted", func(p *Profile) { p.Objective = ObjectiveIntenseNourishment }, false},
		{"missing hair type", func(p *Profile) { p.HairType = "" }, true},
		{"unknown hair type", func(p *Profile) { p.HairType = "Bald" }, true},
		{"unknown chemistry", func(p *Profile) { p.Chemistry = "Perm" }, true},
		{"missing objective", func(p *Profile) { p.Objective = "" }, true},
		{"missing frequency", func(p *Profile) { p.Frequency = "" }, true},
		{"vegan must be yes or no", func(p *Profile) { p.Vegan = "Maybe" }, true},
		{"unknown kit size", func(p *Profile) { p.KitSize = "Travel (50 ml)" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidProfile) {
					t.Errorf("Validate() error = %v, want ErrInvalidProfile", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "R$ 0.00"},
		{49.9, "R$ 49.90"},
		{129.999, "R$ 130.00"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.amount); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFirstImage(t *testing.T) {
	if got := (SKU{}).FirstImage(); got != "" {
		t.Errorf("FirstImage() = %q, want empty", got)
	}

	sku := SKU{Images: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}}
	if got := sku.FirstImage(); got != "https://cdn.example.com/a.jpg" {
		t.Errorf("FirstImage() = %q, want first image", got)
	}
}
