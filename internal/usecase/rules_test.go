package usecase

import (
	"reflect"
	"testing"

	"github.com/hairdiag/backend/internal/domain"
)

func profile(hairType, chemistry, objective, vegan, kitSize string) domain.Profile {
	return domain.Profile{
		HairType:  hairType,
		Chemistry: chemistry,
		Objective: objective,
		Frequency: domain.FrequencyLight,
		Vegan:     vegan,
		KitSize:   kitSize,
	}
}

func TestRuleTableKeywords(t *testing.T) {
	rules := DefaultRuleTable()

	tests := []struct {
		name    string
		profile domain.Profile
		want    []string
	}{
		{"straight hydrate", profile(domain.HairStraight, domain.ChemistryNone, domain.ObjectiveHydrate, domain.VeganNo, domain.KitHomeCare), []string{"Web-treatment"}},
		{"wavy rebuild", profile(domain.HairWavy, domain.ChemistryDye, domain.ObjectiveRebuild, domain.VeganNo, domain.KitHomeCare), []string{"Gold-line"}},
		{"straight detox", profile(domain.HairStraight, domain.ChemistryBotox, domain.ObjectiveDetox, domain.VeganNo, domain.KitHomeCare), []string{"Detox", "Genesis"}},
		{"straight uncovered objective", profile(domain.HairStraight, domain.ChemistryNone, domain.ObjectiveCurlDefinition, domain.VeganNo, domain.KitHomeCare), []string{}},
		{"curly curl definition", profile(domain.HairCurly, domain.ChemistryNone, domain.ObjectiveCurlDefinition, domain.VeganNo, domain.KitHomeCare), []string{"Curls-line"}},
		{"coily hydrate and nourish", profile(domain.HairCoily, domain.ChemistryNone, domain.ObjectiveHydrateNourish, domain.VeganNo, domain.KitHomeCare), []string{"Web-treatment", "Alchemy-line"}},
		{"curly detox", profile(domain.HairCurly, domain.ChemistryNone, domain.ObjectiveDetox, domain.VeganNo, domain.KitHomeCare), []string{"Detox", "Genesis"}},
		{"curly ignores straightening", profile(domain.HairCurly, domain.ChemistryStraightening, domain.ObjectiveDetox, domain.VeganNo, domain.KitHomeCare), []string{"Detox", "Genesis"}},
		{"fine anti loss", profile(domain.HairFine, domain.ChemistryNone, domain.ObjectiveAntiLossDandruff, domain.VeganNo, domain.KitHomeCare), []string{"Anti-Hair-Loss", "Anti-Dandruff"}},
		{"thin rebuild strengthen", profile(domain.HairThin, domain.ChemistryNone, domain.ObjectiveRebuildStrength, domain.VeganNo, domain.KitHomeCare), []string{"Gold-line", "Amino-acids"}},
		{"thick reduce volume", profile(domain.HairThick, domain.ChemistryNone, domain.ObjectiveReduceVolume, domain.VeganNo, domain.KitHomeCare), []string{"Volume-Reducer"}},
		{"dense intense nourishment", profile(domain.HairDense, domain.ChemistryNone, domain.ObjectiveIntenseNourishment, domain.VeganNo, domain.KitHomeCare), []string{"Oils", "Alchemy-line"}},
		{"thick uncovered objective", profile(domain.HairThick, domain.ChemistryNone, domain.ObjectiveDetox, domain.VeganNo, domain.KitHomeCare), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.Keywords(tt.profile)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keywords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRuleTableChemistryOverridesObjective(t *testing.T) {
	rules := DefaultRuleTable()
	want := []string{"Progressive-treatment", "Nano-smoothing"}

	for _, hairType := range []string{domain.HairStraight, domain.HairWavy} {
		for _, chemistry := range []string{domain.ChemistryStraightening, domain.ChemistryRelaxing} {
			for _, objective := range domain.ObjectiveOptions {
				p := profile(hairType, chemistry, objective, domain.VeganNo, domain.KitHomeCare)
				if got := rules.Keywords(p); !reflect.DeepEqual(got, want) {
					t.Errorf("Keywords(%s, %s, %s) = %v, want %v", hairType, chemistry, objective, got, want)
				}
			}
		}
	}
}

func TestRuleTableKeywordsReturnsCopy(t *testing.T) {
	rules := DefaultRuleTable()
	p := profile(domain.HairCurly, domain.ChemistryNone, domain.ObjectiveDetox, domain.VeganNo, domain.KitHomeCare)

	got := rules.Keywords(p)
	got[0] = "mutated"

	if again := rules.Keywords(p); again[0] != "Detox" {
		t.Errorf("rule table was mutated through returned slice: %v", again)
	}
}

func TestRuleTableNarrowVegan(t *testing.T) {
	rules := DefaultRuleTable()

	tests := []struct {
		name  string
		keys  []string
		vegan string
		want  []string
	}{
		{"preference off keeps set", []string{"Detox", "Vegan Detox"}, domain.VeganNo, []string{"Detox", "Vegan Detox"}},
		{"keeps vegan and natural entries", []string{"Detox", "Vegan Detox", "Natural Oils"}, domain.VeganYes, []string{"Vegan Detox", "Natural Oils"}},
		{"reverts when nothing survives", []string{"Detox", "Genesis"}, domain.VeganYes, []string{"Detox", "Genesis"}},
		{"marker match is case sensitive", []string{"vegan-line"}, domain.VeganYes, []string{"vegan-line"}},
		{"empty stays empty", []string{}, domain.VeganYes, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.NarrowVegan(tt.keys, tt.vegan)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NarrowVegan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRuleTableNarrowVeganNeverEmptiesNonEmptySet(t *testing.T) {
	rules := DefaultRuleTable()

	for _, group := range rules.Objective {
		for _, keys := range group {
			if got := rules.NarrowVegan(keys, domain.VeganYes); len(got) == 0 {
				t.Errorf("NarrowVegan(%v) returned empty set", keys)
			}
		}
	}
}

func TestRuleTableSizes(t *testing.T) {
	rules := DefaultRuleTable()

	tests := []struct {
		kitSize string
		want    []string
	}{
		{domain.KitHomeCare, []string{"500", "900", "Home Care"}},
		{domain.KitHomeCarePremium, []string{"1 kg", "Premium"}},
		{domain.KitProfessional, []string{"2 kg", "Professional"}},
		{"anything else", []string{"2 kg", "Professional"}},
	}

	for _, tt := range tests {
		t.Run(tt.kitSize, func(t *testing.T) {
			if got := rules.Sizes(tt.kitSize); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sizes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRuleTableExtendedWithoutCodeChanges(t *testing.T) {
	rules := DefaultRuleTable()
	rules.Objective[GroupThick][domain.ObjectiveDetox] = []string{"Detox"}

	p := profile(domain.HairThick, domain.ChemistryNone, domain.ObjectiveDetox, domain.VeganNo, domain.KitHomeCare)
	if got := rules.Keywords(p); !reflect.DeepEqual(got, []string{"Detox"}) {
		t.Errorf("Keywords() = %v, want [Detox]", got)
	}
}
