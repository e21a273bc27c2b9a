package usecase

import "github.com/hairdiag/backend/internal/domain"

// HairGroup buckets hair types that share the same keyword rules
type HairGroup string

const (
	GroupSmooth   HairGroup = "smooth"   // straight, wavy
	GroupTextured HairGroup = "textured" // curly, coily
	GroupFine     HairGroup = "fine"     // fine, thin
	GroupThick    HairGroup = "thick"    // thick, dense and anything unlisted
)

// RuleTable maps questionnaire answers to the catalog keywords and size markers
// searched for in product names. Adding a profile combination means adding an
// entry here, not a branch in the matcher.
type RuleTable struct {
	// HairGroups assigns hair types to groups; unlisted types fall into DefaultGroup.
	HairGroups   map[string]HairGroup
	DefaultGroup HairGroup

	// Chemistry rules are consulted before Objective rules.
	Chemistry map[HairGroup]map[string][]string
	Objective map[HairGroup]map[string][]string

	// VeganMarkers narrow the keyword set when the visitor prefers vegan products.
	VeganMarkers []string

	// SizeMarkers by kit size; unlisted sizes use DefaultSizeMarkers.
	SizeMarkers        map[string][]string
	DefaultSizeMarkers []string
}

// DefaultRuleTable returns the storefront's rule table
func DefaultRuleTable() RuleTable {
	return RuleTable{
		HairGroups: map[string]HairGroup{
			domain.HairStraight: GroupSmooth,
			domain.HairWavy:     GroupSmooth,
			domain.HairCurly:    GroupTextured,
			domain.HairCoily:    GroupTextured,
			domain.HairFine:     GroupFine,
			domain.HairThin:     GroupFine,
		},
		DefaultGroup: GroupThick,

		Chemistry: map[HairGroup]map[string][]string{
			GroupSmooth: {
				domain.ChemistryStraightening: {"Progressive-treatment", "Nano-smoothing"},
				domain.ChemistryRelaxing:      {"Progressive-treatment", "Nano-smoothing"},
			},
		},

		Objective: map[HairGroup]map[string][]string{
			GroupSmooth: {
				domain.ObjectiveHydrate: {"Web-treatment"},
				domain.ObjectiveRebuild: {"Gold-line"},
				domain.ObjectiveDetox:   {"Detox", "Genesis"},
			},
			GroupTextured: {
				domain.ObjectiveCurlDefinition: {"Curls-line"},
				domain.ObjectiveHydrateNourish: {"Web-treatment", "Alchemy-line"},
				domain.ObjectiveDetox:          {"Detox", "Genesis"},
			},
			GroupFine: {
				domain.ObjectiveAntiLossDandruff: {"Anti-Hair-Loss", "Anti-Dandruff"},
				domain.ObjectiveRebuildStrength:  {"Gold-line", "Amino-acids"},
			},
			GroupThick: {
				domain.ObjectiveReduceVolume:       {"Volume-Reducer"},
				domain.ObjectiveIntenseNourishment: {"Oils", "Alchemy-line"},
			},
		},

		VeganMarkers: []string{"Vegan", "Natural"},

		SizeMarkers: map[string][]string{
			domain.KitHomeCare:        {"500", "900", "Home Care"},
			domain.KitHomeCarePremium: {"1 kg", "Premium"},
		},
		DefaultSizeMarkers: []string{"2 kg", "Professional"},
	}
}

// GroupOf returns the hair group for a hair type
func (t RuleTable) GroupOf(hairType string) HairGroup {
	if group, ok := t.HairGroups[hairType]; ok {
		return group
	}
	return t.DefaultGroup
}

// Keywords returns the keyword set for a profile before the vegan adjustment.
// An uncovered combination yields an empty set, which matches no product.
func (t RuleTable) Keywords(profile domain.Profile) []string {
	group := t.GroupOf(profile.HairType)

	if keys, ok := t.Chemistry[group][profile.Chemistry]; ok {
		return clone(keys)
	}
	return clone(t.Objective[group][profile.Objective])
}

// NarrowVegan keeps the keywords carrying a vegan marker. The preference is
// advisory: if nothing survives, the original set is returned.
func (t RuleTable) NarrowVegan(keys []string, vegan string) []string {
	if vegan != domain.VeganYes {
		return keys
	}

	var narrowed []string
	for _, k := range keys {
		if containsAny(k, t.VeganMarkers) {
			narrowed = append(narrowed, k)
		}
	}
	if len(narrowed) == 0 {
		return keys
	}
	return narrowed
}

// Sizes returns the size markers for a kit size
func (t RuleTable) Sizes(kitSize string) []string {
	if markers, ok := t.SizeMarkers[kitSize]; ok {
		return clone(markers)
	}
	return clone(t.DefaultSizeMarkers)
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
