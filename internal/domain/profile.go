package domain

import (
	"fmt"
	"slices"
)

// Hair types offered by the questionnaire
const (
	HairStraight = "Straight"
	HairWavy     = "Wavy"
	HairCurly    = "Curly"
	HairCoily    = "Coily"
	HairFine     = "Fine"
	HairThin     = "Thin"
	HairThick    = "Thick"
	HairDense    = "Dense"
)

// Chemical treatments
const (
	ChemistryNone          = "None"
	ChemistryDye           = "Dye"
	ChemistryStraightening = "Straightening"
	ChemistryRelaxing      = "Relaxing-chemical"
	ChemistryBotox         = "Botox"
	ChemistryRelaxer       = "Relaxer"
)

// Objectives. The first block is what the questionnaire offers; the second
// block is only referenced by the rule table and accepted from API clients.
const (
	ObjectiveHydrateNourish   = "Hydrate and nourish"
	ObjectiveRebuildStrength  = "Rebuild/Strengthen"
	ObjectiveReduceFrizz      = "Reduce volume and control frizz"
	ObjectiveCurlDefinition   = "Curl definition"
	ObjectiveDetox            = "Detox"
	ObjectiveAntiLossDandruff = "Anti-hair-loss/Anti-dandruff"
	ObjectiveHeatProtection   = "Heat protection and shine"

	ObjectiveHydrate            = "Hydrate"
	ObjectiveRebuild            = "Rebuild"
	ObjectiveReduceVolume       = "Reduce volume"
	ObjectiveIntenseNourishment = "Intense nourishment"
)

// Usage frequencies
const (
	FrequencyLight        = "Light home care (1–2×/week)"
	FrequencyIntensive    = "Intensive treatment (daily)"
	FrequencyProfessional = "Professional (salon)"
)

// Vegan / natural preference
const (
	VeganNo  = "No"
	VeganYes = "Yes"
)

// Kit sizes
const (
	KitHomeCare        = "Home Care (500–900 ml)"
	KitHomeCarePremium = "Home Care Premium (1 kg)"
	KitProfessional    = "Professional (2 kg+)"
)

// Option lists in questionnaire order
var (
	HairTypeOptions = []string{HairStraight, HairWavy, HairCurly, HairCoily, HairFine, HairThin, HairThick, HairDense}

	ChemistryOptions = []string{
		ChemistryNone, ChemistryDye, ChemistryStraightening,
		ChemistryRelaxing, ChemistryBotox, ChemistryRelaxer,
	}

	ObjectiveOptions = []string{
		ObjectiveHydrateNourish, ObjectiveRebuildStrength, ObjectiveReduceFrizz,
		ObjectiveCurlDefinition, ObjectiveDetox, ObjectiveAntiLossDandruff, ObjectiveHeatProtection,
	}

	FrequencyOptions = []string{FrequencyLight, FrequencyIntensive, FrequencyProfessional}

	VeganOptions = []string{VeganNo, VeganYes}

	KitSizeOptions = []string{KitHomeCare, KitHomeCarePremium, KitProfessional}
)

// acceptedObjectives is ObjectiveOptions plus the labels only the rule table uses
var acceptedObjectives = append(slices.Clone(ObjectiveOptions),
	ObjectiveHydrate, ObjectiveRebuild, ObjectiveReduceVolume, ObjectiveIntenseNourishment,
)

// Profile holds the six questionnaire answers that drive matching
type Profile struct {
	HairType  string `json:"hairType" form:"hair_type" binding:"required"`
	Chemistry string `json:"chemistry" form:"chemistry" binding:"required"`
	Objective string `json:"objective" form:"objective" binding:"required"`
	Frequency string `json:"frequency" form:"frequency" binding:"required"`
	Vegan     string `json:"vegan" form:"vegan" binding:"required"`
	KitSize   string `json:"kitSize" form:"kit_size" binding:"required"`
}

// Contact holds the identity fields the questionnaire requires. They gate the
// submission only and are never passed to matching.
type Contact struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Phone string `json:"phone" form:"phone" binding:"required"`
	Email string `json:"email" form:"email" binding:"required,email"`
}

// Validate checks every answer against its option list
func (p Profile) Validate() error {
	fields := []struct {
		name    string
		value   string
		options []string
	}{
		{"hairType", p.HairType, HairTypeOptions},
		{"chemistry", p.Chemistry, ChemistryOptions},
		{"objective", p.Objective, acceptedObjectives},
		{"frequency", p.Frequency, FrequencyOptions},
		{"vegan", p.Vegan, VeganOptions},
		{"kitSize", p.KitSize, KitSizeOptions},
	}

	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidProfile, f.name)
		}
		if !slices.Contains(f.options, f.value) {
			return fmt.Errorf("%w: %s %q is not an allowed option", ErrInvalidProfile, f.name, f.value)
		}
	}

	return nil
}
