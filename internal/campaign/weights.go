// Package campaign builds the weighted six-section context that prompt
// assembly consumes, from a client profile and campaign parameters.
package campaign

import "github.com/maya/adcopy-agent/internal/types"

// sectionWeights holds the per-campaign-type weighting of the six sections.
// Each table sums to exactly 1.0; the overall relevance score is the rounded
// weighted sum, not a simple average.
type sectionWeights struct {
	BrandVoice            float64
	TargetAudience        float64
	PropertyHighlights    float64
	LocationBenefits      float64
	CompetitiveAdvantages float64
	PricingStrategy       float64
}

// weightTables keys the section weights by campaign type. Unknown campaign
// types fall back to the general location table rather than erroring.
var weightTables = map[types.CampaignType]sectionWeights{
	types.CampaignGeneralLocation: {
		BrandVoice:            0.15,
		TargetAudience:        0.20,
		PropertyHighlights:    0.20,
		LocationBenefits:      0.25,
		CompetitiveAdvantages: 0.10,
		PricingStrategy:       0.10,
	},
	types.CampaignUnitType: {
		BrandVoice:            0.15,
		TargetAudience:        0.20,
		PropertyHighlights:    0.30,
		LocationBenefits:      0.10,
		CompetitiveAdvantages: 0.10,
		PricingStrategy:       0.15,
	},
	types.CampaignProximity: {
		BrandVoice:            0.10,
		TargetAudience:        0.20,
		PropertyHighlights:    0.15,
		LocationBenefits:      0.35,
		CompetitiveAdvantages: 0.10,
		PricingStrategy:       0.10,
	},
}

// weightsFor returns the weight table for a campaign type, defaulting to the
// general location table for unknown types.
func weightsFor(campaignType types.CampaignType) sectionWeights {
	if w, ok := weightTables[campaignType]; ok {
		return w
	}
	return weightTables[types.CampaignGeneralLocation]
}

// Strength bucket thresholds applied to the rounded overall score
const (
	strongThreshold   = 70
	moderateThreshold = 40
)

// strengthFor buckets the overall weighted relevance score
func strengthFor(overall int) types.ContextStrength {
	switch {
	case overall >= strongThreshold:
		return types.StrengthStrong
	case overall >= moderateThreshold:
		return types.StrengthModerate
	default:
		return types.StrengthWeak
	}
}
