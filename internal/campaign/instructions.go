package campaign

import (
	"fmt"

	"github.com/maya/adcopy-agent/internal/types"
)

// campaignInstructions returns the fixed instructional strings appended to the
// campaign-specific instruction list, plus per-section content suffixes.
// Deterministic for a given request: same inputs, same strings.
func campaignInstructions(req *types.CampaignRequest) []string {
	var instructions []string

	switch req.CampaignType {
	case types.CampaignUnitType:
		if req.UnitDetails != nil {
			instructions = append(instructions,
				fmt.Sprintf("Lead headlines with the %d bed / %d bath unit type.", req.UnitDetails.Bedrooms, req.UnitDetails.Bathrooms))
			if req.UnitDetails.SquareFeet > 0 {
				instructions = append(instructions,
					fmt.Sprintf("Mention %d sq ft of living space where it fits naturally.", req.UnitDetails.SquareFeet))
			}
		}
		instructions = append(instructions,
			"Focus descriptions on in-unit features over community amenities.")

	case types.CampaignProximity:
		if req.ProximityTarget != "" {
			instructions = append(instructions,
				fmt.Sprintf("Anchor copy on proximity to %s.", req.ProximityTarget))
			instructions = append(instructions,
				fmt.Sprintf("Use commute and convenience language tied to %s.", req.ProximityTarget))
		} else {
			instructions = append(instructions,
				"Anchor copy on proximity to nearby destinations.")
		}

	default:
		// General location and unknown campaign types
		instructions = append(instructions,
			fmt.Sprintf("Feature %s prominently in headlines.", req.Location),
			"Balance community amenities with neighborhood appeal.")
	}

	if req.SpecialOffer != "" {
		instructions = append(instructions,
			fmt.Sprintf("Work the current offer into at least one description: %s.", req.SpecialOffer))
	}

	return instructions
}

// augmentSections appends the fixed campaign-specific suffixes to the relevant
// sections' content. Suffixes add emphasis only; scores are unchanged.
func augmentSections(ctx *types.CampaignContext, req *types.CampaignRequest) {
	switch req.CampaignType {
	case types.CampaignUnitType:
		if req.UnitDetails != nil {
			ctx.PropertyHighlights.Content += fmt.Sprintf(
				"\nEmphasis: this campaign sells the %s floor plan.", describeUnit(req.UnitDetails))
		}
	case types.CampaignProximity:
		if req.ProximityTarget != "" {
			ctx.LocationBenefits.Content += fmt.Sprintf(
				"\nEmphasis: every ad should reinforce closeness to %s.", req.ProximityTarget)
		}
	}
}
