package campaign

import (
	"strings"

	"github.com/maya/adcopy-agent/internal/types"
)

// maxFallbackAmenities bounds the unfiltered fallback list so a filtered-out
// amenity set never produces an empty "Key amenities" line.
const maxFallbackAmenities = 6

// amenityAllowLists keys per-campaign-type keyword allow-lists. Amenities are
// kept when their name contains any allowed keyword (case-insensitive).
// General location campaigns surface the full list.
var amenityAllowLists = map[types.CampaignType][]string{
	types.CampaignUnitType: {
		"granite", "stainless", "laundry", "washer", "dryer", "balcony",
		"closet", "hardwood", "in-unit", "countertop",
	},
	types.CampaignProximity: {
		"parking", "garage", "transit", "bike", "commute", "concierge",
	},
}

// FilterAmenities narrows the amenity list to those relevant to the campaign
// type. If the filter would empty the list, the first maxFallbackAmenities
// unfiltered entries are returned instead.
func FilterAmenities(amenities []string, campaignType types.CampaignType) []string {
	allowed, ok := amenityAllowLists[campaignType]
	if !ok || len(amenities) == 0 {
		return amenities
	}

	var filtered []string
	for _, amenity := range amenities {
		lowered := strings.ToLower(amenity)
		for _, keyword := range allowed {
			if strings.Contains(lowered, keyword) {
				filtered = append(filtered, amenity)
				break
			}
		}
	}

	if len(filtered) == 0 {
		if len(amenities) > maxFallbackAmenities {
			return amenities[:maxFallbackAmenities]
		}
		return amenities
	}
	return filtered
}
