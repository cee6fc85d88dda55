package profile

import "github.com/maya/adcopy-agent/internal/types"

// Completeness is a fixed-point allocation across four weighted buckets plus a
// data-source bonus. The sub-weights sum to exactly 100, so the score is
// capped by construction and order-independent.
//
//	brand voice   25 (guidelines 10, tone 5, personality 5, values 5)
//	demographics  25 (5 × 5 sub-checks)
//	property      25 (5 × 5 sub-checks)
//	competitor    15 (3 × 5 sub-checks)
//	bonus         10 (intake present 5, >= VectorDataThreshold fragments 5)
func computeCompleteness(p *types.ClientProfile, frags *types.CategorizedFragments) int {
	score := 0

	// Brand voice: 25
	if p.BrandVoice.Guidelines != "" {
		score += 10
	}
	if len(p.BrandVoice.Tone) > 0 {
		score += 5
	}
	if len(p.BrandVoice.Personality) > 0 {
		score += 5
	}
	if len(p.BrandVoice.BrandValues) > 0 {
		score += 5
	}

	// Demographics: 25
	if p.Demographics.PrimaryAudience != "" {
		score += 5
	}
	if len(p.Demographics.AgeRanges) > 0 {
		score += 5
	}
	if len(p.Demographics.IncomeLevels) > 0 {
		score += 5
	}
	if len(p.Demographics.Lifestyle) > 0 {
		score += 5
	}
	if len(p.Demographics.Motivations) > 0 {
		score += 5
	}

	// Property: 25
	if p.Property.CommunityName != "" {
		score += 5
	}
	if len(p.Property.Amenities) > 0 {
		score += 5
	}
	if len(p.Property.UniqueFeatures) > 0 {
		score += 5
	}
	if len(p.Property.LocationAdvantages) > 0 {
		score += 5
	}
	if p.Property.PricePoint != "" {
		score += 5
	}

	// Competitor: 15
	if len(p.Competitor.Names) > 0 {
		score += 5
	}
	if len(p.Competitor.Advantages) > 0 {
		score += 5
	}
	if p.Competitor.MarketPosition != "" {
		score += 5
	}

	// Data-source bonus: 10
	if p.HasIntakeData {
		score += 5
	}
	if frags.Total() >= VectorDataThreshold {
		score += 5
	}

	return score
}
