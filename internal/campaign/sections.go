package campaign

import (
	"fmt"
	"strings"

	"github.com/maya/adcopy-agent/internal/types"
)

// Priority thresholds. Most sections promote at 50/25; the competitive and
// pricing sections carry sparser data and promote at 40/20.
const (
	defaultHighThreshold = 50
	defaultMedThreshold  = 25
	sparseHighThreshold  = 40
	sparseMedThreshold   = 20
)

// fallbackScore is assigned to sections that no data source populates.
// Sections are never empty: a literal fallback sentence stands in.
const fallbackScore = 10

const maxSectionScore = 100

// priorityFor buckets a section score using the given thresholds
func priorityFor(score, high, medium int) types.Priority {
	switch {
	case score >= high:
		return types.PriorityHigh
	case score >= medium:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// sourceFor tags where a section's data predominantly came from
func sourceFor(p *types.ClientProfile) types.DataSource {
	if p.HasIntakeData {
		return types.SourceIntake
	}
	if p.HasVectorData {
		return types.SourceVector
	}
	return types.SourceDerived
}

func capScore(score int) int {
	return min(score, maxSectionScore)
}

func buildBrandVoiceSection(p *types.ClientProfile) types.ContextSection {
	score := 0
	var lines []string

	if p.BrandVoice.Guidelines != "" {
		score += 30
		lines = append(lines, fmt.Sprintf("Brand guidelines: %s", p.BrandVoice.Guidelines))
	}
	if len(p.BrandVoice.Tone) > 0 {
		score += 25
		lines = append(lines, fmt.Sprintf("Tone: %s", strings.Join(p.BrandVoice.Tone, ", ")))
	}
	if len(p.BrandVoice.Personality) > 0 {
		score += 20
		lines = append(lines, fmt.Sprintf("Personality: %s", strings.Join(p.BrandVoice.Personality, ", ")))
	}
	if len(p.BrandVoice.BrandValues) > 0 {
		score += 15
		lines = append(lines, fmt.Sprintf("Brand values: %s", strings.Join(p.BrandVoice.BrandValues, ", ")))
	}
	if len(p.BrandVoice.CommunicationStyle) > 0 {
		score += 10
		lines = append(lines, fmt.Sprintf("Communication style: %s", strings.Join(p.BrandVoice.CommunicationStyle, ", ")))
	}

	return finishSection(lines, score, p,
		"Write in a professional, welcoming voice suited to residential marketing.",
		defaultHighThreshold, defaultMedThreshold)
}

func buildTargetAudienceSection(p *types.ClientProfile, req *types.CampaignRequest) types.ContextSection {
	score := 0
	var lines []string

	if p.Demographics.PrimaryAudience != "" {
		score += 25
		lines = append(lines, fmt.Sprintf("Primary audience: %s", p.Demographics.PrimaryAudience))
	}
	if len(p.Demographics.AgeRanges) > 0 {
		score += 20
		lines = append(lines, fmt.Sprintf("Age ranges: %s", strings.Join(p.Demographics.AgeRanges, ", ")))
	}
	if len(p.Demographics.IncomeLevels) > 0 {
		score += 15
		lines = append(lines, fmt.Sprintf("Income levels: %s", strings.Join(p.Demographics.IncomeLevels, ", ")))
	}
	if len(p.Demographics.Lifestyle) > 0 {
		score += 15
		lines = append(lines, fmt.Sprintf("Lifestyle: %s", strings.Join(p.Demographics.Lifestyle, ", ")))
	}
	if len(p.Demographics.Motivations) > 0 {
		score += 15
		lines = append(lines, fmt.Sprintf("Motivations: %s", strings.Join(p.Demographics.Motivations, ", ")))
	}
	if len(p.Demographics.PainPoints) > 0 {
		score += 10
		lines = append(lines, fmt.Sprintf("Pain points: %s", strings.Join(p.Demographics.PainPoints, ", ")))
	}
	if req.DemographicFocus != "" {
		score += 10
		lines = append(lines, fmt.Sprintf("Campaign demographic focus: %s", req.DemographicFocus))
	}

	return finishSection(lines, score, p,
		"Speak to prospective renters evaluating their next home.",
		defaultHighThreshold, defaultMedThreshold)
}

func buildPropertyHighlightsSection(p *types.ClientProfile, req *types.CampaignRequest) types.ContextSection {
	score := 0
	var lines []string

	if p.Property.CommunityName != "" {
		score += 15
		lines = append(lines, fmt.Sprintf("Community: %s", p.Property.CommunityName))
	}
	amenities := FilterAmenities(p.Property.Amenities, req.CampaignType)
	if len(amenities) > 0 {
		score += 25
		lines = append(lines, fmt.Sprintf("Key amenities: %s", strings.Join(amenities, ", ")))
	}
	if len(p.Property.UniqueFeatures) > 0 {
		score += 20
		lines = append(lines, fmt.Sprintf("Unique features: %s", strings.Join(p.Property.UniqueFeatures, ", ")))
	}
	if len(p.Property.Differentiators) > 0 {
		score += 10
		lines = append(lines, fmt.Sprintf("Differentiators: %s", strings.Join(p.Property.Differentiators, ", ")))
	}
	if len(p.Property.SpecialOffers) > 0 {
		score += 10
		lines = append(lines, fmt.Sprintf("Current offers: %s", strings.Join(p.Property.SpecialOffers, ", ")))
	}
	if req.UnitDetails != nil {
		score += 20
		lines = append(lines, fmt.Sprintf("Featured unit: %s", describeUnit(req.UnitDetails)))
	}

	return finishSection(lines, score, p,
		"Highlight comfortable, well-maintained apartment homes.",
		defaultHighThreshold, defaultMedThreshold)
}

func buildLocationBenefitsSection(p *types.ClientProfile, req *types.CampaignRequest) types.ContextSection {
	score := 0
	var lines []string

	if req.Location != "" {
		score += 20
		lines = append(lines, fmt.Sprintf("Location: %s", req.Location))
	}
	if len(p.Property.LocationAdvantages) > 0 {
		score += 35
		lines = append(lines, fmt.Sprintf("Location advantages: %s", strings.Join(p.Property.LocationAdvantages, "; ")))
	}
	if req.ProximityTarget != "" {
		score += 25
		lines = append(lines, fmt.Sprintf("Proximity anchor: %s", req.ProximityTarget))
	}

	return finishSection(lines, score, p,
		"Emphasize convenient access to the surrounding area.",
		defaultHighThreshold, defaultMedThreshold)
}

func buildCompetitiveAdvantagesSection(p *types.ClientProfile) types.ContextSection {
	score := 0
	var lines []string

	if len(p.Competitor.Names) > 0 {
		score += 20
		lines = append(lines, fmt.Sprintf("Competing properties: %s", strings.Join(p.Competitor.Names, ", ")))
	}
	if len(p.Competitor.Advantages) > 0 {
		score += 30
		lines = append(lines, fmt.Sprintf("Our advantages: %s", strings.Join(p.Competitor.Advantages, ", ")))
	}
	if len(p.Competitor.DifferentiationPoints) > 0 {
		score += 30
		lines = append(lines, fmt.Sprintf("Differentiation: %s", strings.Join(p.Competitor.DifferentiationPoints, "; ")))
	}
	if p.Competitor.MarketPosition != "" {
		score += 20
		lines = append(lines, fmt.Sprintf("Market position: %s", p.Competitor.MarketPosition))
	}

	return finishSection(lines, score, p,
		"Position the community on quality, service, and value.",
		sparseHighThreshold, sparseMedThreshold)
}

func buildPricingStrategySection(p *types.ClientProfile, req *types.CampaignRequest) types.ContextSection {
	score := 0
	var lines []string

	if p.Property.PricePoint != "" {
		score += 35
		lines = append(lines, fmt.Sprintf("Price point: %s", p.Property.PricePoint))
	}
	if req.PriceRange != "" {
		score += 25
		lines = append(lines, fmt.Sprintf("Campaign price range: %s", req.PriceRange))
	}
	if len(p.Property.SpecialOffers) > 0 {
		score += 20
		lines = append(lines, fmt.Sprintf("Offers: %s", strings.Join(p.Property.SpecialOffers, ", ")))
	}
	if req.SpecialOffer != "" {
		score += 20
		lines = append(lines, fmt.Sprintf("Campaign offer: %s", req.SpecialOffer))
	}

	return finishSection(lines, score, p,
		"Frame pricing around overall value rather than specific numbers.",
		sparseHighThreshold, sparseMedThreshold)
}

// finishSection caps the score, applies the fallback sentence when nothing
// populated the section, and assigns priority and data source.
func finishSection(lines []string, score int, p *types.ClientProfile, fallback string, high, medium int) types.ContextSection {
	if len(lines) == 0 {
		return types.ContextSection{
			Content:        fallback,
			RelevanceScore: fallbackScore,
			Priority:       priorityFor(fallbackScore, high, medium),
			DataSource:     types.SourceDerived,
		}
	}

	score = capScore(score)
	return types.ContextSection{
		Content:        strings.Join(lines, "\n"),
		RelevanceScore: score,
		Priority:       priorityFor(score, high, medium),
		DataSource:     sourceFor(p),
	}
}

// describeUnit renders unit details for section content
func describeUnit(u *types.UnitDetails) string {
	desc := fmt.Sprintf("%d bed / %d bath", u.Bedrooms, u.Bathrooms)
	if u.SquareFeet > 0 {
		desc += fmt.Sprintf(", %d sq ft", u.SquareFeet)
	}
	if u.UnitLabel != "" {
		desc += fmt.Sprintf(" (%s)", u.UnitLabel)
	}
	return desc
}
