//nolint:revive // types is a standard Go package name pattern
package types

// CampaignType identifies the kind of ad campaign being generated
type CampaignType string

// Campaign type constants. Unknown values fall back to the general location
// weight table rather than erroring.
const (
	CampaignGeneralLocation CampaignType = "re_general_location"
	CampaignUnitType        CampaignType = "re_unit_type"
	CampaignProximity       CampaignType = "re_proximity"
)

// IsValid reports whether the campaign type is one of the known constants.
func (t CampaignType) IsValid() bool {
	switch t {
	case CampaignGeneralLocation, CampaignUnitType, CampaignProximity:
		return true
	}
	return false
}

// UnitDetails describes the floor plan a unit-type campaign targets
type UnitDetails struct {
	Bedrooms   int    `json:"bedrooms"`
	Bathrooms  int    `json:"bathrooms"`
	SquareFeet int    `json:"square_feet,omitempty"`
	UnitLabel  string `json:"unit_label,omitempty"`
}

// CampaignRequest holds the campaign parameters for a generation request
type CampaignRequest struct {
	ClientID         string       `json:"client_id" validate:"required"`
	CampaignType     CampaignType `json:"campaign_type" validate:"required"`
	AdGroupType      string       `json:"ad_group_type,omitempty"`
	Location         string       `json:"location" validate:"required"`
	UnitDetails      *UnitDetails `json:"unit_details,omitempty"`
	ProximityTarget  string       `json:"proximity_target,omitempty"`
	PriceRange       string       `json:"price_range,omitempty"`
	DemographicFocus string       `json:"demographic_focus,omitempty"`
	SpecialOffer     string       `json:"special_offer,omitempty"`
}

// Priority buckets a context section by how much weight prompt assembly should give it
type Priority string

// Priority constants
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DataSource tags where a context section's content came from
type DataSource string

// DataSource constants
const (
	SourceIntake  DataSource = "intake"
	SourceVector  DataSource = "vector"
	SourceDerived DataSource = "derived"
)

// ContextStrength buckets the overall weighted relevance score
type ContextStrength string

// ContextStrength constants
const (
	StrengthStrong   ContextStrength = "strong"
	StrengthModerate ContextStrength = "moderate"
	StrengthWeak     ContextStrength = "weak"
)

// ContextSection is one weighted slice of the campaign context.
// Content is never empty: sections that no data source populates carry a
// fixed fallback sentence with a low relevance score.
type ContextSection struct {
	Content        string     `json:"content"`
	RelevanceScore int        `json:"relevance_score"`
	Priority       Priority   `json:"priority"`
	DataSource     DataSource `json:"data_source"`
}

// CampaignContext is the six-section scored context object consumed by prompt
// assembly. Immutable after construction.
type CampaignContext struct {
	BrandVoice            ContextSection  `json:"brand_voice"`
	TargetAudience        ContextSection  `json:"target_audience"`
	PropertyHighlights    ContextSection  `json:"property_highlights"`
	LocationBenefits      ContextSection  `json:"location_benefits"`
	CompetitiveAdvantages ContextSection  `json:"competitive_advantages"`
	PricingStrategy       ContextSection  `json:"pricing_strategy"`
	OverallRelevanceScore int             `json:"overall_relevance_score"`
	ContextStrength       ContextStrength `json:"context_strength"`
	CampaignInstructions  []string        `json:"campaign_specific_instructions"`
}

// Sections returns the six sections in their canonical order
func (c *CampaignContext) Sections() []ContextSection {
	return []ContextSection{
		c.BrandVoice,
		c.TargetAudience,
		c.PropertyHighlights,
		c.LocationBenefits,
		c.CompetitiveAdvantages,
		c.PricingStrategy,
	}
}
