//nolint:revive // types is a standard Go package name pattern
package types

// BrandVoiceProfile captures how a client wants to sound in marketing copy
type BrandVoiceProfile struct {
	Tone               []string `json:"tone"`
	Personality        []string `json:"personality"`
	CommunicationStyle []string `json:"communication_style"`
	BrandValues        []string `json:"brand_values"`
	Guidelines         string   `json:"guidelines"`
}

// DemographicsProfile captures who the client is marketing to
type DemographicsProfile struct {
	PrimaryAudience string   `json:"primary_audience"`
	AgeRanges       []string `json:"age_ranges"`
	IncomeLevels    []string `json:"income_levels"`
	Lifestyle       []string `json:"lifestyle"`
	Motivations     []string `json:"motivations"`
	PainPoints      []string `json:"pain_points"`
}

// PropertyProfile captures what the client is marketing
type PropertyProfile struct {
	CommunityName      string   `json:"community_name"`
	Amenities          []string `json:"amenities"`
	UniqueFeatures     []string `json:"unique_features"`
	LocationAdvantages []string `json:"location_advantages"`
	PricePoint         string   `json:"price_point"`
	SpecialOffers      []string `json:"special_offers"`
	Differentiators    []string `json:"differentiators"`
}

// CompetitorProfile captures the competitive landscape around the property
type CompetitorProfile struct {
	Names                 []string `json:"names"`
	Advantages            []string `json:"advantages"`
	DifferentiationPoints []string `json:"differentiation_points"`
	MarketPosition        string   `json:"market_position"`
}

// ClientProfile is the synthesized merge of structured intake data and
// classified knowledge fragments. It is built once per generation request
// and never persisted by this subsystem.
type ClientProfile struct {
	BrandVoice        BrandVoiceProfile   `json:"brand_voice"`
	Demographics      DemographicsProfile `json:"demographics"`
	Property          PropertyProfile     `json:"property"`
	Competitor        CompetitorProfile   `json:"competitor"`
	HasIntakeData     bool                `json:"has_intake_data"`
	HasVectorData     bool                `json:"has_vector_data"`
	CompletenessScore int                 `json:"completeness_score"`
}

// IntakeRecord is the structured intake form for a client, as returned by the
// intake store. All fields are optional; empty values mean the client did not
// fill that part of the form.
type IntakeRecord struct {
	ClientID           string   `json:"client_id"`
	CommunityName      string   `json:"community_name"`
	BrandGuidelines    string   `json:"brand_guidelines"`
	Tone               []string `json:"tone"`
	Personality        []string `json:"personality"`
	CommunicationStyle []string `json:"communication_style"`
	BrandValues        []string `json:"brand_values"`
	PrimaryAudience    string   `json:"primary_audience"`
	AgeRanges          []string `json:"age_ranges"`
	IncomeLevels       []string `json:"income_levels"`
	Lifestyle          []string `json:"lifestyle"`
	Motivations        []string `json:"motivations"`
	PainPoints         []string `json:"pain_points"`
	Amenities          []string `json:"amenities"`
	UniqueFeatures     []string `json:"unique_features"`
	LocationAdvantages []string `json:"location_advantages"`
	PricePoint         string   `json:"price_point"`
	SpecialOffers      []string `json:"special_offers"`
	Differentiators    []string `json:"differentiators"`
	CompetitorNames    []string `json:"competitor_names"`
	CompetitorEdges    []string `json:"competitor_edges"`
	MarketPosition     string   `json:"market_position"`
}
