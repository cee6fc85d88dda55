package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maya/adcopy-agent/internal/types"
)

func TestPrintClassifiedFragments(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	frags := &types.CategorizedFragments{}
	frags.Append(types.ClassifiedFragment{
		Fragment:   types.Fragment{Content: "Our tone is upscale and warm", Similarity: 0.9},
		Category:   types.CategoryBrandVoice,
		Confidence: 0.8,
	})
	frags.Append(types.ClassifiedFragment{
		Fragment:   types.Fragment{Content: "Rooftop pool with skyline views", Similarity: 0.85},
		Category:   types.CategoryPropertyFeatures,
		Confidence: 0.7,
	})

	p.PrintClassifiedFragments(frags)
	output := buf.String()

	assert.Contains(t, output, "CLASSIFIED FRAGMENTS")
	assert.Contains(t, output, "Total fragments: 2")
	assert.Contains(t, output, "brand_voice (1)")
	assert.Contains(t, output, "property_features (1)")
}

func TestPrintClassifiedFragments_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClassifiedFragments(&types.CategorizedFragments{})
	p.PrintClassifiedFragments(nil)

	assert.Empty(t, buf.String())
}

func TestPrintClientProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.ClientProfile{
		BrandVoice:   types.BrandVoiceProfile{Tone: []string{"Upscale", "Warm"}},
		Demographics: types.DemographicsProfile{PrimaryAudience: "Young professionals"},
		Property: types.PropertyProfile{
			CommunityName: "The Heights",
			Amenities:     []string{"Pool", "Gym", "Dog Park", "Clubhouse", "Garage", "Lounge"},
		},
		HasIntakeData:     true,
		CompletenessScore: 75,
	}

	p.PrintClientProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "CLIENT PROFILE")
	assert.Contains(t, output, "The Heights")
	assert.Contains(t, output, "Completeness: 75/100")
	assert.Contains(t, output, "Upscale, Warm")
	assert.Contains(t, output, "... and 1 more")
}

func TestPrintClientProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClientProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintCampaignContext(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	campaignCtx := &types.CampaignContext{
		BrandVoice:            types.ContextSection{RelevanceScore: 80, Priority: types.PriorityHigh, DataSource: types.SourceIntake},
		PricingStrategy:       types.ContextSection{RelevanceScore: 10, Priority: types.PriorityLow, DataSource: types.SourceDerived},
		OverallRelevanceScore: 62,
		ContextStrength:       types.StrengthModerate,
		CampaignInstructions:  []string{"Emphasize the location"},
	}

	p.PrintCampaignContext(campaignCtx)
	output := buf.String()

	assert.Contains(t, output, "CAMPAIGN CONTEXT")
	assert.Contains(t, output, "Overall: 62 (moderate)")
	assert.Contains(t, output, "Brand Voice")
	assert.Contains(t, output, "Emphasize the location")
}

func TestPrintConstraintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.ConstraintReport{
		Headlines: []types.ConstraintResult{
			{Original: "Too short", Final: "Luxury Too Short Apts Now", Length: 25, Repaired: true},
			{Original: "Modern Downtown Apartments", Final: "Modern Downtown Apartments", Length: 26, Valid: true},
		},
		Descriptions: []types.ConstraintResult{
			{Original: "d", Final: "d", Length: 1, BestEffort: true, Repaired: true},
		},
	}

	p.PrintConstraintReport(report)
	output := buf.String()

	assert.Contains(t, output, "CONSTRAINT REPORT")
	assert.Contains(t, output, "Repaired:     2")
	assert.Contains(t, output, "Best effort:  1")
}

func TestPrintAdCopy(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	adCopy := &types.AdCopy{
		Headlines:    []string{"Modern Downtown Apartments"},
		Descriptions: []string{"Spacious floor plans with resort style amenities in the heart of downtown."},
		FinalURLPath: "apartments/downtown",
	}

	p.PrintAdCopy(adCopy)
	output := buf.String()

	assert.Contains(t, output, "GENERATED AD COPY")
	assert.Contains(t, output, "Modern Downtown Apartments")
	assert.Contains(t, output, "apartments/downtown")
}
