package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maya/adcopy-agent/internal/types"
)

func intakeFixture() *types.IntakeRecord {
	return &types.IntakeRecord{
		ClientID:        "client-1",
		CommunityName:   "The Heights",
		BrandGuidelines: "Always lead with community, never with price.",
		Tone:            []string{"Upscale", "Warm"},
		Personality:     []string{"Confident"},
		BrandValues:     []string{"Community first"},
		PrimaryAudience: "Young professionals",
		AgeRanges:       []string{"25-34"},
		IncomeLevels:    []string{"Upper-middle income"},
		Lifestyle:       []string{"Active"},
		Motivations:     []string{"Short commute"},
		Amenities:       []string{"Swimming Pool"},
		UniqueFeatures:  []string{"Rooftop terrace"},
		PricePoint:      "$2,100",
		CompetitorNames: []string{"Parkside Flats"},
		CompetitorEdges: []string{"Newer construction"},
		MarketPosition:  "Premium mid-market",
	}
}

func TestBuild_NilInputs(t *testing.T) {
	p := Build(nil, nil)

	require.NotNil(t, p)
	assert.False(t, p.HasIntakeData)
	assert.False(t, p.HasVectorData)
	// Defaults guarantee common fields are populated even with no data
	assert.NotEmpty(t, p.BrandVoice.Tone)
	assert.NotEmpty(t, p.Demographics.PrimaryAudience)
}

func TestBuild_IntakeIsAuthoritative(t *testing.T) {
	frags := &types.CategorizedFragments{
		BrandVoice: []types.ClassifiedFragment{
			{Fragment: types.Fragment{Content: "Keep it casual and playful", Similarity: 0.9}, Category: types.CategoryBrandVoice},
		},
	}

	p := Build(intakeFixture(), frags)

	// Intake guidelines must not be overwritten by the fragment
	assert.Equal(t, "Always lead with community, never with price.", p.BrandVoice.Guidelines)
	// Fragment-derived tones are added, never replacing intake tones
	assert.Equal(t, "Upscale", p.BrandVoice.Tone[0])
	assert.Equal(t, "Warm", p.BrandVoice.Tone[1])
	assert.Contains(t, p.BrandVoice.Tone, "Casual")
}

func TestBuild_FragmentsFillEmptyScalars(t *testing.T) {
	intake := intakeFixture()
	intake.PricePoint = ""
	frags := &types.CategorizedFragments{
		PropertyFeatures: []types.ClassifiedFragment{
			{Fragment: types.Fragment{Content: "Spacious units from $1,750 with granite counters", Similarity: 0.8}, Category: types.CategoryPropertyFeatures},
		},
	}

	p := Build(intake, frags)

	assert.Equal(t, "$1,750", p.Property.PricePoint)
	assert.Contains(t, p.Property.Amenities, "Granite Countertops")
	// Intake amenity list keeps its original head entry
	assert.Equal(t, "Swimming Pool", p.Property.Amenities[0])
}

func TestBuild_ListDeduplication(t *testing.T) {
	intake := intakeFixture()
	frags := &types.CategorizedFragments{
		PropertyFeatures: []types.ClassifiedFragment{
			{Fragment: types.Fragment{Content: "Resort pool open year round", Similarity: 0.7}, Category: types.CategoryPropertyFeatures},
		},
	}

	p := Build(intake, frags)

	// "pool" maps to Swimming Pool which intake already lists
	count := 0
	for _, a := range p.Property.Amenities {
		if a == "Swimming Pool" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuild_VectorDataThreshold(t *testing.T) {
	two := &types.CategorizedFragments{
		General: []types.ClassifiedFragment{
			{Fragment: types.Fragment{Content: "a"}}, {Fragment: types.Fragment{Content: "b"}},
		},
	}
	three := &types.CategorizedFragments{
		General: []types.ClassifiedFragment{
			{Fragment: types.Fragment{Content: "a"}}, {Fragment: types.Fragment{Content: "b"}}, {Fragment: types.Fragment{Content: "c"}},
		},
	}

	assert.False(t, Build(nil, two).HasVectorData)
	assert.True(t, Build(nil, three).HasVectorData)
}

func TestBuild_CompletenessFullIntake(t *testing.T) {
	frags := &types.CategorizedFragments{
		General: []types.ClassifiedFragment{
			{Fragment: types.Fragment{Content: "a"}}, {Fragment: types.Fragment{Content: "b"}}, {Fragment: types.Fragment{Content: "c"}},
		},
	}

	p := Build(intakeFixture(), frags)

	// All brand voice (25), demographics (25), competitor (15), bonus (10).
	// Property misses location advantages (-5): 95.
	assert.Equal(t, 95, p.CompletenessScore)
}

func TestBuild_CompletenessEmpty(t *testing.T) {
	p := Build(nil, nil)

	assert.Equal(t, 0, p.CompletenessScore)
}

func TestBuild_CompletenessWithinBounds(t *testing.T) {
	// Property: all five sub-checks now populated, score must still cap at 100
	intake := intakeFixture()
	intake.LocationAdvantages = []string{"Next to the river trail"}
	frags := &types.CategorizedFragments{
		General: []types.ClassifiedFragment{
			{Fragment: types.Fragment{Content: "a"}}, {Fragment: types.Fragment{Content: "b"}}, {Fragment: types.Fragment{Content: "c"}},
		},
	}

	p := Build(intake, frags)

	assert.Equal(t, 100, p.CompletenessScore)
	assert.GreaterOrEqual(t, p.CompletenessScore, 0)
	assert.LessOrEqual(t, p.CompletenessScore, 100)
}

func TestBuild_DefaultsDoNotInflateCompleteness(t *testing.T) {
	p := Build(nil, nil)

	// Tone was defaulted after scoring, so brand voice contributed nothing
	assert.NotEmpty(t, p.BrandVoice.Tone)
	assert.Equal(t, 0, p.CompletenessScore)
}

func TestBuild_DerivedAudienceFromAges(t *testing.T) {
	frags := &types.CategorizedFragments{
		Demographics: []types.ClassifiedFragment{
			{Fragment: types.Fragment{Content: "Meet Ana, 29 years old, an engineer downtown", Similarity: 0.9}, Category: types.CategoryDemographics},
		},
	}

	p := Build(nil, frags)

	assert.Equal(t, "Young professionals", p.Demographics.PrimaryAudience)
	assert.Equal(t, []string{"25-34"}, p.Demographics.AgeRanges)
	assert.Equal(t, []string{"Upper-middle income"}, p.Demographics.IncomeLevels)
}

func TestBuild_LocationAdvantagesFromAreaFragments(t *testing.T) {
	frags := &types.CategorizedFragments{
		LocalArea: []types.ClassifiedFragment{
			{Fragment: types.Fragment{Content: "Just minutes from downtown dining. The area is quiet.", Similarity: 0.8}, Category: types.CategoryLocalArea},
		},
	}

	p := Build(nil, frags)

	require.Len(t, p.Property.LocationAdvantages, 1)
	assert.Equal(t, "Just minutes from downtown dining", p.Property.LocationAdvantages[0])
}

func TestBuild_DifferentiatorsFromCompetitorFragments(t *testing.T) {
	frags := &types.CategorizedFragments{
		CompetitorIntel: []types.ClassifiedFragment{
			{Fragment: types.Fragment{Content: "Unlike other communities nearby, we include utilities. Compared to Parkside our units are larger.", Similarity: 0.8}, Category: types.CategoryCompetitorIntel},
		},
	}

	p := Build(nil, frags)

	assert.Len(t, p.Competitor.DifferentiationPoints, 2)
}
