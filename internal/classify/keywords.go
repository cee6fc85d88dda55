// Package classify assigns retrieved knowledge fragments to semantic categories
// using weighted keyword and phrase scoring.
package classify

import "github.com/maya/adcopy-agent/internal/types"

// categorySpec holds the scoring vocabulary for one category.
// Keywords are matched as whole words; phrases are matched as verbatim
// case-insensitive substrings and carry a fixed bonus each.
type categorySpec struct {
	keywords []string
	phrases  []string
}

// phraseBonus is added per matched multi-word phrase
const phraseBonus = 3.0

// densityFactor scales the keyword-match density term
const densityFactor = 2.0

// generalConfidence is the fixed confidence for fragments that match no category
const generalConfidence = 0.1

// categorySpecs maps each scored category to its vocabulary. Evaluation
// order follows types.ScoredCategories, which is the tie-break order.
var categorySpecs = map[types.Category]categorySpec{
	types.CategoryBrandVoice: {
		keywords: []string{
			"tone", "voice", "brand", "branding", "style", "messaging",
			"personality", "upscale", "sophisticated", "welcoming",
			"approachable", "authentic", "tagline", "identity", "values",
		},
		phrases: []string{
			"brand voice", "tone of voice", "brand guidelines",
			"style guide", "communication style", "brand personality",
		},
	},
	types.CategoryDemographics: {
		keywords: []string{
			"resident", "residents", "renters", "professionals", "families",
			"students", "seniors", "millennials", "income", "age",
			"demographic", "demographics", "audience", "lifestyle",
			"commuters", "couples", "retirees",
		},
		phrases: []string{
			"target audience", "young professionals", "empty nesters",
			"growing families", "median income", "ideal resident",
		},
	},
	types.CategoryPropertyFeatures: {
		keywords: []string{
			"apartment", "apartments", "unit", "units", "bedroom", "bathroom",
			"amenities", "pool", "gym", "fitness", "appliances", "granite",
			"balcony", "parking", "garage", "washer", "dryer", "clubhouse",
			"renovated", "spacious", "hardwood",
		},
		phrases: []string{
			"floor plan", "swimming pool", "fitness center",
			"stainless steel", "in-unit laundry", "pet friendly",
			"walk-in closet",
		},
	},
	types.CategoryLocalArea: {
		keywords: []string{
			"neighborhood", "downtown", "nearby", "restaurants", "shopping",
			"schools", "transit", "commute", "park", "parks", "walkable",
			"dining", "entertainment", "highway", "district", "minutes",
			"location",
		},
		phrases: []string{
			"walking distance", "minutes from", "close to", "public transit",
			"school district", "heart of", "easy access",
		},
	},
	types.CategoryCompetitorIntel: {
		keywords: []string{
			"competitor", "competitors", "competition", "compared", "versus",
			"market", "rivals", "undercut", "differentiate", "outperform",
			"benchmark",
		},
		phrases: []string{
			"compared to", "market position", "competing properties",
			"sets us apart", "other communities", "unlike other",
		},
	},
}
