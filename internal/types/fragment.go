// Package types provides type definitions for structured data used throughout the ad copy agent.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Fragment is a unit of retrieved knowledge text with its vector similarity score.
// Position preserves the original retrieval order for stable tie-breaking downstream.
type Fragment struct {
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
	Position   int     `json:"position"`
}

// Category is one of the six semantic buckets a fragment can be assigned to
type Category string

// Category constants define the semantic buckets for classified fragments
const (
	CategoryBrandVoice       Category = "brand_voice"
	CategoryDemographics     Category = "demographics"
	CategoryPropertyFeatures Category = "property_features"
	CategoryLocalArea        Category = "local_area"
	CategoryCompetitorIntel  Category = "competitor_intelligence"
	CategoryGeneral          Category = "general"
)

// ScoredCategories is the fixed evaluation order for the five keyword-scored
// categories. Classification ties resolve to the first category at the max
// score, so this ordering is part of the classifier's contract.
var ScoredCategories = []Category{
	CategoryBrandVoice,
	CategoryDemographics,
	CategoryPropertyFeatures,
	CategoryLocalArea,
	CategoryCompetitorIntel,
}

// ClassifiedFragment is a fragment with its assigned category and classification confidence
type ClassifiedFragment struct {
	Fragment
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
}

// CategorizedFragments partitions a retrieval batch into the six categories.
// Every input fragment appears in exactly one bucket; each bucket is sorted
// by similarity descending with original retrieval order breaking ties.
type CategorizedFragments struct {
	BrandVoice       []ClassifiedFragment `json:"brand_voice"`
	Demographics     []ClassifiedFragment `json:"demographics"`
	PropertyFeatures []ClassifiedFragment `json:"property_features"`
	LocalArea        []ClassifiedFragment `json:"local_area"`
	CompetitorIntel  []ClassifiedFragment `json:"competitor_intelligence"`
	General          []ClassifiedFragment `json:"general"`
}

// ByCategory returns the bucket for a category. Unknown categories map to General.
func (c *CategorizedFragments) ByCategory(cat Category) []ClassifiedFragment {
	switch cat {
	case CategoryBrandVoice:
		return c.BrandVoice
	case CategoryDemographics:
		return c.Demographics
	case CategoryPropertyFeatures:
		return c.PropertyFeatures
	case CategoryLocalArea:
		return c.LocalArea
	case CategoryCompetitorIntel:
		return c.CompetitorIntel
	default:
		return c.General
	}
}

// Append adds a classified fragment to its category's bucket
func (c *CategorizedFragments) Append(cf ClassifiedFragment) {
	switch cf.Category {
	case CategoryBrandVoice:
		c.BrandVoice = append(c.BrandVoice, cf)
	case CategoryDemographics:
		c.Demographics = append(c.Demographics, cf)
	case CategoryPropertyFeatures:
		c.PropertyFeatures = append(c.PropertyFeatures, cf)
	case CategoryLocalArea:
		c.LocalArea = append(c.LocalArea, cf)
	case CategoryCompetitorIntel:
		c.CompetitorIntel = append(c.CompetitorIntel, cf)
	default:
		c.General = append(c.General, cf)
	}
}

// Total returns the fragment count across all six buckets
func (c *CategorizedFragments) Total() int {
	return len(c.BrandVoice) + len(c.Demographics) + len(c.PropertyFeatures) +
		len(c.LocalArea) + len(c.CompetitorIntel) + len(c.General)
}
