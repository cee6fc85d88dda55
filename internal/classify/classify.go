package classify

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/maya/adcopy-agent/internal/types"
)

// Classify partitions a retrieval batch into the six semantic categories.
// Every input fragment lands in exactly one bucket; fragments scoring zero
// against all five vocabularies fall through to General with a fixed low
// confidence. An empty input produces an empty result, not an error.
func Classify(fragments []types.Fragment) *types.CategorizedFragments {
	result := &types.CategorizedFragments{}

	for _, frag := range fragments {
		category, score := bestCategory(frag.Content)

		cf := types.ClassifiedFragment{
			Fragment: frag,
			Category: category,
		}
		if category == types.CategoryGeneral {
			cf.Confidence = generalConfidence
		} else {
			cf.Confidence = math.Min(score/10.0, 1.0)
		}
		result.Append(cf)
	}

	sortBuckets(result)
	return result
}

// bestCategory scores the fragment against each category vocabulary in the
// fixed evaluation order and returns the first category at the maximum score.
// A zero maximum means no vocabulary matched, which maps to General.
func bestCategory(content string) (types.Category, float64) {
	lowered := strings.ToLower(content)
	words := tokenize(lowered)
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}

	best := types.CategoryGeneral
	bestScore := 0.0
	for _, cat := range types.ScoredCategories {
		score := scoreCategory(categorySpecs[cat], lowered, wordSet, len(words))
		if score > bestScore {
			best = cat
			bestScore = score
		}
	}

	if bestScore == 0 {
		return types.CategoryGeneral, 0
	}
	return best, bestScore
}

// scoreCategory computes keyword hits, a verbatim-phrase bonus, and a keyword
// density term for a single category vocabulary.
func scoreCategory(spec categorySpec, lowered string, wordSet map[string]bool, wordCount int) float64 {
	matches := 0
	for _, kw := range spec.keywords {
		if wordSet[kw] {
			matches++
		}
	}

	score := float64(matches)
	for _, phrase := range spec.phrases {
		if strings.Contains(lowered, phrase) {
			score += phraseBonus
		}
	}

	if wordCount > 0 {
		score += float64(matches) / float64(wordCount) * densityFactor
	}
	return score
}

// tokenize splits lowered text into words, treating any non-alphanumeric rune
// as a separator so punctuation does not block keyword matches.
func tokenize(lowered string) []string {
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// sortBuckets orders each category bucket by similarity descending.
// The sort must be stable so equal similarities keep retrieval order.
func sortBuckets(c *types.CategorizedFragments) {
	for _, bucket := range [][]types.ClassifiedFragment{
		c.BrandVoice, c.Demographics, c.PropertyFeatures,
		c.LocalArea, c.CompetitorIntel, c.General,
	} {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Similarity > bucket[j].Similarity
		})
	}
}
