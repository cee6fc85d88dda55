// Package constraints validates generated ad copy against hard character-count
// bounds and deterministically repairs strings that violate them.
package constraints

// Character bounds for generated copy, inclusive, counting every character.
// These are fixed by the ad platform and non-negotiable.
const (
	HeadlineMin = 20
	HeadlineMax = 30

	DescriptionMin = 65
	DescriptionMax = 90
)

// ellipsis is appended after a hard truncation when no word boundary fits
const ellipsis = "..."
