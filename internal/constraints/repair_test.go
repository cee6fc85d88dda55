package constraints

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maya/adcopy-agent/internal/types"
)

func TestRepairHeadline_InBoundsUnchanged(t *testing.T) {
	// Idempotence: in-bounds input is the identity case
	for _, h := range []string{
		"Luxury Downtown Apartment",  // 25
		"Cozy Two Bedroom Apts",      // 21
		strings.Repeat("a", 20),      // exactly min
		strings.Repeat("a", 30),      // exactly max
	} {
		result := RepairHeadline(h)

		assert.True(t, result.Valid, h)
		assert.False(t, result.Repaired, h)
		assert.Equal(t, h, result.Final, h)
	}
}

func TestRepairHeadline_ExpandShortHeadline(t *testing.T) {
	// "Downtown Apt" is 12 chars; the expand pipeline must land in [20,30]
	result := RepairHeadline("Downtown Apt")

	assert.True(t, result.Repaired)
	assert.GreaterOrEqual(t, result.Length, HeadlineMin)
	assert.LessOrEqual(t, result.Length, HeadlineMax)
	assert.Contains(t, result.Final, "Downtown Apt")
}

func TestRepairHeadline_ExpandUsesContextualModifier(t *testing.T) {
	result := RepairHeadline("Downtown Apt")

	// "Apt" triggers the apartment rule; the first candidate is Luxury
	assert.True(t, strings.HasPrefix(result.Final, "Luxury "), result.Final)
}

func TestRepairHeadline_ShortenLongHeadline(t *testing.T) {
	// Abbreviation substitution and filler removal must run before truncation
	result := RepairHeadline("The Heights Community Luxury Apartments Available")

	assert.True(t, result.Repaired)
	assert.LessOrEqual(t, result.Length, HeadlineMax)
	assert.Contains(t, result.Final, "Apts")
	assert.NotContains(t, result.Final, "Community")
	assert.NotContains(t, result.Final, "Available")
}

func TestRepairHeadline_ExpandNeverExceedsMax(t *testing.T) {
	for _, h := range []string{"Apt", "A", "Nice home", "Tiny unit here now ok"} {
		result := RepairHeadline(h)

		assert.LessOrEqual(t, result.Length, HeadlineMax, h)
	}
}

func TestRepairHeadline_Idempotent(t *testing.T) {
	first := RepairHeadline("The Heights Community Luxury Apartments Available")
	second := RepairHeadline(first.Final)

	assert.True(t, second.Valid)
	assert.Equal(t, first.Final, second.Final)
}

func TestRepairHeadline_BestEffortFlagged(t *testing.T) {
	// No modifier rule matches and nothing brings one char to 20 without
	// the suffix passes; if the minimum is unreachable the flag must be set.
	result := RepairHeadline("z")

	if result.Length < HeadlineMin {
		assert.True(t, result.BestEffort)
	}
	assert.LessOrEqual(t, result.Length, HeadlineMax)
}

func TestRepairDescription_InBoundsUnchanged(t *testing.T) {
	d := "Spacious one and two bedroom apartments with resort-style amenities."
	require.GreaterOrEqual(t, len(d), DescriptionMin)
	require.LessOrEqual(t, len(d), DescriptionMax)

	result := RepairDescription(d)

	assert.True(t, result.Valid)
	assert.Equal(t, d, result.Final)
}

func TestRepairDescription_ExpandShortDescription(t *testing.T) {
	// "Great amenities!" is 16 chars; expansion must reach [65,90]
	result := RepairDescription("Great amenities!")

	assert.True(t, result.Repaired)
	assert.GreaterOrEqual(t, result.Length, DescriptionMin)
	assert.LessOrEqual(t, result.Length, DescriptionMax)
	assert.True(t, strings.HasPrefix(result.Final, "Great amenities!"))
}

func TestRepairDescription_ShortenVerbosePhrases(t *testing.T) {
	d := "Our state-of-the-art fitness center is available in order to help each and every resident stay active and healthy year round."
	require.Greater(t, len(d), DescriptionMax)

	result := RepairDescription(d)

	assert.LessOrEqual(t, result.Length, DescriptionMax)
	assert.NotContains(t, result.Final, "state-of-the-art")
	assert.NotContains(t, result.Final, "in order to")
}

func TestRepairDescription_SentenceBoundaryTruncation(t *testing.T) {
	d := "Welcome home to comfort and style in the heart of the city today. " +
		"Our community offers residents an unmatched experience. " +
		"Every detail has been considered for you."
	require.Greater(t, len(d), DescriptionMax)

	result := RepairDescription(d)

	assert.LessOrEqual(t, result.Length, DescriptionMax)
	// Whole sentences preferred: result ends on terminal punctuation
	assert.True(t, strings.HasSuffix(result.Final, "."), result.Final)
}

func TestRepairDescription_Idempotent(t *testing.T) {
	long := strings.Repeat("Beautiful spacious apartments with amazing views. ", 4)

	first := RepairDescription(long)
	second := RepairDescription(first.Final)

	assert.Equal(t, first.Final, second.Final)
}

func TestRepairDescription_EllipsisFallback(t *testing.T) {
	// A single unbroken token longer than the max cannot truncate on a word
	// boundary, so it hard-truncates to max with a trailing ellipsis.
	d := strings.Repeat("x", 200)

	result := RepairDescription(d)

	assert.Equal(t, DescriptionMax, result.Length)
	assert.True(t, strings.HasSuffix(result.Final, ellipsis))
}

func TestValidateAndRepair_PreservesOrder(t *testing.T) {
	adCopy := &types.AdCopy{
		Headlines:    []string{"Downtown Apt", "Luxury Downtown Apartment", "The Heights Community Luxury Apartments Available"},
		Descriptions: []string{"Great amenities!"},
	}

	report := ValidateAndRepair(adCopy)

	require.Len(t, report.Headlines, 3)
	require.Len(t, report.Descriptions, 1)
	assert.Equal(t, "Downtown Apt", report.Headlines[0].Original)
	assert.Equal(t, "Luxury Downtown Apartment", report.Headlines[1].Original)
	assert.False(t, report.Headlines[1].Repaired)
	assert.Equal(t, "Great amenities!", report.Descriptions[0].Original)
}

func TestValidate_NoRepair(t *testing.T) {
	adCopy := &types.AdCopy{
		Headlines:    []string{"Downtown Apt"},
		Descriptions: []string{"Great amenities!"},
	}

	report := Validate(adCopy)

	assert.False(t, report.Headlines[0].Valid)
	assert.Equal(t, "Downtown Apt", report.Headlines[0].Final)
	assert.False(t, report.AllValid())
}

func TestConstraintReport_FailedHeadlines(t *testing.T) {
	report := Validate(&types.AdCopy{
		Headlines: []string{"Downtown Apt", "Luxury Downtown Apartment"},
	})

	failed := report.FailedHeadlines()

	require.Len(t, failed, 1)
	assert.Equal(t, "Downtown Apt", failed[0].Original)
}

func TestTruncateAtWords_ZeroWordsFit(t *testing.T) {
	out := truncateAtWords(strings.Repeat("y", 50), HeadlineMax)

	assert.Equal(t, HeadlineMax, len(out))
	assert.True(t, strings.HasSuffix(out, ellipsis))
}

func TestTruncateAtWords_MultibyteHardTruncation(t *testing.T) {
	out := truncateAtWords(strings.Repeat("é", 40), HeadlineMax)

	assert.True(t, utf8.ValidString(out))
	assert.LessOrEqual(t, len(out), HeadlineMax)
	assert.True(t, strings.HasSuffix(out, ellipsis))
}

func TestRepairConvergence_RandomishInputs(t *testing.T) {
	inputs := []string{
		"", "a", "short", "A decent mid-size headline",
		strings.Repeat("word ", 30),
		"Apartments and Apartments and Apartments on Main Street Avenue",
	}
	for _, in := range inputs {
		result := RepairHeadline(in)

		assert.LessOrEqual(t, result.Length, HeadlineMax, "input %q", in)
	}
}
