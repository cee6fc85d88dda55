package profile

import (
	"strings"

	"github.com/maya/adcopy-agent/internal/types"
)

// VectorDataThreshold is the minimum total classified fragment count for a
// profile to be considered backed by vector data. Reproduced exactly for
// parity testing against the completeness score.
const VectorDataThreshold = 3

// profileDraft carries the profile through the two build phases
type profileDraft struct {
	profile types.ClientProfile
}

// Build merges structured intake (authoritative) with classified fragments
// (enrichment) into a ClientProfile. Intake may be nil when the client has no
// intake record; fragments may be empty. The build is two-phase: phase 1
// populates from intake, phase 2 only adds deduplicated list items and fills
// scalar fields intake left empty. Defaults are applied last, after the
// completeness score is computed.
func Build(intake *types.IntakeRecord, frags *types.CategorizedFragments) *types.ClientProfile {
	if frags == nil {
		frags = &types.CategorizedFragments{}
	}

	draft := &profileDraft{}
	draft.profile.HasIntakeData = intake != nil
	draft.profile.HasVectorData = frags.Total() >= VectorDataThreshold

	if intake != nil {
		applyIntake(draft, intake)
	}
	enrichFromFragments(draft, frags)

	draft.profile.CompletenessScore = computeCompleteness(&draft.profile, frags)
	applyDefaults(draft)

	return &draft.profile
}

// applyIntake is phase 1: copy intake fields verbatim. Intake is authoritative
// and nothing written here is ever overridden by fragment data.
func applyIntake(d *profileDraft, intake *types.IntakeRecord) {
	bv := &d.profile.BrandVoice
	bv.Guidelines = intake.BrandGuidelines
	bv.Tone = dedupe(intake.Tone)
	bv.Personality = dedupe(intake.Personality)
	bv.CommunicationStyle = dedupe(intake.CommunicationStyle)
	bv.BrandValues = dedupe(intake.BrandValues)

	dg := &d.profile.Demographics
	dg.PrimaryAudience = intake.PrimaryAudience
	dg.AgeRanges = dedupe(intake.AgeRanges)
	dg.IncomeLevels = dedupe(intake.IncomeLevels)
	dg.Lifestyle = dedupe(intake.Lifestyle)
	dg.Motivations = dedupe(intake.Motivations)
	dg.PainPoints = dedupe(intake.PainPoints)

	pr := &d.profile.Property
	pr.CommunityName = intake.CommunityName
	pr.Amenities = dedupe(intake.Amenities)
	pr.UniqueFeatures = dedupe(intake.UniqueFeatures)
	pr.LocationAdvantages = dedupe(intake.LocationAdvantages)
	pr.PricePoint = intake.PricePoint
	pr.SpecialOffers = dedupe(intake.SpecialOffers)
	pr.Differentiators = dedupe(intake.Differentiators)

	cp := &d.profile.Competitor
	cp.Names = dedupe(intake.CompetitorNames)
	cp.Advantages = dedupe(intake.CompetitorEdges)
	cp.MarketPosition = intake.MarketPosition
}

// enrichFromFragments is phase 2: scan each sub-profile's relevant category
// buckets and add extracted values. List fields gain deduplicated items;
// scalar fields are filled only when still empty.
func enrichFromFragments(d *profileDraft, frags *types.CategorizedFragments) {
	enrichBrandVoice(d, frags.BrandVoice)
	enrichDemographics(d, frags.Demographics)
	enrichProperty(d, frags.PropertyFeatures, frags.LocalArea)
	enrichCompetitor(d, frags.CompetitorIntel)
}

func enrichBrandVoice(d *profileDraft, frags []types.ClassifiedFragment) {
	bv := &d.profile.BrandVoice
	for _, frag := range frags {
		bv.Tone = mergeList(bv.Tone, ExtractTones(frag.Content))
	}
	if bv.Guidelines == "" && len(frags) > 0 {
		// Highest-similarity brand voice fragment doubles as raw guidelines
		bv.Guidelines = frags[0].Content
	}
}

func enrichDemographics(d *profileDraft, frags []types.ClassifiedFragment) {
	dg := &d.profile.Demographics
	for _, frag := range frags {
		dg.AgeRanges = mergeList(dg.AgeRanges, ExtractAgeRanges(frag.Content))
		dg.IncomeLevels = mergeList(dg.IncomeLevels, ExtractIncomeLevels(frag.Content))
	}
	if dg.PrimaryAudience == "" {
		dg.PrimaryAudience = deriveAudience(dg.AgeRanges)
	}
}

func enrichProperty(d *profileDraft, featureFrags, areaFrags []types.ClassifiedFragment) {
	pr := &d.profile.Property
	for _, frag := range featureFrags {
		pr.Amenities = mergeList(pr.Amenities, ExtractAmenities(frag.Content))
		if pr.PricePoint == "" {
			pr.PricePoint = ExtractPricePoint(frag.Content)
		}
	}
	for _, frag := range areaFrags {
		pr.LocationAdvantages = mergeList(pr.LocationAdvantages, extractLocationLines(frag.Content))
	}
}

func enrichCompetitor(d *profileDraft, frags []types.ClassifiedFragment) {
	cp := &d.profile.Competitor
	for _, frag := range frags {
		cp.DifferentiationPoints = mergeList(cp.DifferentiationPoints, extractDifferentiators(frag.Content))
	}
}

// deriveAudience maps extracted age brackets to a primary audience label
func deriveAudience(ageRanges []string) string {
	for _, bracket := range ageRanges {
		switch bracket {
		case ageBracketYoungAdult, ageBracketEarly:
			return "Young professionals"
		case ageBracketMid:
			return "Established professionals and families"
		case ageBracketSenior:
			return "Active adults and retirees"
		}
	}
	return ""
}

// extractLocationLines pulls short sentences mentioning location benefits
func extractLocationLines(text string) []string {
	var lines []string
	for _, sentence := range splitSentences(text) {
		lowered := strings.ToLower(sentence)
		if strings.Contains(lowered, "minutes from") || strings.Contains(lowered, "walking distance") ||
			strings.Contains(lowered, "close to") || strings.Contains(lowered, "easy access") {
			lines = append(lines, strings.TrimSpace(sentence))
		}
	}
	return lines
}

// extractDifferentiators pulls sentences that frame the property against competitors
func extractDifferentiators(text string) []string {
	var points []string
	for _, sentence := range splitSentences(text) {
		lowered := strings.ToLower(sentence)
		if strings.Contains(lowered, "unlike") || strings.Contains(lowered, "sets us apart") ||
			strings.Contains(lowered, "compared to") || strings.Contains(lowered, "only community") {
			points = append(points, strings.TrimSpace(sentence))
		}
	}
	return points
}

// splitSentences splits on terminal punctuation, dropping empty pieces
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var sentences []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// mergeList appends additions to base, skipping values already present
func mergeList(base, additions []string) []string {
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}
	for _, v := range additions {
		if v != "" && !seen[v] {
			seen[v] = true
			base = append(base, v)
		}
	}
	return base
}

// dedupe returns values with duplicates and empty strings removed, order preserved
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
