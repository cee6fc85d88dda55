package generation

import (
	"fmt"
	"strings"

	"github.com/maya/adcopy-agent/internal/prompts"
	"github.com/maya/adcopy-agent/internal/types"
)

// priorityOrder ranks section priorities for prompt ordering. Higher-priority
// sections appear earlier in the brief so the model weights them more.
var priorityOrder = map[types.Priority]int{
	types.PriorityHigh:   0,
	types.PriorityMedium: 1,
	types.PriorityLow:    2,
}

type namedSection struct {
	Name    string
	Section types.ContextSection
}

// BuildGenerationPrompt assembles the full ad copy prompt from the campaign
// context, the client profile, and the request parameters.
func BuildGenerationPrompt(campaignCtx *types.CampaignContext, profile *types.ClientProfile, req *types.CampaignRequest) string {
	template := prompts.MustGet("generation.json", "ad-copy")

	return prompts.Format(template, map[string]string{
		"CampaignBrief": renderCampaignBrief(campaignCtx, req),
		"ClientProfile": renderProfileSummary(profile),
		"Instructions":  renderInstructions(campaignCtx.CampaignInstructions),
	})
}

// BuildCorrectionPrompt assembles the corrective prompt for headlines that
// failed length validation.
func BuildCorrectionPrompt(failed []string, campaignCtx *types.CampaignContext, req *types.CampaignRequest) string {
	template := prompts.MustGet("generation.json", "correct-headlines")

	var sb strings.Builder
	for _, h := range failed {
		sb.WriteString(fmt.Sprintf("- %q (%d characters)\n", h, len(h)))
	}

	return prompts.Format(template, map[string]string{
		"FailedHeadlines": sb.String(),
		"CampaignBrief":   renderCampaignBrief(campaignCtx, req),
	})
}

// renderCampaignBrief renders the six sections ordered by priority, highest
// first, with ties broken by canonical section order.
func renderCampaignBrief(campaignCtx *types.CampaignContext, req *types.CampaignRequest) string {
	sections := []namedSection{
		{"Brand Voice", campaignCtx.BrandVoice},
		{"Target Audience", campaignCtx.TargetAudience},
		{"Property Highlights", campaignCtx.PropertyHighlights},
		{"Location Benefits", campaignCtx.LocationBenefits},
		{"Competitive Advantages", campaignCtx.CompetitiveAdvantages},
		{"Pricing Strategy", campaignCtx.PricingStrategy},
	}

	ordered := make([]namedSection, len(sections))
	copy(ordered, sections)
	// Stable insertion sort keeps canonical order within a priority bucket
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && priorityOrder[ordered[j].Section.Priority] < priorityOrder[ordered[j-1].Section.Priority]; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Campaign type: %s\n", req.CampaignType))
	sb.WriteString(fmt.Sprintf("Location: %s\n", req.Location))
	if req.UnitDetails != nil {
		sb.WriteString(fmt.Sprintf("Unit type: %d bed / %d bath\n", req.UnitDetails.Bedrooms, req.UnitDetails.Bathrooms))
	}
	if req.ProximityTarget != "" {
		sb.WriteString(fmt.Sprintf("Proximity target: %s\n", req.ProximityTarget))
	}
	if req.PriceRange != "" {
		sb.WriteString(fmt.Sprintf("Price range: %s\n", req.PriceRange))
	}
	if req.SpecialOffer != "" {
		sb.WriteString(fmt.Sprintf("Special offer: %s\n", req.SpecialOffer))
	}
	sb.WriteString("\n")

	for _, ns := range ordered {
		sb.WriteString(fmt.Sprintf("%s (priority: %s):\n%s\n\n", ns.Name, ns.Section.Priority, ns.Section.Content))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderProfileSummary renders the profile fields most useful to the copywriter
func renderProfileSummary(profile *types.ClientProfile) string {
	var sb strings.Builder

	if profile.Property.CommunityName != "" {
		sb.WriteString(fmt.Sprintf("Community: %s\n", profile.Property.CommunityName))
	}
	if len(profile.BrandVoice.Tone) > 0 {
		sb.WriteString(fmt.Sprintf("Tone: %s\n", strings.Join(profile.BrandVoice.Tone, ", ")))
	}
	if profile.BrandVoice.Guidelines != "" {
		sb.WriteString(fmt.Sprintf("Brand guidelines: %s\n", profile.BrandVoice.Guidelines))
	}
	if profile.Demographics.PrimaryAudience != "" {
		sb.WriteString(fmt.Sprintf("Primary audience: %s\n", profile.Demographics.PrimaryAudience))
	}
	if len(profile.Property.Amenities) > 0 {
		sb.WriteString(fmt.Sprintf("Amenities: %s\n", strings.Join(profile.Property.Amenities, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Profile completeness: %d/100\n", profile.CompletenessScore))

	return strings.TrimRight(sb.String(), "\n")
}

func renderInstructions(instructions []string) string {
	if len(instructions) == 0 {
		return "(none)"
	}

	var sb strings.Builder
	for _, inst := range instructions {
		sb.WriteString("- ")
		sb.WriteString(inst)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
