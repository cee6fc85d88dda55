package campaign

import (
	"math"

	"github.com/maya/adcopy-agent/internal/types"
)

// Build constructs the six-section campaign context from a client profile and
// campaign parameters. The context is immutable once returned: all scoring,
// bucketing, and instruction synthesis happens here.
func Build(req *types.CampaignRequest, p *types.ClientProfile) *types.CampaignContext {
	ctx := &types.CampaignContext{
		BrandVoice:            buildBrandVoiceSection(p),
		TargetAudience:        buildTargetAudienceSection(p, req),
		PropertyHighlights:    buildPropertyHighlightsSection(p, req),
		LocationBenefits:      buildLocationBenefitsSection(p, req),
		CompetitiveAdvantages: buildCompetitiveAdvantagesSection(p),
		PricingStrategy:       buildPricingStrategySection(p, req),
	}

	ctx.OverallRelevanceScore = overallScore(ctx, req.CampaignType)
	ctx.ContextStrength = strengthFor(ctx.OverallRelevanceScore)
	ctx.CampaignInstructions = campaignInstructions(req)
	augmentSections(ctx, req)

	return ctx
}

// overallScore computes the rounded weighted sum of the six section scores
// using the campaign type's weight table.
func overallScore(ctx *types.CampaignContext, campaignType types.CampaignType) int {
	w := weightsFor(campaignType)
	weighted := float64(ctx.BrandVoice.RelevanceScore)*w.BrandVoice +
		float64(ctx.TargetAudience.RelevanceScore)*w.TargetAudience +
		float64(ctx.PropertyHighlights.RelevanceScore)*w.PropertyHighlights +
		float64(ctx.LocationBenefits.RelevanceScore)*w.LocationBenefits +
		float64(ctx.CompetitiveAdvantages.RelevanceScore)*w.CompetitiveAdvantages +
		float64(ctx.PricingStrategy.RelevanceScore)*w.PricingStrategy
	return int(math.Round(weighted))
}
