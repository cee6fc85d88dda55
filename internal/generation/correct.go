package generation

import (
	"context"
	"encoding/json"

	"github.com/maya/adcopy-agent/internal/constraints"
	"github.com/maya/adcopy-agent/internal/llm"
	"github.com/maya/adcopy-agent/internal/types"
)

// correctionResponse is the JSON shape the corrective prompt asks for
type correctionResponse struct {
	Corrections map[string]string `json:"corrections"`
}

// CorrectHeadlines runs a single corrective round-trip for headlines that
// failed length validation. Corrections that still miss the bounds are
// discarded so the caller never ends up worse than the original; the
// deterministic repair pass handles whatever remains. Returns the corrected
// copy and the number of headlines that were replaced.
func CorrectHeadlines(ctx context.Context, client llm.Client, adCopy *types.AdCopy, campaignCtx *types.CampaignContext, req *types.CampaignRequest) (*types.AdCopy, int, error) {
	var failed []string
	for _, h := range adCopy.Headlines {
		if len(h) < constraints.HeadlineMin || len(h) > constraints.HeadlineMax {
			failed = append(failed, h)
		}
	}
	if len(failed) == 0 {
		return adCopy, 0, nil
	}

	prompt := BuildCorrectionPrompt(failed, campaignCtx, req)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return adCopy, 0, &APICallError{
			Message: "headline correction call failed",
			Cause:   err,
		}
	}

	cleaned := llm.CleanJSONBlock(responseText)
	var resp correctionResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return adCopy, 0, &ParseError{
			Message: "failed to decode headline corrections",
			Cause:   err,
		}
	}

	corrected := &types.AdCopy{
		Headlines:    make([]string, len(adCopy.Headlines)),
		Descriptions: adCopy.Descriptions,
		Keywords:     adCopy.Keywords,
		FinalURLPath: adCopy.FinalURLPath,
	}
	copy(corrected.Headlines, adCopy.Headlines)

	changed := 0
	for i, h := range corrected.Headlines {
		replacement, exists := resp.Corrections[h]
		if !exists || replacement == "" {
			continue
		}
		// Only accept corrections that actually land in bounds
		if len(replacement) < constraints.HeadlineMin || len(replacement) > constraints.HeadlineMax {
			continue
		}
		corrected.Headlines[i] = replacement
		changed++
	}

	return corrected, changed, nil
}
