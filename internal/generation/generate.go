package generation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maya/adcopy-agent/internal/llm"
	"github.com/maya/adcopy-agent/internal/schemas"
	"github.com/maya/adcopy-agent/internal/types"
)

// Generate calls the LLM with the assembled campaign prompt and parses the
// response into an AdCopy payload. The payload must carry exactly 15 headlines
// and 4 descriptions; any other count fails the stage.
func Generate(ctx context.Context, client llm.Client, campaignCtx *types.CampaignContext, profile *types.ClientProfile, req *types.CampaignRequest) (*types.AdCopy, error) {
	prompt := BuildGenerationPrompt(campaignCtx, profile, req)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{
			Message: fmt.Sprintf("ad copy generation failed for client %s", req.ClientID),
			Cause:   err,
		}
	}

	return ParseAdCopy(responseText)
}

// ParseAdCopy validates and decodes a raw JSON ad copy response.
func ParseAdCopy(responseText string) (*types.AdCopy, error) {
	cleaned := llm.CleanJSONBlock(responseText)

	if err := schemas.ValidateAdCopy(cleaned); err != nil {
		return nil, &ParseError{
			Message: "response does not match ad copy schema",
			Cause:   err,
		}
	}

	var adCopy types.AdCopy
	if err := json.Unmarshal([]byte(cleaned), &adCopy); err != nil {
		return nil, &ParseError{
			Message: "failed to decode ad copy JSON",
			Cause:   err,
		}
	}

	if len(adCopy.Headlines) != types.ExpectedHeadlineCount || len(adCopy.Descriptions) != types.ExpectedDescriptionCount {
		return nil, &CardinalityError{
			Headlines:    len(adCopy.Headlines),
			Descriptions: len(adCopy.Descriptions),
		}
	}

	return &adCopy, nil
}
