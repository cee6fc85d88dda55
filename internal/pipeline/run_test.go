package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maya/adcopy-agent/internal/llm"
	"github.com/maya/adcopy-agent/internal/types"
)

type stubClient struct {
	response string
	err      error
	calls    int
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubClient) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return []float32{0.1}, nil
}

func (s *stubClient) GetModel(_ llm.ModelTier) string { return "stub" }

func (s *stubClient) Close() error { return nil }

type stubSearcher struct {
	frags []types.Fragment
	err   error
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ int, _ float64) ([]types.Fragment, error) {
	return s.frags, s.err
}

func validResponse(t *testing.T) string {
	t.Helper()

	headlines := make([]string, types.ExpectedHeadlineCount)
	for i := range headlines {
		headlines[i] = "Modern Downtown Apartments"
	}
	descriptions := make([]string, types.ExpectedDescriptionCount)
	for i := range descriptions {
		descriptions[i] = "Spacious floor plans with resort style amenities in the heart of downtown."
	}

	data, err := json.Marshal(types.AdCopy{
		Headlines:    headlines,
		Descriptions: descriptions,
		Keywords:     []string{"downtown apartments"},
		FinalURLPath: "apartments/downtown",
	})
	require.NoError(t, err)
	return string(data)
}

func baseOptions(t *testing.T, client llm.Client) RunOptions {
	t.Helper()
	return RunOptions{
		Request: types.CampaignRequest{
			ClientID:     "client-42",
			CampaignType: types.CampaignGeneralLocation,
			Location:     "Downtown Austin",
		},
		Client: client,
		Searcher: &stubSearcher{frags: []types.Fragment{
			{Content: "Our brand voice is upscale and professional in tone", Similarity: 0.9},
			{Content: "Residents are young professionals aged 25 to 34", Similarity: 0.8},
			{Content: "Amenities include a rooftop pool and fitness center", Similarity: 0.85},
		}},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	client := &stubClient{response: validResponse(t)}

	result, err := Run(context.Background(), baseOptions(t, client))
	require.NoError(t, err)

	assert.Len(t, result.AdCopy.Headlines, types.ExpectedHeadlineCount)
	assert.Len(t, result.AdCopy.Descriptions, types.ExpectedDescriptionCount)
	assert.NotNil(t, result.Profile)
	assert.NotNil(t, result.Context)
	assert.NotNil(t, result.Report)
	assert.True(t, result.Profile.HasVectorData)

	// All final strings must be within bounds or flagged best effort
	for _, res := range result.Report.Headlines {
		if !res.BestEffort {
			assert.GreaterOrEqual(t, res.Length, 20)
			assert.LessOrEqual(t, res.Length, 30)
		}
	}
}

func TestRun_RetrievalFailureIsFatal(t *testing.T) {
	client := &stubClient{response: validResponse(t)}
	opts := baseOptions(t, client)
	opts.Searcher = &stubSearcher{err: errors.New("vector store down")}

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fragment retrieval failed")
}

func TestRun_GenerationFailureIsFatal(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}

	_, err := Run(context.Background(), baseOptions(t, client))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ad copy generation failed")
}

func TestRun_WrongCardinalityIsFatal(t *testing.T) {
	payload := `{"headlines": ["only one headline here now"], "descriptions": ["a", "b", "c", "d"], "keywords": ["k"], "final_url_path": "p"}`
	client := &stubClient{response: payload}

	_, err := Run(context.Background(), baseOptions(t, client))
	require.Error(t, err)
}

func TestRun_NoSearcherStillRuns(t *testing.T) {
	client := &stubClient{response: validResponse(t)}
	opts := baseOptions(t, client)
	opts.Searcher = nil

	result, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, result.Profile.HasVectorData)
	assert.Zero(t, result.Fragments.Total())
}

func TestRun_ProgressEvents(t *testing.T) {
	client := &stubClient{response: validResponse(t)}
	opts := baseOptions(t, client)

	var steps []string
	opts.OnProgress = func(event ProgressEvent) {
		steps = append(steps, event.Step)
	}

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)

	joined := strings.Join(steps, ",")
	assert.Contains(t, joined, "fragments")
	assert.Contains(t, joined, "client_profile")
	assert.Contains(t, joined, "campaign_context")
	assert.Contains(t, joined, "final_ad_copy")
}
