package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorLiteral(t *testing.T) {
	assert.Equal(t, "[0.5,-0.25,1]", VectorLiteral([]float32{0.5, -0.25, 1}))
}

func TestVectorLiteral_Empty(t *testing.T) {
	assert.Equal(t, "[]", VectorLiteral(nil))
}

func TestStepConstants(t *testing.T) {
	assert.Equal(t, "fragments", StepFragments)
	assert.Equal(t, "client_profile", StepClientProfile)
	assert.Equal(t, "campaign_context", StepCampaignContext)
	assert.Equal(t, "final_ad_copy", StepFinalAdCopy)
}

func TestRunStatusConstants(t *testing.T) {
	assert.Equal(t, "running", RunStatusRunning)
	assert.Equal(t, "completed", RunStatusCompleted)
	assert.Equal(t, "failed", RunStatusFailed)
}
