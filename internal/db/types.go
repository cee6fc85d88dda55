package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a generation run record
type Run struct {
	ID           uuid.UUID  `json:"id"`
	ClientID     string     `json:"client_id"`
	CampaignType string     `json:"campaign_type"`
	Location     string     `json:"location"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// Run status constants
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// ArtifactStep constants for known artifact types
const (
	StepFragments        = "fragments"
	StepClassified       = "classified_fragments"
	StepClientProfile    = "client_profile"
	StepCampaignContext  = "campaign_context"
	StepPrompt           = "generation_prompt"
	StepRawAdCopy        = "raw_ad_copy"
	StepConstraintReport = "constraint_report"
	StepFinalAdCopy      = "final_ad_copy"
)

// ArtifactCategory constants for grouping artifacts by pipeline stage
const (
	CategoryRetrieval  = "retrieval"
	CategoryProfile    = "profile"
	CategoryContext    = "context"
	CategoryGeneration = "generation"
	CategoryValidation = "validation"
)
