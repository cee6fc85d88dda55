// Package pipeline provides the high-level orchestration for the ad copy
// generation process.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/maya/adcopy-agent/internal/campaign"
	"github.com/maya/adcopy-agent/internal/classify"
	"github.com/maya/adcopy-agent/internal/constraints"
	"github.com/maya/adcopy-agent/internal/db"
	"github.com/maya/adcopy-agent/internal/generation"
	"github.com/maya/adcopy-agent/internal/llm"
	"github.com/maya/adcopy-agent/internal/observability"
	"github.com/maya/adcopy-agent/internal/profile"
	"github.com/maya/adcopy-agent/internal/retrieval"
	"github.com/maya/adcopy-agent/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Request     types.CampaignRequest
	APIKey      string
	DatabaseURL string
	Verbose     bool
	OnProgress  ProgressCallback

	// Pre-built collaborators override the defaults constructed from the
	// options above. The server injects its pooled DB handle here.
	Client   llm.Client
	Searcher retrieval.Searcher
	Database *db.DB
}

// Result carries every stage output of a completed run
type Result struct {
	RunID     uuid.UUID                   `json:"run_id,omitempty"`
	Fragments *types.CategorizedFragments `json:"fragments"`
	Profile   *types.ClientProfile        `json:"profile"`
	Context   *types.CampaignContext      `json:"context"`
	Report    *types.ConstraintReport     `json:"report"`
	AdCopy    *types.AdCopy               `json:"ad_copy"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// Run orchestrates the full ad copy generation pipeline
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	printer := observability.NewPrinter(os.Stdout)

	// Database connection is optional: absence degrades to no intake data
	// and no artifact persistence, never a failed run.
	database := opts.Database
	if database == nil && opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without intake data or persistence...\n")
			database = nil
		} else {
			defer database.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	client := opts.Client
	if client == nil {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	var runID uuid.UUID
	if database != nil {
		var err error
		runID, err = database.CreateRun(ctx, opts.Request.ClientID, string(opts.Request.CampaignType), opts.Request.Location)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
		} else if opts.Verbose {
			fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
		}
	}

	result, err := runStages(ctx, &opts, database, client, runID, printer)

	if database != nil && runID != uuid.Nil {
		status := db.RunStatusCompleted
		if err != nil {
			status = db.RunStatusFailed
		}
		_ = database.CompleteRun(ctx, runID, status)
	}
	if err != nil {
		return nil, err
	}

	result.RunID = runID
	return result, nil
}

func runStages(ctx context.Context, opts *RunOptions, database *db.DB, client llm.Client, runID uuid.UUID, printer *observability.Printer) (*Result, error) {
	// Step 1: Fetch intake data
	fmt.Printf("Step 1/7: Fetching intake data for client %s...\n", opts.Request.ClientID)
	var intake *types.IntakeRecord
	if database != nil {
		var err error
		intake, err = database.GetIntake(ctx, opts.Request.ClientID)
		if err != nil {
			return nil, fmt.Errorf("intake fetch failed: %w", err)
		}
	}
	if intake == nil {
		fmt.Printf("No intake record found; building profile from fragments only.\n")
	}

	// Step 2: Retrieve knowledge fragments (four concurrent queries)
	fmt.Printf("Step 2/7: Retrieving knowledge fragments...\n")
	searcher := opts.Searcher
	if searcher == nil && database != nil {
		searcher = database.NewFragmentStore(client, opts.Request.ClientID)
	}

	var fragments []types.Fragment
	if searcher != nil {
		var err error
		fragments, err = retrieval.Retrieve(ctx, searcher, &opts.Request)
		if err != nil {
			return nil, fmt.Errorf("fragment retrieval failed: %w", err)
		}
	}
	emitProgress(opts, db.StepFragments, db.CategoryRetrieval,
		fmt.Sprintf("Retrieved %d fragments", len(fragments)), nil)

	// Step 3: Classify fragments
	fmt.Printf("Step 3/7: Classifying %d fragments...\n", len(fragments))
	classified := classify.Classify(fragments)
	if opts.Verbose {
		printer.PrintClassifiedFragments(classified)
	}
	emitProgress(opts, db.StepClassified, db.CategoryRetrieval,
		fmt.Sprintf("Classified %d fragments", classified.Total()), classified)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepClassified, db.CategoryRetrieval, classified)
	}

	// Step 4: Synthesize client profile
	fmt.Printf("Step 4/7: Synthesizing client profile...\n")
	clientProfile := profile.Build(intake, classified)
	if opts.Verbose {
		printer.PrintClientProfile(clientProfile)
	}
	emitProgress(opts, db.StepClientProfile, db.CategoryProfile,
		fmt.Sprintf("Profile completeness: %d/100", clientProfile.CompletenessScore), clientProfile)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepClientProfile, db.CategoryProfile, clientProfile)
	}

	// Step 5: Build campaign context
	fmt.Printf("Step 5/7: Building campaign context...\n")
	campaignCtx := campaign.Build(&opts.Request, clientProfile)
	if opts.Verbose {
		printer.PrintCampaignContext(campaignCtx)
	}
	emitProgress(opts, db.StepCampaignContext, db.CategoryContext,
		fmt.Sprintf("Context strength: %s (%d)", campaignCtx.ContextStrength, campaignCtx.OverallRelevanceScore), campaignCtx)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepCampaignContext, db.CategoryContext, campaignCtx)
	}

	// Step 6: Generate ad copy
	fmt.Printf("Step 6/7: Generating ad copy...\n")
	prompt := generation.BuildGenerationPrompt(campaignCtx, clientProfile, &opts.Request)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveTextArtifact(ctx, runID, db.StepPrompt, db.CategoryGeneration, prompt)
	}

	adCopy, err := generation.Generate(ctx, client, campaignCtx, clientProfile, &opts.Request)
	if err != nil {
		return nil, fmt.Errorf("ad copy generation failed: %w", err)
	}
	emitProgress(opts, db.StepRawAdCopy, db.CategoryGeneration,
		fmt.Sprintf("Generated %d headlines, %d descriptions", len(adCopy.Headlines), len(adCopy.Descriptions)), nil)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepRawAdCopy, db.CategoryGeneration, adCopy)
	}

	// Step 7: Validate and repair constraints
	fmt.Printf("Step 7/7: Validating length constraints...\n")
	precheck := constraints.Validate(adCopy)
	if len(precheck.FailedHeadlines()) > 0 {
		// One bounded corrective round-trip; a failure here is recoverable
		// because deterministic repair runs next regardless.
		corrected, changed, corrErr := generation.CorrectHeadlines(ctx, client, adCopy, campaignCtx, &opts.Request)
		if corrErr != nil {
			fmt.Printf("Warning: headline correction failed, keeping original text: %v\n", corrErr)
		} else if changed > 0 {
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Corrected %d headlines via LLM round-trip\n", changed)
			}
			adCopy = corrected
		}
	}

	report := constraints.ValidateAndRepair(adCopy)
	final := &types.AdCopy{
		Headlines:    make([]string, 0, len(report.Headlines)),
		Descriptions: make([]string, 0, len(report.Descriptions)),
		Keywords:     adCopy.Keywords,
		FinalURLPath: adCopy.FinalURLPath,
	}
	for _, res := range report.Headlines {
		final.Headlines = append(final.Headlines, res.Final)
	}
	for _, res := range report.Descriptions {
		final.Descriptions = append(final.Descriptions, res.Final)
	}

	if opts.Verbose {
		printer.PrintConstraintReport(report)
		printer.PrintAdCopy(final)
	}
	emitProgress(opts, db.StepFinalAdCopy, db.CategoryValidation, "Validated and repaired ad copy", final)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepConstraintReport, db.CategoryValidation, report)
		_ = database.SaveArtifact(ctx, runID, db.StepFinalAdCopy, db.CategoryValidation, final)
	}

	return &Result{
		Fragments: classified,
		Profile:   clientProfile,
		Context:   campaignCtx,
		Report:    report,
		AdCopy:    final,
	}, nil
}
