package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maya/adcopy-agent/internal/config"
	"github.com/maya/adcopy-agent/internal/pipeline"
	"github.com/maya/adcopy-agent/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full ad copy generation pipeline end-to-end",
	Long: `Orchestrates the entire generation process: retrieval -> classification -> profile synthesis -> campaign context -> generation -> correction -> constraint repair.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath       string
	runClientID         string
	runCampaignType     string
	runLocation         string
	runProximityTarget  string
	runPriceRange       string
	runDemographicFocus string
	runSpecialOffer     string
	runBedrooms         int
	runBathrooms        int
	runAPIKey           string
	runDatabaseURL      string
	runVerbose          bool
	runOutputFile       string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runClientID, "client", "c", "", "Client identifier for intake and knowledge lookup")
	runCommand.Flags().StringVarP(&runCampaignType, "campaign-type", "t", "", "Campaign type: re_general_location, re_unit_type, re_proximity")
	runCommand.Flags().StringVarP(&runLocation, "location", "l", "", "Campaign location, e.g. \"Austin, TX\"")
	runCommand.Flags().StringVar(&runProximityTarget, "proximity-target", "", "Landmark for proximity campaigns")
	runCommand.Flags().StringVar(&runPriceRange, "price-range", "", "Price range to feature, e.g. \"from $1,400/mo\"")
	runCommand.Flags().StringVar(&runDemographicFocus, "demographic-focus", "", "Audience emphasis, e.g. \"young professionals\"")
	runCommand.Flags().StringVar(&runSpecialOffer, "special-offer", "", "Promotional offer to feature")
	runCommand.Flags().IntVar(&runBedrooms, "bedrooms", 0, "Bedroom count for unit-type campaigns")
	runCommand.Flags().IntVar(&runBathrooms, "bathrooms", 0, "Bathroom count for unit-type campaigns")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().StringVarP(&runOutputFile, "out", "o", "", "Path to write the final ad copy JSON (defaults to stdout)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for intake data, fragment search, and artifact persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("client") {
		cfg.ClientID = runClientID
	}
	if cmd.Flags().Changed("campaign-type") {
		cfg.CampaignType = runCampaignType
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = runLocation
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		CampaignType: string(types.CampaignGeneralLocation),
	})

	// Step 4: Validate required fields
	if cfg.ClientID == "" {
		return fmt.Errorf("--client is required (via flag or config)")
	}
	if cfg.Location == "" {
		return fmt.Errorf("--location is required (via flag or config)")
	}
	campaignType := types.CampaignType(cfg.CampaignType)
	if !campaignType.IsValid() {
		return fmt.Errorf("unknown campaign type: %s", cfg.CampaignType)
	}

	// Step 5: API key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	// Step 6: Database URL handling (optional; pipeline degrades without it)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	req := types.CampaignRequest{
		ClientID:         cfg.ClientID,
		CampaignType:     campaignType,
		Location:         cfg.Location,
		ProximityTarget:  runProximityTarget,
		PriceRange:       runPriceRange,
		DemographicFocus: runDemographicFocus,
		SpecialOffer:     runSpecialOffer,
	}
	if runBedrooms > 0 || runBathrooms > 0 {
		req.UnitDetails = &types.UnitDetails{
			Bedrooms:  runBedrooms,
			Bathrooms: runBathrooms,
		}
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Request:     req,
		APIKey:      cfg.APIKey,
		DatabaseURL: cfg.DatabaseURL,
		Verbose:     cfg.Verbose,
	})
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(result.AdCopy, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ad copy: %w", err)
	}

	if runOutputFile != "" {
		if err := os.WriteFile(runOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote final ad copy to %s\n", runOutputFile)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	}

	return nil
}
