package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maya/adcopy-agent/internal/db"
	"github.com/maya/adcopy-agent/internal/profile"
	"github.com/maya/adcopy-agent/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Synthesize a client profile from classified fragments and intake data",
	Long:  "Merge structured intake answers with classified knowledge fragments into a single client profile with a completeness score.",
	RunE:  runProfile,
}

var (
	profileInputFile   string
	profileOutputFile  string
	profileClientID    string
	profileDatabaseURL string
)

func init() {
	profileCmd.Flags().StringVarP(&profileInputFile, "in", "i", "", "Path to classified fragments JSON file (required)")
	profileCmd.Flags().StringVarP(&profileOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	profileCmd.Flags().StringVarP(&profileClientID, "client", "c", "", "Client identifier to load intake data for (optional, requires database)")
	profileCmd.Flags().StringVar(&profileDatabaseURL, "db-url", "", "Database URL (used with --client, defaults to DATABASE_URL env var)")

	_ = profileCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(profileInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var classified types.CategorizedFragments
	if err := json.Unmarshal(data, &classified); err != nil {
		return fmt.Errorf("failed to parse classified fragments JSON: %w", err)
	}

	// Intake data is optional: without a client or database the profile is
	// built from fragments alone.
	var intake *types.IntakeRecord
	if profileClientID != "" {
		databaseURL := profileDatabaseURL
		if databaseURL == "" {
			databaseURL = os.Getenv("DATABASE_URL")
		}
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL required when using --client")
		}

		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		intake, err = database.GetIntake(ctx, profileClientID)
		if err != nil {
			return fmt.Errorf("failed to fetch intake data: %w", err)
		}
		if intake == nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: no intake record found for client %s\n", profileClientID)
		}
	}

	clientProfile := profile.Build(intake, &classified)

	jsonBytes, err := json.MarshalIndent(clientProfile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if profileOutputFile != "" {
		if err := os.WriteFile(profileOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Profile completeness: %d/100\n", clientProfile.CompletenessScore)
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", profileOutputFile)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	}

	return nil
}
