package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/maya/adcopy-agent/internal/classify"
	"github.com/maya/adcopy-agent/internal/db"
	"github.com/maya/adcopy-agent/internal/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify knowledge fragments into semantic categories",
	Long:  "Classify retrieved knowledge fragments into brand voice, demographics, property features, local area, competitor intelligence, and general buckets.",
	RunE:  runClassify,
}

var (
	classifyInputFile   string
	classifyOutputFile  string
	classifyRunID       string
	classifyDatabaseURL string
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyInputFile, "in", "i", "", "Path to fragments JSON file (array of fragments)")
	classifyCmd.Flags().StringVarP(&classifyOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	classifyCmd.Flags().StringVar(&classifyRunID, "run-id", "", "Run ID to load fragments from database (alternative to --in)")
	classifyCmd.Flags().StringVar(&classifyDatabaseURL, "db-url", "", "Database URL (required with --run-id)")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, _ []string) error {
	useDatabase := classifyRunID != ""
	if useDatabase && classifyInputFile != "" {
		return fmt.Errorf("cannot use --run-id with --in")
	}
	if !useDatabase && classifyInputFile == "" {
		return fmt.Errorf("must provide either --run-id or --in")
	}

	ctx := context.Background()

	var fragments []types.Fragment
	if useDatabase {
		runID, err := uuid.Parse(classifyRunID)
		if err != nil {
			return fmt.Errorf("invalid run-id: %w", err)
		}

		if classifyDatabaseURL == "" {
			classifyDatabaseURL = os.Getenv("DATABASE_URL")
		}
		if classifyDatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL required when using --run-id")
		}

		database, err := db.Connect(ctx, classifyDatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		artifact, err := database.GetArtifact(ctx, runID, db.StepFragments)
		if err != nil {
			return fmt.Errorf("failed to get fragments artifact: %w", err)
		}
		if artifact == nil {
			return fmt.Errorf("no fragments artifact found for run %s", runID)
		}
		if err := json.Unmarshal(artifact, &fragments); err != nil {
			return fmt.Errorf("failed to parse fragments artifact: %w", err)
		}
	} else {
		data, err := os.ReadFile(classifyInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		if err := json.Unmarshal(data, &fragments); err != nil {
			return fmt.Errorf("failed to parse fragments JSON: %w", err)
		}
	}

	classified := classify.Classify(fragments)

	jsonBytes, err := json.MarshalIndent(classified, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if classifyOutputFile != "" {
		if err := os.WriteFile(classifyOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Classified %d fragments\n", classified.Total())
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", classifyOutputFile)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	}

	return nil
}
