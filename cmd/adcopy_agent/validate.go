package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maya/adcopy-agent/internal/constraints"
	"github.com/maya/adcopy-agent/internal/observability"
	"github.com/maya/adcopy-agent/internal/schemas"
	"github.com/maya/adcopy-agent/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate ad copy against schema and character constraints",
	Long:  "Check an ad copy JSON file against the output schema and character-count bounds, optionally applying deterministic repair to out-of-bounds lines.",
	RunE:  runValidate,
}

var (
	validateInputFile  string
	validateOutputFile string
	validateRepair     bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to ad copy JSON file (required)")
	validateCmd.Flags().StringVarP(&validateOutputFile, "out", "o", "", "Path to write the repaired ad copy JSON (requires --repair)")
	validateCmd.Flags().BoolVar(&validateRepair, "repair", false, "Apply deterministic truncation and expansion to failing lines")

	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateOutputFile != "" && !validateRepair {
		return fmt.Errorf("--out requires --repair")
	}

	data, err := os.ReadFile(validateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateAdCopy(string(data)); err != nil {
		return fmt.Errorf("ad copy does not validate against schema: %w", err)
	}

	var adCopy types.AdCopy
	if err := json.Unmarshal(data, &adCopy); err != nil {
		return fmt.Errorf("failed to parse ad copy JSON: %w", err)
	}

	var report *types.ConstraintReport
	if validateRepair {
		report = constraints.ValidateAndRepair(&adCopy)
	} else {
		report = constraints.Validate(&adCopy)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintConstraintReport(report)

	if validateRepair && validateOutputFile != "" {
		repaired := types.AdCopy{
			Keywords:     adCopy.Keywords,
			FinalURLPath: adCopy.FinalURLPath,
		}
		for _, res := range report.Headlines {
			repaired.Headlines = append(repaired.Headlines, res.Final)
		}
		for _, res := range report.Descriptions {
			repaired.Descriptions = append(repaired.Descriptions, res.Final)
		}

		jsonBytes, err := json.MarshalIndent(repaired, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(validateOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", validateOutputFile)
	}

	// Without repair, surface failures through the exit code
	if !validateRepair {
		if failed := len(report.FailedHeadlines()); failed > 0 {
			return fmt.Errorf("%d headlines are out of bounds", failed)
		}
		for _, res := range report.Descriptions {
			if !res.Valid {
				return fmt.Errorf("one or more descriptions are out of bounds")
			}
		}
	}

	return nil
}
