package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maya/adcopy-agent/internal/campaign"
	"github.com/maya/adcopy-agent/internal/types"
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Build a weighted campaign context from a client profile",
	Long:  "Transform a client profile into the six-section campaign context, weighted and scored for the requested campaign type.",
	RunE:  runContext,
}

var (
	contextInputFile       string
	contextOutputFile      string
	contextClientID        string
	contextCampaignType    string
	contextLocation        string
	contextProximityTarget string
	contextBedrooms        int
	contextBathrooms       int
)

func init() {
	contextCmd.Flags().StringVarP(&contextInputFile, "in", "i", "", "Path to client profile JSON file (required)")
	contextCmd.Flags().StringVarP(&contextOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	contextCmd.Flags().StringVarP(&contextClientID, "client", "c", "", "Client identifier (required)")
	contextCmd.Flags().StringVarP(&contextCampaignType, "campaign-type", "t", string(types.CampaignGeneralLocation), "Campaign type: re_general_location, re_unit_type, re_proximity")
	contextCmd.Flags().StringVarP(&contextLocation, "location", "l", "", "Campaign location (required)")
	contextCmd.Flags().StringVar(&contextProximityTarget, "proximity-target", "", "Landmark for proximity campaigns")
	contextCmd.Flags().IntVar(&contextBedrooms, "bedrooms", 0, "Bedroom count for unit-type campaigns")
	contextCmd.Flags().IntVar(&contextBathrooms, "bathrooms", 0, "Bathroom count for unit-type campaigns")

	_ = contextCmd.MarkFlagRequired("in")
	_ = contextCmd.MarkFlagRequired("client")
	_ = contextCmd.MarkFlagRequired("location")

	rootCmd.AddCommand(contextCmd)
}

func runContext(_ *cobra.Command, _ []string) error {
	campaignType := types.CampaignType(contextCampaignType)
	if !campaignType.IsValid() {
		return fmt.Errorf("unknown campaign type: %s", contextCampaignType)
	}

	data, err := os.ReadFile(contextInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var clientProfile types.ClientProfile
	if err := json.Unmarshal(data, &clientProfile); err != nil {
		return fmt.Errorf("failed to parse client profile JSON: %w", err)
	}

	req := types.CampaignRequest{
		ClientID:        contextClientID,
		CampaignType:    campaignType,
		Location:        contextLocation,
		ProximityTarget: contextProximityTarget,
	}
	if contextBedrooms > 0 || contextBathrooms > 0 {
		req.UnitDetails = &types.UnitDetails{
			Bedrooms:  contextBedrooms,
			Bathrooms: contextBathrooms,
		}
	}

	campaignCtx := campaign.Build(&req, &clientProfile)

	jsonBytes, err := json.MarshalIndent(campaignCtx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if contextOutputFile != "" {
		if err := os.WriteFile(contextOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Context strength: %s (%d/100)\n", campaignCtx.ContextStrength, campaignCtx.OverallRelevanceScore)
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", contextOutputFile)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	}

	return nil
}
