// Package main provides the entry point for the ad copy generation CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adcopy_agent",
	Short: "Ad Copy Generation Agent",
	Long:  "Ad Copy Generation Agent produces constraint-compliant Google Ads copy for residential real estate campaigns from client knowledge bases and intake data.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
