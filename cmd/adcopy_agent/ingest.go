package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maya/adcopy-agent/internal/db"
	"github.com/maya/adcopy-agent/internal/llm"
	"github.com/maya/adcopy-agent/internal/scrape"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Scrape a property website into the client knowledge base",
	Long:  "Fetch a property website, extract and chunk its text, embed each chunk, and store the fragments in the client's knowledge base for retrieval.",
	RunE:  runIngest,
}

var (
	ingestURL         string
	ingestClientID    string
	ingestUseBrowser  bool
	ingestAPIKey      string
	ingestDatabaseURL string
	ingestVerbose     bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "Property website URL to scrape (required)")
	ingestCmd.Flags().StringVarP(&ingestClientID, "client", "c", "", "Client identifier to store fragments under (required)")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	ingestCmd.Flags().StringVar(&ingestAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	ingestCmd.Flags().StringVar(&ingestDatabaseURL, "db-url", "", "PostgreSQL connection URL (overrides DATABASE_URL env var)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = ingestCmd.MarkFlagRequired("url")
	_ = ingestCmd.MarkFlagRequired("client")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := ingestAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	databaseURL := ingestDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	chunks, err := scrape.ScrapeProperty(ctx, ingestURL, ingestUseBrowser, ingestVerbose)
	if err != nil {
		return fmt.Errorf("failed to scrape property site: %w", err)
	}
	if len(chunks) == 0 {
		return fmt.Errorf("no usable text chunks extracted from %s", ingestURL)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d text chunks from %s\n", len(chunks), ingestURL)

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	inserted := 0
	for i, chunk := range chunks {
		embedding, err := client.EmbedText(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to embed chunk %d: %w", i+1, err)
		}
		if err := database.InsertFragment(ctx, ingestClientID, chunk, embedding); err != nil {
			return fmt.Errorf("failed to store chunk %d: %w", i+1, err)
		}
		inserted++
		if ingestVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "[VERBOSE] Stored chunk %d/%d (%d chars)\n", i+1, len(chunks), len(chunk))
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ingested %d fragments for client %s\n", inserted, ingestClientID)
	return nil
}
