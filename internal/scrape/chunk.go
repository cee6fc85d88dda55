package scrape

import (
	"context"
	"strings"
	"time"
)

// Chunk size bounds. Fragments shorter than the minimum carry too little
// signal to classify; longer ones dilute the embedding.
const (
	MinChunkLength = 40
	MaxChunkLength = 400
)

// ChunkText splits extracted page text into fragment-sized chunks.
// Paragraphs are the primary unit; oversized paragraphs split at sentence
// boundaries. Duplicate chunks are dropped.
func ChunkText(text string) []string {
	var chunks []string
	seen := make(map[string]bool)

	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		for _, chunk := range splitParagraph(para) {
			chunk = strings.TrimSpace(chunk)
			if len(chunk) < MinChunkLength || seen[chunk] {
				continue
			}
			seen[chunk] = true
			chunks = append(chunks, chunk)
		}
	}

	return chunks
}

// splitParagraph returns the paragraph whole when it fits, otherwise packs
// its sentences into chunks no longer than MaxChunkLength.
func splitParagraph(para string) []string {
	if len(para) <= MaxChunkLength {
		return []string{para}
	}

	var chunks []string
	var current strings.Builder

	for _, sentence := range splitSentences(para) {
		if current.Len() > 0 && current.Len()+len(sentence)+1 > MaxChunkLength {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(sentence)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '.' || text[i] == '!' || text[i] == '?' {
			end := i + 1
			sentence := strings.TrimSpace(text[start:end])
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			start = end
		}
	}
	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// ScrapeProperty fetches a property website and returns its text chunked into
// fragments. When the plain HTTP fetch yields too little text (a JS-rendered
// SPA) and useBrowser is set, it re-renders the page in a headless browser.
func ScrapeProperty(ctx context.Context, url string, useBrowser, verbose bool) ([]string, error) {
	result, err := FetchURL(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	text, err := ExtractMainText(result.HTML, PropertyPageSelectors())
	if err != nil {
		return nil, err
	}

	if ShouldUseBrowser(text) && useBrowser {
		html, err := WithBrowser(ctx, url, 60*time.Second, verbose)
		if err != nil {
			return nil, &Error{
				URL:     url,
				Message: "browser fallback failed",
				Cause:   err,
			}
		}
		text, err = ExtractMainText(html, PropertyPageSelectors())
		if err != nil {
			return nil, err
		}
	}

	return ChunkText(text), nil
}
