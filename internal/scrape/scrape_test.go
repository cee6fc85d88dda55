package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main>Resort style pool and fitness center.</main></body></html>"))
	}))
	defer server.Close()

	result, err := FetchURL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Resort style pool")
}

func TestFetchURL_InvalidURL(t *testing.T) {
	_, err := FetchURL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFetchURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := FetchURL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractMainText_PrefersSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Site Nav</nav>
		<div class="amenities">Rooftop pool, fitness center, and a resident lounge.</div>
		<footer>Footer junk</footer>
	</body></html>`

	text, err := ExtractMainText(html, PropertyPageSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Rooftop pool")
	assert.NotContains(t, text, "Site Nav")
	assert.NotContains(t, text, "Footer junk")
}

func TestExtractMainText_SeparatesBlocks(t *testing.T) {
	html := `<html><body><main>` +
		`<p>Our community features a resort style swimming pool and sundeck.</p>` +
		`<p>Located minutes from downtown with easy highway access for commuters.</p>` +
		`</main></body></html>`

	text, err := ExtractMainText(html, PropertyPageSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "sundeck.\nLocated")
	assert.NotContains(t, text, "sundeck.Located")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Spacious one and two bedroom apartments.</p></body></html>`

	text, err := ExtractMainText(html, PropertyPageSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Spacious one and two bedroom apartments.")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("tiny"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("content ", 100)))
}

func TestChunkText_SplitsParagraphs(t *testing.T) {
	text := "Our community features a resort style swimming pool and sundeck.\nLocated minutes from downtown with easy highway access for commuters."

	chunks := ChunkText(text)
	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[0], "swimming pool")
	assert.Contains(t, chunks[1], "downtown")
}

func TestChunkText_DropsShortLines(t *testing.T) {
	chunks := ChunkText("Menu\nHome\nOur community features a resort style swimming pool and sundeck.")
	require.Len(t, chunks, 1)
}

func TestChunkText_Deduplicates(t *testing.T) {
	line := "Our community features a resort style swimming pool and sundeck."
	chunks := ChunkText(line + "\n" + line)
	assert.Len(t, chunks, 1)
}

func TestChunkText_SplitsLongParagraphs(t *testing.T) {
	sentence := "This sentence describes one of the many wonderful community amenities available. "
	long := strings.TrimSpace(strings.Repeat(sentence, 10))

	chunks := ChunkText(long)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), MaxChunkLength)
	}
}

func TestScrapeProperty_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>` +
			`<p>Our community features a resort style swimming pool and sundeck.</p>` +
			`<p>Located minutes from downtown with easy highway access for commuters.</p>` +
			`</main></body></html>`))
	}))
	defer server.Close()

	chunks, err := ScrapeProperty(context.Background(), server.URL, false, false)
	require.NoError(t, err)
	assert.Len(t, chunks, 2)
}
