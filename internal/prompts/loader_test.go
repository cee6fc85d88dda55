package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("generation.json", "ad-copy")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "15 headlines")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("generation.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		prompt := MustGet("generation.json", "correct-headlines")
		assert.NotEmpty(t, prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "Brief: {{.CampaignBrief}} for {{.ClientID}}"
	data := map[string]string{
		"CampaignBrief": "downtown lofts",
		"ClientID":      "client-42",
	}

	result := Format(template, data)
	assert.Equal(t, "Brief: downtown lofts for client-42", result)
}

func TestFormat_MissingKeyLeavesPlaceholder(t *testing.T) {
	template := "Hello {{.Name}}"
	result := Format(template, map[string]string{})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("generation.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "ad-copy")
	assert.Contains(t, keys, "correct-headlines")
}
