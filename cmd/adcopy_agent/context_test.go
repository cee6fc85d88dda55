package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maya/adcopy-agent/internal/types"
)

func writeProfileFixture(t *testing.T) string {
	t.Helper()

	profile := types.ClientProfile{
		BrandVoice: types.BrandVoiceProfile{
			Tone:        []string{"warm", "professional"},
			Personality: []string{"friendly"},
		},
		Property: types.PropertyProfile{
			CommunityName: "Sunset Ridge",
			Amenities:     []string{"pool", "fitness center"},
		},
		HasIntakeData:     true,
		CompletenessScore: 60,
	}
	jsonBytes, err := json.MarshalIndent(profile, "", "  ")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, jsonBytes, 0644))
	return path
}

func TestContextCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)
	profilePath := writeProfileFixture(t)
	outPath := filepath.Join(t.TempDir(), "context.json")

	cmd := exec.Command(binaryPath, "context",
		"--in", profilePath,
		"--client", "sunset-ridge",
		"--location", "Austin, TX",
		"--out", outPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command should succeed: %s", output)
	assert.Contains(t, string(output), "Context strength")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var campaignCtx types.CampaignContext
	require.NoError(t, json.Unmarshal(data, &campaignCtx))
	for _, section := range campaignCtx.Sections() {
		assert.NotEmpty(t, section.Content, "every section carries content")
	}
}

func TestContextCommand_UnknownCampaignType(t *testing.T) {
	binaryPath := getBinaryPath(t)
	profilePath := writeProfileFixture(t)

	cmd := exec.Command(binaryPath, "context",
		"--in", profilePath,
		"--client", "sunset-ridge",
		"--location", "Austin, TX",
		"--campaign-type", "re_billboard")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "unknown campaign type")
}

func TestContextCommand_MissingLocation(t *testing.T) {
	binaryPath := getBinaryPath(t)
	profilePath := writeProfileFixture(t)

	cmd := exec.Command(binaryPath, "context", "--in", profilePath, "--client", "sunset-ridge")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "location")
}
