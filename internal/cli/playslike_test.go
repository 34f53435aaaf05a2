package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaysLike_TextOutput(t *testing.T) {
	out, err := runCommand(t, "playslike", "-d", "150", "--slope", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "plays like 155.0 m (base 150.0)")
	assert.Contains(t, out, "slope +5.0 m")
}

func TestPlaysLike_JSONComponents(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "playslike", "-d", "150", "--wind", "5")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			DistanceEff float64 `json:"distanceEff"`
			Components  struct {
				WindM float64 `json:"windM"`
			} `json:"components"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.InDelta(t, 166.8, resp.Data.DistanceEff, 0.1)
	assert.InDelta(t, 16.8, resp.Data.Components.WindM, 0.1)
}

func TestPlaysLike_TempActivatesOnlyWhenFlagged(t *testing.T) {
	plain, err := runCommand(t, "playslike", "-d", "150")
	require.NoError(t, err)
	assert.NotContains(t, plain, "temp")

	cold, err := runCommand(t, "playslike", "-d", "150", "--temp", "10")
	require.NoError(t, err)
	assert.Contains(t, cold, "temp  +2.7 m")
}

func TestPlaysLike_RequiresPositiveDistance(t *testing.T) {
	_, err := runCommand(t, "playslike", "-d", "-10")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
