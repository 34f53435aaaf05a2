package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestEventLeaderboard_StrokeGolden(t *testing.T) {
	out, err := runCommand(t, "event", "leaderboard", "testdata/rows.json",
		"--names", "testdata/names.yaml")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "leaderboard_stroke", []byte(out))
}

func TestEventLeaderboard_StablefordGolden(t *testing.T) {
	out, err := runCommand(t, "event", "leaderboard", "testdata/rows.json",
		"--names", "testdata/names.yaml", "--scoring", "stableford")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "leaderboard_stableford", []byte(out))
}

func TestEventLeaderboard_JSONEntries(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "event", "leaderboard", "testdata/rows.json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			UserID      string  `json:"user_id"`
			Name        string  `json:"name"`
			Net         float64 `json:"net"`
			NetFromRows bool    `json:"netFromRows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "u-ann", resp.Data[0].UserID)
	assert.Equal(t, "u-ann", resp.Data[0].Name, "no names file: id stands in")
	assert.Equal(t, 7.0, resp.Data[0].Net)
	assert.True(t, resp.Data[0].NetFromRows)
}

func TestEventLeaderboard_RejectsUnknownScoring(t *testing.T) {
	_, err := runCommand(t, "event", "leaderboard", "testdata/rows.json", "--scoring", "matchplay")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEventLeaderboard_BadRowsFile(t *testing.T) {
	_, err := runCommand(t, "event", "leaderboard", "testdata/names.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
