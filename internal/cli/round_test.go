package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundNet_Golden(t *testing.T) {
	out, err := runCommand(t, "round", "net", "testdata/round.yaml")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "round_net", []byte(out))
}

func TestRoundNet_JSONResult(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "round", "net", "testdata/round.yaml")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			CourseHandicap  int `json:"courseHandicap"`
			PlayingHandicap int `json:"playingHandicap"`
			TotalNet        int `json:"totalNet"`
			TotalPoints     int `json:"totalPoints"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 13, resp.Data.CourseHandicap)
	assert.Equal(t, 12, resp.Data.PlayingHandicap)
	assert.Equal(t, 33, resp.Data.TotalNet)
	assert.Equal(t, 21, resp.Data.TotalPoints)
}

func TestRoundNet_MissingFile(t *testing.T) {
	_, err := runCommand(t, "round", "net", "testdata/absent.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
