package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/greenside/internal/holemodel"
)

func TestCourseValidate_ValidModel(t *testing.T) {
	out, err := runCommand(t, "course", "validate", "testdata/hole7.json")
	require.NoError(t, err)
	assert.Contains(t, out, "hole model valid")
}

func TestCourseValidate_ValidModelWithSchema(t *testing.T) {
	out, err := runCommand(t, "course", "validate", "--schema", "testdata/hole7.json")
	require.NoError(t, err)
	assert.Contains(t, out, "hole model valid")
}

func TestCourseValidate_InvertedBBox(t *testing.T) {
	out, err := runCommand(t, "course", "validate", "testdata/bad_bbox.json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "bbox")
}

func TestCourseValidate_InvertedBBoxWithSchema(t *testing.T) {
	_, err := runCommand(t, "course", "validate", "--schema", "testdata/bad_bbox.json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestCourseValidate_MissingFile(t *testing.T) {
	_, err := runCommand(t, "course", "validate", "testdata/nope.json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCourseValidate_JSONResult(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "course", "validate", "testdata/bad_bbox.json")
	require.Error(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Valid  bool              `json:"valid"`
			Errors []ValidationIssue `json:"errors"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.False(t, resp.Data.Valid)
	require.NotEmpty(t, resp.Data.Errors)
	assert.Equal(t, "bbox", resp.Data.Errors[0].Path)
}

func TestCourseSimplify_WritesReducedModel(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "simplified.json")

	_, err := runCommand(t, "course", "simplify", "testdata/hole7.json",
		"--tolerance", "0.01", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	model, err := holemodel.Parse(data)
	require.NoError(t, err)

	// The near-collinear fairway run collapses; the dogleg corner stays.
	require.Len(t, model.Fairways, 1)
	assert.Less(t, len(model.Fairways[0]), 6)
	assert.Equal(t, "hole-7", model.ID)
	require.NotNil(t, model.Pin)
}

func TestCourseSimplify_RejectsInvalidModel(t *testing.T) {
	_, err := runCommand(t, "course", "simplify", "testdata/bad_bbox.json", "--tolerance", "0.01")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
