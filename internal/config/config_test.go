package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/types"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 1.0, cfg.Weights.Sum(), 0.001)
	assert.Equal(t, 100.0, cfg.EducationScores["phd"])
	assert.Equal(t, 40.0, cfg.EducationScores["none"])
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"weights": {
			"skills": 0.5,
			"experience": 0.2,
			"education": 0.2,
			"certification": 0.05,
			"leadership": 0.05
		},
		"education_scores": {"phd": 95}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Weights.Skills)
	assert.Equal(t, 95.0, cfg.EducationScores["phd"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, "not json")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsBadWeightSum(t *testing.T) {
	path := writeConfigFile(t, `{
		"weights": {"skills": 0.9, "experience": 0.9, "education": 0, "certification": 0, "leadership": 0}
	}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestValidate_UnknownEducationKey(t *testing.T) {
	cfg := &Config{EducationScores: map[string]float64{"kindergarten": 10}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kindergarten")
}

func TestValidate_EducationScoreOutOfRange(t *testing.T) {
	cfg := &Config{EducationScores: map[string]float64{"phd": 150}}
	assert.Error(t, cfg.Validate())
}

func TestScoringConfig_OverlaysDefaults(t *testing.T) {
	cfg := &Config{EducationScores: map[string]float64{"masters": 90}}

	sc := cfg.ScoringConfig()
	assert.Equal(t, 90.0, sc.EducationBase[types.EducationMasters], "Loaded value overrides the default")
	assert.Equal(t, 100.0, sc.EducationBase[types.EducationPhD], "Untouched levels keep their defaults")
	assert.Equal(t, types.DefaultWeights(), sc.DefaultWeights)
}
