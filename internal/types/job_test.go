package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights_SumToOne(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.Sum(), 0.001)
	require.NoError(t, w.Validate())
}

func TestScoreWeights_Validate_SumOutOfTolerance(t *testing.T) {
	w := ScoreWeights{Skills: 0.5, Experience: 0.5, Education: 0.2}
	err := w.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestScoreWeights_Validate_WithinTolerance(t *testing.T) {
	// 1.005 is inside the 0.01 tolerance band.
	w := ScoreWeights{Skills: 0.405, Experience: 0.3, Education: 0.2, Certification: 0.05, Leadership: 0.05}
	assert.NoError(t, w.Validate())
}

func TestScoreWeights_Validate_NegativeWeight(t *testing.T) {
	w := ScoreWeights{Skills: -0.1, Experience: 0.5, Education: 0.4, Certification: 0.1, Leadership: 0.1}
	assert.Error(t, w.Validate(), "Negative weights must be rejected even when the sum is 1.0")
}

func TestJobRequirement_Validate_RejectsNegativeExperience(t *testing.T) {
	job := &JobRequirement{MinExperienceYears: -1}
	assert.Error(t, job.Validate())
}

func TestJobRequirement_Validate_RejectsBadWeights(t *testing.T) {
	job := &JobRequirement{
		RequiredSkills: []string{"Python"},
		Weights:        &ScoreWeights{Skills: 1.0, Experience: 1.0},
	}
	assert.Error(t, job.Validate())
}

func TestJobRequirement_EffectiveWeights_FallsBackToDefaults(t *testing.T) {
	job := &JobRequirement{}
	assert.Equal(t, DefaultWeights(), job.EffectiveWeights())

	custom := ScoreWeights{Skills: 1.0}
	job.Weights = &custom
	assert.Equal(t, custom, job.EffectiveWeights())
}
