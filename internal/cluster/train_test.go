package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/types"
)

// trainingProfiles builds a spread of synthetic profiles wide enough to train on.
func trainingProfiles(n int) []*types.CandidateProfile {
	profiles := make([]*types.CandidateProfile, n)
	for i := range profiles {
		profiles[i] = &types.CandidateProfile{
			NumSkills:            i % 25,
			ExperienceYears:      float64(i % 15),
			SkillDiversity:       float64(i%10) / 10,
			TechnicalSkillsCount: i % 20,
			EducationLevel:       types.EducationLevel(i % 5),
			HasCertifications:    i%2 == 0,
			HasLeadership:        i%3 == 0,
		}
	}
	return profiles
}

func TestTrain_ProducesRequestedClusters(t *testing.T) {
	model, err := Train(trainingProfiles(40), 4)
	require.NoError(t, err)
	assert.Len(t, model.Centroids, 4)
	assert.Equal(t, FeatureNames(), model.FeatureNames)
}

func TestTrain_DefaultClusterCount(t *testing.T) {
	model, err := Train(trainingProfiles(40), 0)
	require.NoError(t, err)
	assert.Len(t, model.Centroids, DefaultClusters)
	assert.Equal(t, DefaultClusterNames(), model.ClusterNames)
}

func TestTrain_TooFewProfiles(t *testing.T) {
	_, err := Train(trainingProfiles(3), 8)
	assert.Error(t, err)
}

func TestTrain_Deterministic(t *testing.T) {
	first, err := Train(trainingProfiles(40), 4)
	require.NoError(t, err)
	second, err := Train(trainingProfiles(40), 4)
	require.NoError(t, err)
	assert.Equal(t, first.Centroids, second.Centroids, "Fixed seed makes training reproducible")
}

func TestTrain_ModelPredictsWithinRange(t *testing.T) {
	profiles := trainingProfiles(40)
	model, err := Train(profiles, 4)
	require.NoError(t, err)

	for _, p := range profiles {
		cluster, err := model.Predict(Features(p))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cluster, 0)
		assert.Less(t, cluster, 4)
	}
}
