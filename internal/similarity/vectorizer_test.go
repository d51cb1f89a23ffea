package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus() []string {
	return []string{
		"python developer building backend services with django and postgres",
		"python engineer writing backend services and data pipelines",
		"frontend developer building react applications with typescript",
		"react engineer shipping typescript applications and design systems",
	}
}

func TestFit_EmptyCorpus(t *testing.T) {
	v := NewVectorizer(Config{})
	assert.Error(t, v.Fit(nil))
	assert.False(t, v.Fitted())
}

func TestFit_DocumentFrequencyBounds(t *testing.T) {
	v := NewVectorizer(Config{})
	require.NoError(t, v.Fit(testCorpus()))

	vocab := v.Terms()
	assert.NotContains(t, vocab, "django", "Terms in fewer than 2 documents are dropped")
	assert.Contains(t, vocab, "python", "Terms within the frequency bounds survive")
	assert.Contains(t, vocab, "react")
}

func TestFit_MaxDocRatioDropsUbiquitousTerms(t *testing.T) {
	corpus := []string{
		"alpha keep shared term",
		"beta keep shared term",
		"gamma shared term",
		"delta shared term",
		"epsilon shared term",
	}
	v := NewVectorizer(Config{})
	require.NoError(t, v.Fit(corpus))

	// "shared" appears in 100% of documents, above the 0.8 ceiling; "keep"
	// appears in 2 of 5 and survives.
	assert.NotContains(t, v.Terms(), "shared")
	assert.Contains(t, v.Terms(), "keep")
}

func TestFit_StopWordsRemoved(t *testing.T) {
	corpus := []string{
		"the python and the react",
		"the python with the react",
		"java developer position",
	}
	v := NewVectorizer(Config{})
	require.NoError(t, v.Fit(corpus))

	assert.NotContains(t, v.Terms(), "the")
	assert.NotContains(t, v.Terms(), "and")
	assert.Contains(t, v.Terms(), "python")
}

func TestFit_BigramsFormed(t *testing.T) {
	corpus := []string{
		"machine learning engineer",
		"machine learning researcher",
		"data analyst opening",
	}
	v := NewVectorizer(Config{})
	require.NoError(t, v.Fit(corpus))

	assert.Contains(t, v.Terms(), "machine learning")
}

func TestFit_VocabularyCap(t *testing.T) {
	corpus := testCorpus()
	v := NewVectorizer(Config{MaxFeatures: 3})
	require.NoError(t, v.Fit(corpus))

	assert.Len(t, v.Terms(), 3)
}

func TestFit_Deterministic(t *testing.T) {
	a := NewVectorizer(Config{})
	b := NewVectorizer(Config{})
	require.NoError(t, a.Fit(testCorpus()))
	require.NoError(t, b.Fit(testCorpus()))

	assert.Equal(t, a.Terms(), b.Terms())
}

func TestTransform_UnfittedReturnsNil(t *testing.T) {
	v := NewVectorizer(Config{})
	assert.Nil(t, v.Transform("python developer"))
}

func TestTransform_UnitLength(t *testing.T) {
	v := NewVectorizer(Config{})
	require.NoError(t, v.Fit(testCorpus()))

	vec := v.Transform("python backend services")
	require.NotEmpty(t, vec)

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	assert.InDelta(t, 1.0, norm, 1e-9, "Transformed vectors are l2-normalised")
}

func TestTransform_OutOfVocabularyIsEmpty(t *testing.T) {
	v := NewVectorizer(Config{})
	require.NoError(t, v.Fit(testCorpus()))

	vec := v.Transform("zymurgy quixotic")
	assert.Empty(t, vec)
}

func TestTokenize_MinTokenLength(t *testing.T) {
	tokens := tokenize("A c go full-stack developer")
	assert.NotContains(t, tokens, "a")
	assert.NotContains(t, tokens, "c", "Single-character tokens are dropped")
	assert.Contains(t, tokens, "full")
	assert.Contains(t, tokens, "stack")
}
