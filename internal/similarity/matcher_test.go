package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fittedMatcher(t *testing.T) *Matcher {
	t.Helper()
	v := NewVectorizer(Config{})
	require.NoError(t, v.Fit(testCorpus()))
	return NewMatcher(v, nil)
}

func TestSimilarity_IdenticalTexts(t *testing.T) {
	m := fittedMatcher(t)
	text := "python developer building backend services"
	assert.InDelta(t, 1.0, m.Similarity(text, text), 1e-9)
}

func TestSimilarity_DisjointVocabulary(t *testing.T) {
	m := fittedMatcher(t)
	sim := m.Similarity(
		"python backend services",
		"react typescript applications",
	)
	assert.InDelta(t, 0.0, sim, 1e-9)
}

func TestSimilarity_Symmetric(t *testing.T) {
	m := fittedMatcher(t)
	a := "python backend engineer"
	b := "react typescript engineer"
	assert.InDelta(t, m.Similarity(a, b), m.Similarity(b, a), 1e-12)
}

func TestSimilarity_UnfittedVectorizerReturnsZero(t *testing.T) {
	m := NewMatcher(NewVectorizer(Config{}), nil)
	assert.Equal(t, 0.0, m.Similarity("python", "python"))

	empty := NewMatcher(nil, nil)
	assert.Equal(t, 0.0, empty.Similarity("python", "python"))
}

func TestSimilarity_InUnitRange(t *testing.T) {
	m := fittedMatcher(t)
	for _, doc := range testCorpus() {
		sim := m.Similarity(doc, testCorpus()[0])
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	}
}

func TestTopTerms_RankedByWeight(t *testing.T) {
	m := fittedMatcher(t)

	terms := m.TopTerms("python python python backend", 10)
	require.NotEmpty(t, terms)
	assert.Equal(t, "python", terms[0].Term, "Repeated term carries the highest weight")
	for i := 1; i < len(terms); i++ {
		assert.LessOrEqual(t, terms[i].Weight, terms[i-1].Weight)
	}
}

func TestTopTerms_LimitRespected(t *testing.T) {
	m := fittedMatcher(t)
	terms := m.TopTerms(testCorpus()[0], 2)
	assert.LessOrEqual(t, len(terms), 2)
}

func TestTopTerms_UnfittedReturnsNil(t *testing.T) {
	m := NewMatcher(nil, nil)
	assert.Nil(t, m.TopTerms("python", 5))
}

func TestFindSimilar_RanksByCosine(t *testing.T) {
	m := fittedMatcher(t)
	corpus := testCorpus()
	ids := []string{"doc0", "doc1", "doc2", "doc3"}

	matches := m.FindSimilar("python backend services and data pipelines", corpus, ids, 0)
	require.Len(t, matches, 4)
	assert.Equal(t, "doc1", matches[0].ID, "The python backend document is the nearest")
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i].Similarity, matches[i-1].Similarity)
	}
}

func TestFindSimilar_TopKTruncates(t *testing.T) {
	m := fittedMatcher(t)
	matches := m.FindSimilar("python", testCorpus(), nil, 2)
	assert.Len(t, matches, 2)
}

func TestFindSimilar_TiesKeepCorpusOrder(t *testing.T) {
	m := fittedMatcher(t)
	// Two identical corpus entries tie exactly; stable sort keeps doc0 first.
	corpus := []string{"python backend", "python backend"}
	matches := m.FindSimilar("python backend", corpus, []string{"doc0", "doc1"}, 0)
	require.Len(t, matches, 2)
	assert.Equal(t, "doc0", matches[0].ID)
	assert.Equal(t, "doc1", matches[1].ID)
}

func TestFindSimilar_UnfittedReturnsNil(t *testing.T) {
	m := NewMatcher(nil, nil)
	assert.Nil(t, m.FindSimilar("python", testCorpus(), nil, 3))
}

func TestJobResumeSimilarity_Breakdown(t *testing.T) {
	m := fittedMatcher(t)

	result := m.JobResumeSimilarity(
		"python developer building backend services",
		"python backend developer role",
		"backend services engineer",
	)
	assert.Greater(t, result.Overall, 0.0)
	assert.Greater(t, result.Description, 0.0)
	assert.Greater(t, result.Requirements, 0.0)
	assert.InDelta(t, result.Overall*100, result.Score, 1e-9)
}

func TestJobResumeSimilarity_NoRequirementsText(t *testing.T) {
	m := fittedMatcher(t)
	result := m.JobResumeSimilarity("python backend", "python backend", "")
	assert.Equal(t, 0.0, result.Requirements)
	assert.InDelta(t, 1.0, result.Overall, 1e-9)
}

func TestVocabularyOverlap_SharedAndUnique(t *testing.T) {
	m := fittedMatcher(t)

	report := m.VocabularyOverlap("python backend services", "python react applications")
	assert.Contains(t, report.CommonTerms, "python")
	assert.Contains(t, report.FirstUnique, "backend")
	assert.Contains(t, report.SecondUnique, "react")
	assert.Greater(t, report.OverlapRatio, 0.0)
	assert.LessOrEqual(t, report.OverlapRatio, 1.0)
}

func TestSetVectorizer_SwapsAtomically(t *testing.T) {
	m := NewMatcher(nil, nil)
	assert.Equal(t, 0.0, m.Similarity("python backend", "python backend"))

	v := NewVectorizer(Config{})
	require.NoError(t, v.Fit(testCorpus()))
	m.SetVectorizer(v)

	assert.InDelta(t, 1.0, m.Similarity("python backend", "python backend"), 1e-9)
}
