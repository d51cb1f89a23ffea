package similarity

import (
	"runtime"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-match/internal/types"
)

// overlapTermCount is the number of top terms compared in VocabularyOverlap.
const overlapTermCount = 50

// maxWorkers bounds the batch-scoring worker group.
var maxWorkers = runtime.GOMAXPROCS(0)

// TermWeight is one vocabulary term with its TF-IDF weight in a document.
type TermWeight struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// JobSimilarity breaks a job/resume comparison into its parts.
type JobSimilarity struct {
	Overall      float64 `json:"overall_similarity"`
	Description  float64 `json:"description_similarity"`
	Requirements float64 `json:"requirements_similarity"`
	Score        float64 `json:"tfidf_score"` // Overall on a 0-100 scale
}

// OverlapReport describes shared vocabulary between two texts.
type OverlapReport struct {
	CommonTerms  []string `json:"common_terms"`
	FirstUnique  []string `json:"first_unique"`
	SecondUnique []string `json:"second_unique"`
	OverlapRatio float64  `json:"overlap_ratio"` // Jaccard over the top-term sets
}

// Matcher computes text similarity against a fitted vectorizer. The
// vectorizer is held behind an atomic pointer so a retrained replacement can
// be swapped in without disturbing in-flight comparisons. An absent or
// unfitted vectorizer yields zero similarity, never an error.
type Matcher struct {
	vectorizer atomic.Pointer[Vectorizer]
	log        *zap.Logger
}

// NewMatcher builds a Matcher. Both arguments may be nil.
func NewMatcher(v *Vectorizer, log *zap.Logger) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Matcher{log: log}
	if v != nil {
		m.vectorizer.Store(v)
	}
	return m
}

// SetVectorizer atomically replaces the vectorizer after a retrain.
func (m *Matcher) SetVectorizer(v *Vectorizer) {
	m.vectorizer.Store(v)
}

// Similarity returns the cosine similarity of two texts in [0,1]. Both texts
// are vectorized with the same vocabulary, so the value is symmetric.
func (m *Matcher) Similarity(textA, textB string) float64 {
	v := m.vectorizer.Load()
	if v == nil || !v.Fitted() {
		m.log.Debug("similarity requested without a fitted vectorizer, returning 0")
		return 0.0
	}
	return cosine(v.Transform(textA), v.Transform(textB))
}

// TopTerms returns the n highest-weighted vocabulary terms for a text.
func (m *Matcher) TopTerms(text string, n int) []TermWeight {
	v := m.vectorizer.Load()
	if v == nil || !v.Fitted() {
		return nil
	}

	vec := v.Transform(text)
	terms := make([]TermWeight, 0, len(vec))
	for idx, w := range vec {
		if w > 0 {
			terms = append(terms, TermWeight{Term: v.Terms()[idx], Weight: w})
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Weight != terms[j].Weight {
			return terms[i].Weight > terms[j].Weight
		}
		return terms[i].Term < terms[j].Term
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// FindSimilar ranks a corpus of texts against a target and returns the top-K
// by similarity, ties broken by corpus order. ids is parallel to corpus and
// may be nil. Per-document scoring is independent, so it runs across a
// worker group with no shared mutable state beyond the read-only vectorizer.
func (m *Matcher) FindSimilar(target string, corpus []string, ids []string, topK int) []types.SimilarityMatch {
	v := m.vectorizer.Load()
	if v == nil || !v.Fitted() {
		return nil
	}

	targetVec := v.Transform(target)
	matches := make([]types.SimilarityMatch, len(corpus))

	var g errgroup.Group
	g.SetLimit(maxWorkers)
	for i := range corpus {
		i := i
		g.Go(func() error {
			matches[i] = types.SimilarityMatch{
				ID:         corpusID(ids, i),
				Similarity: cosine(targetVec, v.Transform(corpus[i])),
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// JobResumeSimilarity scores a resume against a job posting, broken down by
// description and requirements text.
func (m *Matcher) JobResumeSimilarity(resumeText, jobDescription, jobRequirements string) JobSimilarity {
	jobText := jobDescription
	if jobRequirements != "" {
		jobText += " " + jobRequirements
	}

	overall := m.Similarity(resumeText, jobText)
	result := JobSimilarity{
		Overall:     overall,
		Description: m.Similarity(resumeText, jobDescription),
		Score:       overall * 100,
	}
	if jobRequirements != "" {
		result.Requirements = m.Similarity(resumeText, jobRequirements)
	}
	return result
}

// VocabularyOverlap compares the top-term sets of two texts.
func (m *Matcher) VocabularyOverlap(textA, textB string) OverlapReport {
	setA := termSet(m.TopTerms(textA, overlapTermCount))
	setB := termSet(m.TopTerms(textB, overlapTermCount))

	report := OverlapReport{
		CommonTerms:  []string{},
		FirstUnique:  []string{},
		SecondUnique: []string{},
	}
	union := 0
	for term := range setA {
		if setB[term] {
			report.CommonTerms = append(report.CommonTerms, term)
		} else {
			report.FirstUnique = append(report.FirstUnique, term)
		}
		union++
	}
	for term := range setB {
		if !setA[term] {
			report.SecondUnique = append(report.SecondUnique, term)
			union++
		}
	}
	sort.Strings(report.CommonTerms)
	sort.Strings(report.FirstUnique)
	sort.Strings(report.SecondUnique)

	if union > 0 {
		report.OverlapRatio = float64(len(report.CommonTerms)) / float64(union)
	}
	return report
}

func termSet(terms []TermWeight) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t.Term] = true
	}
	return set
}

func corpusID(ids []string, i int) string {
	if i < len(ids) {
		return ids[i]
	}
	return ""
}
