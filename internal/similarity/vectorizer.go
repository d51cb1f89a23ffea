// Package similarity provides TF-IDF vectorization and cosine-similarity
// matching between free-text resumes and job postings.
package similarity

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// Vectorizer defaults, matching the reference vectorizer parameters.
const (
	DefaultMaxFeatures = 100 // vocabulary cap, by corpus term frequency
	DefaultMinDocFreq  = 2   // term must appear in at least this many documents
	DefaultMaxDocRatio = 0.8 // and in at most this fraction of documents
)

// tokenRe matches alphabetic tokens of at least two characters.
var tokenRe = regexp.MustCompile(`[a-zA-Z]{2,}`)

// Config holds the vectorizer hyperparameters. The zero value selects the
// defaults.
type Config struct {
	MaxFeatures int
	MinDocFreq  int
	MaxDocRatio float64
}

func (c Config) withDefaults() Config {
	if c.MaxFeatures <= 0 {
		c.MaxFeatures = DefaultMaxFeatures
	}
	if c.MinDocFreq <= 0 {
		c.MinDocFreq = DefaultMinDocFreq
	}
	if c.MaxDocRatio <= 0 || c.MaxDocRatio > 1 {
		c.MaxDocRatio = DefaultMaxDocRatio
	}
	return c
}

// Vectorizer converts text into l2-normalised TF-IDF vectors over a
// vocabulary of unigrams and bigrams learned from a reference corpus.
// It is immutable after Fit and safe for concurrent readers.
type Vectorizer struct {
	config Config
	vocab  map[string]int // term -> vector index
	terms  []string       // index -> term
	idf    []float64
}

// NewVectorizer builds an unfitted vectorizer. Transform on an unfitted
// vectorizer yields a nil vector, which callers treat as zero similarity.
func NewVectorizer(cfg Config) *Vectorizer {
	return &Vectorizer{config: cfg.withDefaults()}
}

// Fitted reports whether a vocabulary has been learned.
func (v *Vectorizer) Fitted() bool {
	return len(v.vocab) > 0
}

// Terms returns the learned vocabulary in vector-index order.
func (v *Vectorizer) Terms() []string {
	return v.terms
}

// Fit learns the vocabulary and inverse document frequencies from a corpus.
// Terms outside the document-frequency bounds are dropped and the remaining
// vocabulary is capped at MaxFeatures by total corpus frequency.
func (v *Vectorizer) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return fmt.Errorf("cannot fit vectorizer on an empty corpus")
	}

	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)
	for _, doc := range corpus {
		counts := termCounts(tokenize(doc))
		for term, n := range counts {
			docFreq[term]++
			corpusFreq[term] += n
		}
	}

	maxDocs := int(math.Floor(v.config.MaxDocRatio * float64(len(corpus))))
	if maxDocs < 1 {
		maxDocs = 1
	}

	var candidates []string
	for term, df := range docFreq {
		if df >= v.config.MinDocFreq && df <= maxDocs {
			candidates = append(candidates, term)
		}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no terms survived document-frequency filtering (corpus of %d documents)", len(corpus))
	}

	// Keep the most frequent terms; break frequency ties alphabetically so
	// fitting is deterministic.
	sort.Slice(candidates, func(i, j int) bool {
		if corpusFreq[candidates[i]] != corpusFreq[candidates[j]] {
			return corpusFreq[candidates[i]] > corpusFreq[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > v.config.MaxFeatures {
		candidates = candidates[:v.config.MaxFeatures]
	}
	sort.Strings(candidates)

	v.terms = candidates
	v.vocab = make(map[string]int, len(candidates))
	v.idf = make([]float64, len(candidates))
	n := float64(len(corpus))
	for i, term := range candidates {
		v.vocab[term] = i
		// Smoothed idf, as if one extra document contained every term.
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	return nil
}

// Transform converts text into a sparse l2-normalised TF-IDF vector keyed by
// vocabulary index. Returns nil when the vectorizer is unfitted.
func (v *Vectorizer) Transform(text string) map[int]float64 {
	if !v.Fitted() {
		return nil
	}

	vec := make(map[int]float64)
	for term, count := range termCounts(tokenize(text)) {
		if idx, ok := v.vocab[term]; ok {
			vec[idx] = float64(count) * v.idf[idx]
		}
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// tokenize lowercases the text, extracts alphabetic tokens of two or more
// characters, and drops stop words. The returned stream keeps text order so
// bigrams can be formed from adjacent survivors.
func tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, t := range raw {
		if !stopWords[t] {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// termCounts counts unigrams and bigrams over a token stream.
func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens)*2)
	for i, t := range tokens {
		counts[t]++
		if i+1 < len(tokens) {
			counts[t+" "+tokens[i+1]]++
		}
	}
	return counts
}

// cosine computes the cosine similarity of two sparse l2-normalised vectors.
func cosine(a, b map[int]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		dot += w * b[idx]
	}
	// Vectors are already unit length; clamp for float drift.
	if dot > 1 {
		dot = 1
	}
	if dot < 0 {
		dot = 0
	}
	return dot
}
