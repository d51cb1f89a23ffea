// Package gap analyzes the lexical skill gap between a candidate and a job
// and produces ranked, human-readable recommendations.
package gap

import (
	"math"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// Analyze compares candidate skills against the job's required and preferred
// lists. Matching is case-insensitive exact-string comparison; list order in
// the report follows the job's list order.
func Analyze(candidateSkills, requiredSkills, preferredSkills []string) *types.GapReport {
	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[strings.ToLower(s)] = true
	}

	report := &types.GapReport{
		MatchedRequired:  []string{},
		MissingRequired:  []string{},
		MatchedPreferred: []string{},
		MissingPreferred: []string{},
	}

	for _, s := range requiredSkills {
		if have[strings.ToLower(s)] {
			report.MatchedRequired = append(report.MatchedRequired, s)
		} else {
			report.MissingRequired = append(report.MissingRequired, s)
		}
	}
	for _, s := range preferredSkills {
		if have[strings.ToLower(s)] {
			report.MatchedPreferred = append(report.MatchedPreferred, s)
		} else {
			report.MissingPreferred = append(report.MissingPreferred, s)
		}
	}

	report.RequiredMatchPercentage = 100.0
	if len(requiredSkills) > 0 {
		report.RequiredMatchPercentage = round2(float64(len(report.MatchedRequired)) / float64(len(requiredSkills)) * 100)
	}

	report.OverallMatchPercentage = 100.0
	if total := len(requiredSkills) + len(preferredSkills); total > 0 {
		matched := len(report.MatchedRequired) + len(report.MatchedPreferred)
		report.OverallMatchPercentage = round2(float64(matched) / float64(total) * 100)
	}

	report.Recommendations = Recommendations(
		report.MissingRequired, report.MissingPreferred,
		report.MatchedRequired, report.MatchedPreferred,
	)
	return report
}

// JaccardSimilarity computes the Jaccard similarity between two skill sets,
// case-insensitive, in [0,1].
func JaccardSimilarity(skillsA, skillsB []string) float64 {
	if len(skillsA) == 0 || len(skillsB) == 0 {
		return 0.0
	}

	setA := lowerSet(skillsA)
	setB := lowerSet(skillsB)

	intersection := 0
	for s := range setA {
		if setB[s] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func lowerSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = true
	}
	return set
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
