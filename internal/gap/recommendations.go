package gap

import (
	"fmt"
	"strings"
)

// Recommendation list limits.
const (
	criticalNameLimit   = 3 // missing required skills named individually
	preferredShowLimit  = 5 // only suggest preferred skills when this few are missing
	preferredNameLimit  = 3
	strengthenNameLimit = 2
)

// complementaryPair maps an existing skill to a complementary-skill
// suggestion. Checked in order; the first match wins.
type complementaryPair struct {
	skill      string
	suggestion string
}

var complementarySkills = []complementaryPair{
	{"python", "Django or Flask for web development"},
	{"react", "TypeScript and Next.js"},
	{"javascript", "Node.js and TypeScript"},
	{"aws", "Docker and Kubernetes for containerization"},
	{"docker", "Kubernetes for orchestration"},
	{"machine learning", "MLOps and TensorFlow"},
	{"sql", "NoSQL databases like MongoDB"},
	{"java", "Spring Boot framework"},
	{"mobile", "Flutter or React Native"},
}

const genericComplementary = "additional tools commonly used in your field"

// Recommendations builds the ordered recommendation list for a gap report.
// Each condition is evaluated independently and appended in fixed priority
// order: critical missing required skills, preferred-skill suggestions,
// strengthening matched skills, a complementary skill, and an
// excellent-match note when nothing required is missing.
func Recommendations(missingRequired, missingPreferred, matchedRequired, matchedPreferred []string) []string {
	var recs []string

	if len(missingRequired) > 0 {
		if len(missingRequired) <= criticalNameLimit {
			recs = append(recs, fmt.Sprintf(
				"Critical: Learn %s - these are required for this role",
				strings.Join(missingRequired, ", ")))
		} else {
			recs = append(recs, fmt.Sprintf(
				"Critical: Focus on learning %s first (top %d missing required skills)",
				strings.Join(missingRequired[:criticalNameLimit], ", "), criticalNameLimit))
		}
	}

	if n := len(missingPreferred); n > 0 && n <= preferredShowLimit {
		recs = append(recs, fmt.Sprintf(
			"Recommended: Add %s to stand out from other candidates",
			strings.Join(head(missingPreferred, preferredNameLimit), ", ")))
	}

	if len(matchedRequired) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Strengthen your expertise in %s with certifications or projects",
			strings.Join(head(matchedRequired, strengthenNameLimit), ", ")))
	}

	existing := append(append([]string{}, matchedRequired...), matchedPreferred...)
	recs = append(recs, fmt.Sprintf(
		"Consider learning %s to complement your existing skills",
		complementarySuggestion(existing)))

	if len(missingRequired) == 0 && len(matchedRequired) > 0 {
		recs = append(recs, "Excellent match! Consider highlighting relevant projects in your application")
	}

	return recs
}

// complementarySuggestion picks a complementary-skill suggestion for the
// candidate's existing skills, defaulting to a generic hint.
func complementarySuggestion(existingSkills []string) string {
	existing := lowerSet(existingSkills)
	for _, pair := range complementarySkills {
		if existing[pair.skill] {
			return pair.suggestion
		}
	}
	return genericComplementary
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
