package extract

import (
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// Education keyword lists, checked in priority order (highest level first).
var (
	phdKeywords = []string{"phd", "ph.d", "doctorate", "doctoral"}

	mastersKeywords = []string{
		"master's", "masters", "m.s.", "msc", "m.sc", "mba",
		"master of", "m.tech",
	}

	bachelorsKeywords = []string{
		"bachelor's", "bachelors", "b.s.", "bsc", "b.sc", "b.tech", "b.e.",
		"bachelor of technology", "bachelor of science", "bachelor of arts",
		"bachelor of engineering", "bachelor of computer", "undergraduate",
	}

	diplomaKeywords = []string{"diploma", "associate"}
)

var certificationKeywords = []string{
	"certification", "certified", "certificate", "aws certified", "google certified",
}

var leadershipKeywords = []string{
	"lead", "led", "leadership", "manager", "managed", "team lead",
	"senior", "principal", "architect", "mentor", "mentored", "coach",
}

// EducationLevel detects the highest education level mentioned in the text.
// The first matching level wins, checked from PhD down.
func EducationLevel(resumeText string) types.EducationLevel {
	lower := strings.ToLower(resumeText)
	switch {
	case containsAny(lower, phdKeywords):
		return types.EducationPhD
	case containsAny(lower, mastersKeywords):
		return types.EducationMasters
	case containsAny(lower, bachelorsKeywords):
		return types.EducationBachelors
	case containsAny(lower, diplomaKeywords):
		return types.EducationDiploma
	default:
		return types.EducationNone
	}
}

// HasCertifications reports whether the text mentions certifications.
// This is a plain keyword check with no negation handling: "no certifications"
// still flags true. The scoring constants were tuned against this behavior,
// so it is kept as-is.
func HasCertifications(resumeText string) bool {
	return containsAny(strings.ToLower(resumeText), certificationKeywords)
}

// HasLeadership reports whether the text mentions leadership experience.
// Same keyword-OR semantics and negation caveat as HasCertifications.
func HasLeadership(resumeText string) bool {
	return containsAny(strings.ToLower(resumeText), leadershipKeywords)
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
