// Package extract turns raw resume text into a structured candidate profile.
package extract

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/talent-match/internal/catalog"
	"github.com/jonathan/talent-match/internal/types"
)

// specialPatterns overrides the default whole-word pattern for skills whose
// symbols break word-boundary matching, and for skills with common
// ASCII-only alias spellings. Patterns run against lowercased text.
var specialPatterns = map[string]string{
	"c++":     `\bc\+\+([^0-9a-z_]|$)`,
	"c#":      `\bc#([^0-9a-z_]|$)`,
	"asp.net": `\basp\.net\b`,
	".net":    `\.net\b`,
	"next.js": `\b(next\.js|nextjs)\b`,
	"node.js": `\b(node\.js|nodejs)\b`,
	"vue.js":  `\b(vue\.js|vuejs)\b`,
	"nuxt.js": `\b(nuxt\.js|nuxtjs)\b`,
}

// skillPattern pairs a canonical skill with its compiled match pattern.
type skillPattern struct {
	skill    string
	category string
	re       *regexp.Regexp
}

// Extractor extracts skills and profile signals from resume text. It compiles
// its patterns once at construction and is safe for concurrent use.
type Extractor struct {
	cat      *catalog.Catalog
	patterns []skillPattern
	now      func() time.Time
}

// New builds an Extractor over the given skill catalog.
func New(cat *catalog.Catalog) *Extractor {
	e := &Extractor{cat: cat, now: time.Now}
	seen := make(map[string]bool)
	for _, skill := range cat.AllSkills() {
		lower := strings.ToLower(skill)
		if seen[lower] {
			continue // a few skills are listed in two categories
		}
		seen[lower] = true

		pattern, ok := specialPatterns[lower]
		if !ok {
			pattern = `\b` + regexp.QuoteMeta(lower) + `\b`
		}
		e.patterns = append(e.patterns, skillPattern{
			skill:    skill,
			category: cat.CategoryOf(skill),
			re:       regexp.MustCompile(pattern),
		})
	}
	return e
}

// Skills extracts the canonical skills present in the text, deduplicated and
// ordered by first occurrence, together with the per-category breakdown.
func (e *Extractor) Skills(resumeText string) (skills []string, byCategory map[string][]string) {
	lower := strings.ToLower(resumeText)

	type hit struct {
		skill    string
		category string
		pos      int
	}
	var hits []hit
	for _, sp := range e.patterns {
		loc := sp.re.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		hits = append(hits, hit{skill: sp.skill, category: sp.category, pos: loc[0]})
	}

	// Order by first occurrence in the text, not catalog order.
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	byCategory = make(map[string][]string, e.cat.NumCategories())
	for _, h := range hits {
		skills = append(skills, h.skill)
		byCategory[h.category] = append(byCategory[h.category], h.skill)
	}
	return skills, byCategory
}

// Profile runs the full extraction pipeline over raw resume text. The result
// is a fresh value; the extractor holds no per-call state.
func (e *Extractor) Profile(resumeText string) *types.CandidateProfile {
	skills, byCategory := e.Skills(resumeText)

	technical := 0
	for _, cat := range catalog.TechnicalCategories() {
		technical += len(byCategory[cat])
	}

	diversity := 0.0
	if n := e.cat.NumCategories(); n > 0 {
		represented := 0
		for _, found := range byCategory {
			if len(found) > 0 {
				represented++
			}
		}
		diversity = round3(float64(represented) / float64(n))
	}

	return &types.CandidateProfile{
		Skills:               skills,
		SkillsByCategory:     byCategory,
		NumSkills:            len(skills),
		SkillDiversity:       diversity,
		TechnicalSkillsCount: technical,
		ExperienceYears:      e.ExperienceYears(resumeText),
		EducationLevel:       EducationLevel(resumeText),
		HasCertifications:    HasCertifications(resumeText),
		HasLeadership:        HasLeadership(resumeText),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
