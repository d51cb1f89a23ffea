// Package types provides type definitions for structured data used throughout the talent-match engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile represents the structured information extracted from a
// single resume. It is created fresh per scoring request and never mutated
// after construction.
type CandidateProfile struct {
	Skills               []string            `json:"extracted_skills"`   // canonical skill names, first-occurrence order
	SkillsByCategory     map[string][]string `json:"skills_by_category"` // category key -> canonical skills
	NumSkills            int                 `json:"num_skills"`
	SkillDiversity       float64             `json:"skill_diversity"` // fraction of categories represented, 0-1
	TechnicalSkillsCount int                 `json:"technical_skills_count"`
	ExperienceYears      float64             `json:"experience_years"` // capped at 20.0
	EducationLevel       EducationLevel      `json:"education_level"`
	HasCertifications    bool                `json:"has_certifications"`
	HasLeadership        bool                `json:"has_leadership"`
}

// CategoryCount returns the number of extracted skills in the given category.
func (p *CandidateProfile) CategoryCount(category string) int {
	return len(p.SkillsByCategory[category])
}
