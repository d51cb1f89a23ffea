package cluster

import (
	"github.com/jonathan/talent-match/internal/catalog"
	"github.com/jonathan/talent-match/internal/types"
)

// Skill-count outlier threshold for the outlier indicator feature.
const skillOutlierThreshold = 30

// featureCategories is the fixed category order for the per-category count
// features at the tail of the vector.
var featureCategories = []string{
	catalog.ProgrammingLanguages, catalog.WebTechnologies, catalog.Databases,
	catalog.DataScience, catalog.CloudDevOps, catalog.Mobile, catalog.Design,
	catalog.SoftSkills, catalog.OtherTechnical,
}

// FeatureNames returns the names of the features produced by Features, in
// vector order.
func FeatureNames() []string {
	names := []string{
		"num_skills", "experience_years", "experience_level_encoded",
		"education_encoded", "skill_diversity", "technical_skills_count",
		"technical_ratio", "has_certification_encoded", "has_leadership_encoded",
		"num_skills_is_outlier", "num_companies_is_outlier",
	}
	return append(names, featureCategories...)
}

// Features builds the numeric feature vector for the trained-model path from
// a candidate profile.
func Features(p *types.CandidateProfile) []float64 {
	technicalRatio := 0.0
	if p.NumSkills > 0 {
		technicalRatio = float64(p.TechnicalSkillsCount) / float64(p.NumSkills)
	}

	features := []float64{
		float64(p.NumSkills),
		p.ExperienceYears,
		float64(experienceLevel(p.ExperienceYears)),
		float64(p.EducationLevel.Ordinal()),
		p.SkillDiversity,
		float64(p.TechnicalSkillsCount),
		technicalRatio,
		boolFeature(p.HasCertifications),
		boolFeature(p.HasLeadership),
		boolFeature(p.NumSkills > skillOutlierThreshold),
		0, // companies outlier: not tracked in the profile schema
	}

	for _, category := range featureCategories {
		features = append(features, float64(p.CategoryCount(category)))
	}
	return features
}

// experienceLevel buckets years of experience into entry/junior/mid/senior.
func experienceLevel(years float64) int {
	switch {
	case years < 1:
		return 0
	case years < 3:
		return 1
	case years < 6:
		return 2
	default:
		return 3
	}
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
