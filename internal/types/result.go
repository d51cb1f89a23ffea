package types

// ScoreResult is the outcome of scoring one candidate against one job.
// Component scores are meaningful only when MeetsRequirements is true; a
// gated candidate has every score forced to zero.
type ScoreResult struct {
	MeetsRequirements   bool     `json:"meets_requirements"`
	MissingRequirements []string `json:"missing_requirements"`
	RejectionReason     string   `json:"rejection_reason"`
	SkillsScore         float64  `json:"skills_score"`
	ExperienceScore     float64  `json:"experience_score"`
	EducationScore      float64  `json:"education_score"`
	BonusScore          float64  `json:"bonus_score"`
	FinalScore          float64  `json:"final_score"`
}

// GapReport describes how a candidate's skills line up against a job's
// required and preferred skill lists, with ranked recommendations.
type GapReport struct {
	MatchedRequired         []string `json:"matched_required"`
	MissingRequired         []string `json:"missing_required"`
	MatchedPreferred        []string `json:"matched_preferred"`
	MissingPreferred        []string `json:"missing_preferred"`
	RequiredMatchPercentage float64  `json:"required_match_percentage"`
	OverallMatchPercentage  float64  `json:"overall_match_percentage"`
	Recommendations         []string `json:"recommendations"`
}

// MatchedSkills returns all matched skills, required first.
func (r *GapReport) MatchedSkills() []string {
	out := make([]string, 0, len(r.MatchedRequired)+len(r.MatchedPreferred))
	out = append(out, r.MatchedRequired...)
	out = append(out, r.MatchedPreferred...)
	return out
}

// MissingSkills returns all missing skills, required first.
func (r *GapReport) MissingSkills() []string {
	out := make([]string, 0, len(r.MissingRequired)+len(r.MissingPreferred))
	out = append(out, r.MissingRequired...)
	out = append(out, r.MissingPreferred...)
	return out
}

// ClusterAssignment places a candidate into one of the fixed profile
// archetypes. It is reported independently of the requirement gate.
type ClusterAssignment struct {
	ClusterID   int    `json:"cluster_id"`
	ClusterName string `json:"cluster_name"`
	Description string `json:"cluster_description"`
}

// SimilarityMatch is one entry in a nearest-resumes ranking.
type SimilarityMatch struct {
	ID         string  `json:"id"`
	Similarity float64 `json:"similarity"` // cosine similarity, 0-1
}
