package scoring

import (
	"github.com/jonathan/talent-match/internal/types"
)

// Config holds the tunable scoring data: the fallback weight vector and the
// per-level education base scores used when a job sets no education minimum.
type Config struct {
	DefaultWeights types.ScoreWeights
	EducationBase  map[types.EducationLevel]float64
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	return Config{
		DefaultWeights: types.DefaultWeights(),
		EducationBase: map[types.EducationLevel]float64{
			types.EducationPhD:       100,
			types.EducationMasters:   85,
			types.EducationBachelors: 70,
			types.EducationDiploma:   50,
			types.EducationNone:      40,
		},
	}
}

// Scorer scores candidates against jobs. It is read-only after construction
// and safe for concurrent use.
type Scorer struct {
	defaultWeights types.ScoreWeights
	educationBase  map[types.EducationLevel]float64
}

// NewScorer builds a Scorer from the given configuration. Zero-value config
// fields fall back to defaults.
func NewScorer(cfg Config) *Scorer {
	def := DefaultConfig()
	if cfg.DefaultWeights.Sum() == 0 {
		cfg.DefaultWeights = def.DefaultWeights
	}
	if cfg.EducationBase == nil {
		cfg.EducationBase = def.EducationBase
	}
	return &Scorer{
		defaultWeights: cfg.DefaultWeights,
		educationBase:  cfg.EducationBase,
	}
}

// Score runs the full two-stage algorithm for one candidate against one job.
// A candidate that fails the Stage-1 gate is returned with every score zero;
// Stage 2 is skipped entirely. The job's weight vector is assumed valid
// (validated at job-creation time); a nil vector uses the scorer defaults.
func (s *Scorer) Score(candidate *types.CandidateProfile, job *types.JobRequirement) *types.ScoreResult {
	passes, missing, reason := CheckRequirements(candidate, job)
	if !passes {
		return &types.ScoreResult{
			MeetsRequirements:   false,
			MissingRequirements: missing,
			RejectionReason:     reason,
		}
	}

	skills := SkillsScore(candidate, job.PreferredSkills)
	experience := ExperienceScore(candidate.ExperienceYears, job.MinExperienceYears)
	education := s.EducationScore(candidate.EducationLevel, job.MinEducation)
	bonus := BonusScore(candidate.HasCertifications, candidate.HasLeadership)

	weights := s.defaultWeights
	if job.Weights != nil {
		weights = *job.Weights
	}

	final := skills*weights.Skills +
		experience*weights.Experience +
		education*weights.Education +
		bonus*(weights.Certification+weights.Leadership)

	return &types.ScoreResult{
		MeetsRequirements:   true,
		MissingRequirements: []string{},
		SkillsScore:         skills,
		ExperienceScore:     experience,
		EducationScore:      education,
		BonusScore:          bonus,
		FinalScore:          round2(final),
	}
}

// Percentile ranks a score against a comparison set: the share of comparison
// scores strictly below it, as a percentage rounded to 2 decimals. An empty
// comparison set yields the neutral 50.0.
func Percentile(score float64, comparison []float64) float64 {
	if len(comparison) == 0 {
		return 50.0
	}
	below := 0
	for _, s := range comparison {
		if s < score {
			below++
		}
	}
	return round2(float64(below) / float64(len(comparison)) * 100)
}
