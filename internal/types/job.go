package types

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// weightSumTolerance is the allowed deviation of the weight sum from 1.0.
const weightSumTolerance = 0.01

// ScoreWeights holds the per-component weights used to combine component
// scores into a final score. The five weights must sum to 1.0 within
// weightSumTolerance.
type ScoreWeights struct {
	Skills        float64 `json:"skills" validate:"gte=0,lte=1"`
	Experience    float64 `json:"experience" validate:"gte=0,lte=1"`
	Education     float64 `json:"education" validate:"gte=0,lte=1"`
	Certification float64 `json:"certification" validate:"gte=0,lte=1"`
	Leadership    float64 `json:"leadership" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the standard weight vector used when a job does not
// define its own.
func DefaultWeights() ScoreWeights {
	return ScoreWeights{
		Skills:        0.4,
		Experience:    0.3,
		Education:     0.2,
		Certification: 0.05,
		Leadership:    0.05,
	}
}

// Sum returns the total of all five weights.
func (w ScoreWeights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Certification + w.Leadership
}

// Validate checks that each weight is in [0,1] and the sum is 1.0 within
// tolerance.
func (w ScoreWeights) Validate() error {
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("invalid weights: %w", err)
	}
	if diff := math.Abs(w.Sum() - 1.0); diff > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0 (got %.4f)", w.Sum())
	}
	return nil
}

// JobRequirement represents a job posting's hard requirements, preferred
// skills, and scoring weights. It is supplied by an external job store; the
// engine never persists it.
type JobRequirement struct {
	RequiredSkills         []string       `json:"required_skills"`  // ALL mandatory
	PreferredSkills        []string       `json:"preferred_skills"` // bonus only
	MinExperienceYears     int            `json:"min_experience_years" validate:"gte=0"`
	MinEducation           EducationLevel `json:"min_education"`
	CertificationsRequired bool           `json:"certifications_required"`
	LeadershipRequired     bool           `json:"leadership_required"`
	Weights                *ScoreWeights  `json:"weights,omitempty"` // nil means DefaultWeights
}

var validate = validator.New()

// Validate rejects malformed job requirements. This runs at job-creation
// time; the scorer assumes it receives an already-valid record.
func (j *JobRequirement) Validate() error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("invalid job requirement: %w", err)
	}
	if j.Weights != nil {
		if err := j.Weights.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// EffectiveWeights returns the job's weight vector, falling back to the
// defaults when none is set.
func (j *JobRequirement) EffectiveWeights() ScoreWeights {
	if j.Weights != nil {
		return *j.Weights
	}
	return DefaultWeights()
}
