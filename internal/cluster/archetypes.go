// Package cluster assigns candidate profiles to experience/skill archetypes,
// using a trained centroid model when one is available and a deterministic
// rule-based fallback otherwise.
package cluster

import "github.com/jonathan/talent-match/internal/types"

// Rule-based scoring constants.
const (
	rangeHitPoints      = 2 // value falls inside the archetype range
	proximityPoints     = 1 // value is near a range boundary
	experienceProximity = 2.0
	skillProximity      = 3.0
)

// Archetype is one predefined candidate segment with its experience and
// skill-count ranges.
type Archetype struct {
	ID            int
	Name          string
	Description   string
	MinExperience float64
	MaxExperience float64
	MinSkills     int
	MaxSkills     int
}

// Archetypes returns the eight predefined candidate segments, in definition
// order. Ties in rule-based scoring resolve to the first-defined archetype.
func Archetypes() []Archetype {
	return []Archetype{
		{
			ID: 0, Name: "Entry-Level Generalists",
			Description:   "Early career professionals with diverse but foundational skills",
			MinExperience: 0, MaxExperience: 2, MinSkills: 0, MaxSkills: 10,
		},
		{
			ID: 1, Name: "Junior Specialists",
			Description:   "Focused skillset with 1-3 years of experience",
			MinExperience: 1, MaxExperience: 3, MinSkills: 8, MaxSkills: 15,
		},
		{
			ID: 2, Name: "Mid-Level Generalists",
			Description:   "Experienced professionals with broad skill coverage",
			MinExperience: 3, MaxExperience: 6, MinSkills: 10, MaxSkills: 20,
		},
		{
			ID: 3, Name: "Mid-Level Specialists",
			Description:   "Strong depth in specific technical areas",
			MinExperience: 3, MaxExperience: 6, MinSkills: 12, MaxSkills: 25,
		},
		{
			ID: 4, Name: "Senior Professionals",
			Description:   "Highly experienced with extensive skillset",
			MinExperience: 6, MaxExperience: 10, MinSkills: 15, MaxSkills: 999,
		},
		{
			ID: 5, Name: "Expert Level",
			Description:   "Elite professionals with 10+ years and comprehensive skills",
			MinExperience: 10, MaxExperience: 999, MinSkills: 15, MaxSkills: 999,
		},
		{
			ID: 6, Name: "Highly Skilled Early Career",
			Description:   "Young professionals with impressive skill acquisition",
			MinExperience: 0, MaxExperience: 3, MinSkills: 15, MaxSkills: 999,
		},
		{
			ID: 7, Name: "Experienced Focused",
			Description:   "Veteran professionals with concentrated expertise",
			MinExperience: 7, MaxExperience: 999, MinSkills: 8, MaxSkills: 15,
		},
	}
}

// AssignRuleBased deterministically scores every archetype against the
// candidate's experience years, skill count, and diversity, returning the
// highest-scoring one. Ties break to the first-defined archetype.
func AssignRuleBased(experienceYears float64, numSkills int, _ float64) types.ClusterAssignment {
	archetypes := Archetypes()
	best := archetypes[0]
	bestScore := -1

	for _, a := range archetypes {
		score := 0

		if a.MinExperience <= experienceYears && experienceYears <= a.MaxExperience {
			score += rangeHitPoints
		}
		if a.MinSkills <= numSkills && numSkills <= a.MaxSkills {
			score += rangeHitPoints
		}

		// Partial credit for near misses.
		expDiff := minFloat(absFloat(experienceYears-a.MinExperience), absFloat(experienceYears-a.MaxExperience))
		if expDiff <= experienceProximity {
			score += proximityPoints
		}
		skillsDiff := minFloat(absFloat(float64(numSkills-a.MinSkills)), absFloat(float64(numSkills-a.MaxSkills)))
		if skillsDiff <= skillProximity {
			score += proximityPoints
		}

		if score > bestScore {
			bestScore = score
			best = a
		}
	}

	return types.ClusterAssignment{
		ClusterID:   best.ID,
		ClusterName: best.Name,
		Description: best.Description,
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
