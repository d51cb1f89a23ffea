package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// Skills score breakdown: up to 80 points from the preferred-skill match
// ratio, up to 20 from skill diversity.
const (
	preferredSkillPoints = 80.0
	diversityPoints      = 20.0
	pointsPerSkill       = 4.0 // fallback when the job defines no preferred skills
)

// Experience curve constants (years beyond the job minimum).
const (
	experienceBaseline  = 70.0
	perfectFitYears     = 2.0
	rampPerYear         = 15.0
	mildDecayLimitYears = 5.0
	decayPerYear        = 3.0
	overqualifiedPeak   = 85.0
)

// Bonus points for each profile flag.
const bonusPerFlag = 50.0

// SkillsScore scores (0-100) how well the candidate's skills exceed the
// job's baseline. Required skills were already verified by the gate; this
// rewards preferred-skill coverage and breadth.
func SkillsScore(candidate *types.CandidateProfile, preferredSkills []string) float64 {
	var preferredScore float64
	if len(preferredSkills) > 0 {
		have := make(map[string]bool, len(candidate.Skills))
		for _, s := range candidate.Skills {
			have[strings.ToLower(s)] = true
		}
		matched := 0
		for _, s := range preferredSkills {
			if have[strings.ToLower(s)] {
				matched++
			}
		}
		preferredScore = float64(matched) / float64(len(preferredSkills)) * preferredSkillPoints
	} else {
		// No preferred skills defined: base credit for skill count.
		preferredScore = math.Min(preferredSkillPoints, float64(candidate.NumSkills)*pointsPerSkill)
	}

	score := preferredScore + candidate.SkillDiversity*diversityPoints
	return round2(math.Min(100, score))
}

// ExperienceScore scores (0-100) years of experience beyond the job minimum.
// The candidate already meets the minimum; exactly meeting it is the 70-point
// baseline, one to two extra years is the perfect-fit ramp to 100, and heavy
// overqualification decays toward a floor of 70.
func ExperienceScore(experienceYears float64, minExperienceYears int) float64 {
	d := experienceYears - float64(minExperienceYears)

	var score float64
	switch {
	case d <= 0:
		score = experienceBaseline
	case d <= perfectFitYears:
		score = experienceBaseline + d*rampPerYear
	case d <= mildDecayLimitYears:
		score = 100 - (d-perfectFitYears)*decayPerYear
	default:
		score = math.Max(experienceBaseline, overqualifiedPeak-(d-mildDecayLimitYears)*decayPerYear)
	}

	return round2(math.Min(100, math.Max(0, score)))
}

// EducationScore scores (0-100) education relative to the job minimum.
// With no minimum set, the candidate's level is scored from the base table;
// otherwise meeting the minimum exactly is 70, one level above is 85, and two
// or more levels above is 100.
func (s *Scorer) EducationScore(candidateLevel, minLevel types.EducationLevel) float64 {
	levelsAbove := candidateLevel.Ordinal() - minLevel.Ordinal()

	switch {
	case levelsAbove == 0:
		if minLevel == types.EducationNone {
			return s.educationBase[candidateLevel]
		}
		return 70
	case levelsAbove == 1:
		return 85
	case levelsAbove >= 2:
		return 100
	default:
		// Below minimum is unreachable after the gate.
		return 0
	}
}

// BonusScore awards 50 points each for certifications and leadership,
// independent of whether the job required them.
func BonusScore(hasCertifications, hasLeadership bool) float64 {
	var bonus float64
	if hasCertifications {
		bonus += bonusPerFlag
	}
	if hasLeadership {
		bonus += bonusPerFlag
	}
	return bonus
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
