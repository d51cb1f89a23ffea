// Package scoring implements the two-stage candidate scoring algorithm:
// a pass/fail requirements gate followed by weighted component scoring of
// candidates that passed.
package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// CheckRequirements runs the Stage-1 gate: a candidate must meet ALL of the
// job's hard requirements to proceed to scoring. It is a pure function; each
// failing rule appends one human-readable entry to missing, in a fixed order
// (skills, experience, education, certifications, leadership).
func CheckRequirements(candidate *types.CandidateProfile, job *types.JobRequirement) (passes bool, missing []string, reason string) {
	// Required skills: candidate must have every one, case-insensitive.
	if len(job.RequiredSkills) > 0 {
		have := make(map[string]bool, len(candidate.Skills))
		for _, s := range candidate.Skills {
			have[strings.ToLower(s)] = true
		}

		var missingSkills []string
		for _, s := range job.RequiredSkills {
			if !have[strings.ToLower(s)] {
				missingSkills = append(missingSkills, s)
			}
		}
		if len(missingSkills) > 0 {
			missing = append(missing, fmt.Sprintf("Missing required skills: %s", strings.Join(missingSkills, ", ")))
		}
	}

	if candidate.ExperienceYears < float64(job.MinExperienceYears) {
		missing = append(missing, fmt.Sprintf("Experience: %g years < %d years required",
			candidate.ExperienceYears, job.MinExperienceYears))
	}

	// Education is only gated when the job sets a minimum.
	if job.MinEducation != types.EducationNone {
		if candidate.EducationLevel.Ordinal() < job.MinEducation.Ordinal() {
			missing = append(missing, fmt.Sprintf("Education: %s < %s required",
				candidate.EducationLevel, job.MinEducation))
		}
	}

	if job.CertificationsRequired && !candidate.HasCertifications {
		missing = append(missing, "Certifications required but not found")
	}

	if job.LeadershipRequired && !candidate.HasLeadership {
		missing = append(missing, "Leadership experience required but not found")
	}

	passes = len(missing) == 0
	reason = strings.Join(missing, "; ")
	return passes, missing, reason
}
