package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// maxExperienceYears caps every experience estimate.
const maxExperienceYears = 20.0

// maxSingleRangeYears is the sanity limit for a bare year range; a single
// position spanning more than this is treated as a data-entry artifact.
const maxSingleRangeYears = 10

// earliestWorkYear bounds how far back a date range may start and still count
// as work experience.
const earliestWorkYear = 1990

var (
	// "5 years of experience", "3+ yrs experience", "10 years exp."
	explicitYearsRe = regexp.MustCompile(`(\d+)\+?\s*(years?|yrs?)\s+(of\s+)?(experience|exp\.?)`)

	// "Jan 2020 – Mar 2023", "May 2021 – Present"
	monthRangeRe = regexp.MustCompile(`(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})\s*[–—-]\s*((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})|present|current)`)

	// "2019 – 2022", "2021 – Present"
	yearRangeRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\s*[–—-]\s*(19\d{2}|20\d{2}|present|current)\b`)
)

// ExperienceYears estimates a candidate's years of experience from resume
// text. Extraction strategies run in priority order; the first that produces
// a value wins, and every result is capped at maxExperienceYears.
func (e *Extractor) ExperienceYears(resumeText string) float64 {
	lower := strings.ToLower(resumeText)
	currentYear := e.now().Year()

	// Explicit statements are the most reliable signal; take the maximum.
	if matches := explicitYearsRe.FindAllStringSubmatch(lower, -1); len(matches) > 0 {
		best := 0
		for _, m := range matches {
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
		}
		return math.Min(float64(best), maxExperienceYears)
	}

	// Month-level date ranges, summed.
	totalMonths := 0
	for _, m := range monthRangeRe.FindAllStringSubmatch(lower, -1) {
		startYear, _ := strconv.Atoi(m[2])
		endYear := currentYear
		if m[5] != "" {
			endYear, _ = strconv.Atoi(m[5])
		}
		if startYear >= earliestWorkYear && startYear <= currentYear &&
			startYear <= endYear && endYear <= currentYear+1 {
			totalMonths += (endYear - startYear) * 12
		}
	}
	if totalMonths > 0 {
		years := round1(float64(totalMonths) / 12.0)
		return math.Min(years, maxExperienceYears)
	}

	// Bare year ranges, summed, with a per-range plausibility guard.
	totalYears := 0
	for _, m := range yearRangeRe.FindAllStringSubmatch(lower, -1) {
		startYear, _ := strconv.Atoi(m[1])
		endYear := currentYear
		if m[2] != "present" && m[2] != "current" {
			endYear, _ = strconv.Atoi(m[2])
		}
		if startYear >= earliestWorkYear && startYear <= currentYear &&
			startYear <= endYear && endYear <= currentYear+1 {
			if diff := endYear - startYear; diff <= maxSingleRangeYears {
				totalYears += diff
			}
		}
	}
	if totalYears > 0 {
		return math.Min(float64(totalYears), maxExperienceYears)
	}

	// Last resort: a rough estimate from resume length.
	wordCount := len(strings.Fields(resumeText))
	switch {
	case wordCount > 500:
		return 1.0
	case wordCount > 300:
		return 0.5
	default:
		return 0.0
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
