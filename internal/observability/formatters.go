// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of an extracted candidate profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills:          %d\n", profile.NumSkills))
	sb.WriteString(fmt.Sprintf("Technical:       %d\n", profile.TechnicalSkillsCount))
	sb.WriteString(fmt.Sprintf("Diversity:       %.3f\n", profile.SkillDiversity))
	sb.WriteString(fmt.Sprintf("Experience:      %.1f years\n", profile.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Education:       %s\n", profile.EducationLevel))
	sb.WriteString(fmt.Sprintf("Certifications:  %v\n", profile.HasCertifications))
	sb.WriteString(fmt.Sprintf("Leadership:      %v\n", profile.HasLeadership))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nTop skills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("Candidate Profile", strings.TrimRight(sb.String(), "\n"))
}

// PrintScoreResult outputs a human-readable score report.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if !result.MeetsRequirements {
		sb.WriteString("Verdict: DOES NOT MEET REQUIREMENTS\n\n")
		for _, m := range result.MissingRequirements {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", m))
		}
		p.printBox("Score Report", strings.TrimRight(sb.String(), "\n"))
		return
	}

	sb.WriteString("Verdict: QUALIFIED\n\n")
	sb.WriteString(fmt.Sprintf("Skills:      %6.2f\n", result.SkillsScore))
	sb.WriteString(fmt.Sprintf("Experience:  %6.2f\n", result.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Education:   %6.2f\n", result.EducationScore))
	sb.WriteString(fmt.Sprintf("Bonus:       %6.2f\n", result.BonusScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Final score: %6.2f", result.FinalScore))

	p.printBox("Score Report", sb.String())
}

// PrintGapReport outputs a human-readable skill-gap report.
func (p *Printer) PrintGapReport(report *types.GapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Required match: %.2f%%\n", report.RequiredMatchPercentage))
	sb.WriteString(fmt.Sprintf("Overall match:  %.2f%%\n", report.OverallMatchPercentage))

	if len(report.MissingRequired) > 0 {
		sb.WriteString("\nMissing required:\n")
		for _, s := range report.MissingRequired {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", s))
		}
	}
	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for i, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec))
		}
	}

	p.printBox("Skill Gap Report", strings.TrimRight(sb.String(), "\n"))
}

// PrintClusterAssignment outputs a cluster assignment summary.
func (p *Printer) PrintClusterAssignment(assignment types.ClusterAssignment) {
	content := fmt.Sprintf("Cluster %d: %s\n%s",
		assignment.ClusterID, assignment.ClusterName, assignment.Description)
	p.printBox("Cluster Assignment", content)
}
