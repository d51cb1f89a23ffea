package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/catalog"
	"github.com/jonathan/talent-match/internal/extract"
	"github.com/jonathan/talent-match/internal/gap"
	"github.com/jonathan/talent-match/internal/observability"
)

var (
	gapResume  string
	gapJob     string
	gapVerbose bool
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze a candidate's skill gap against a job posting",
	RunE:  runGap,
}

func init() {
	gapCmd.Flags().StringVar(&gapResume, "resume", "", "Path to resume text file (required)")
	gapCmd.Flags().StringVar(&gapJob, "job", "", "Path to job requirement JSON file (required)")
	gapCmd.Flags().BoolVar(&gapVerbose, "verbose", false, "Print a formatted report instead of JSON")
	_ = gapCmd.MarkFlagRequired("resume")
	_ = gapCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(gapCmd)
}

func runGap(_ *cobra.Command, _ []string) error {
	text, err := readText(gapResume)
	if err != nil {
		return err
	}
	job, err := loadJob(gapJob)
	if err != nil {
		return err
	}

	profile := extract.New(catalog.Default()).Profile(text)
	report := gap.Analyze(profile.Skills, job.RequiredSkills, job.PreferredSkills)

	if gapVerbose {
		observability.NewPrinter(os.Stdout).PrintGapReport(report)
		return nil
	}
	return printJSON(report)
}
