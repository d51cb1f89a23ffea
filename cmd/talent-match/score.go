package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/catalog"
	"github.com/jonathan/talent-match/internal/extract"
	"github.com/jonathan/talent-match/internal/observability"
)

var (
	scoreResume  string
	scoreJob     string
	scoreConfig  string
	scoreVerbose bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate against a job posting",
	Long:  `Score runs the two-stage algorithm: a pass/fail check of the job's hard requirements, then weighted component scoring for candidates that passed.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreResume, "resume", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVar(&scoreJob, "job", "", "Path to job requirement JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to scoring config JSON file")
	scoreCmd.Flags().BoolVar(&scoreVerbose, "verbose", false, "Print a formatted report instead of JSON")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	text, err := readText(scoreResume)
	if err != nil {
		return err
	}
	job, err := loadJob(scoreJob)
	if err != nil {
		return err
	}
	scorer, err := loadScorer(scoreConfig)
	if err != nil {
		return err
	}

	profile := extract.New(catalog.Default()).Profile(text)
	result := scorer.Score(profile, job)

	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintScoreResult(result)
		return nil
	}
	return printJSON(result)
}
