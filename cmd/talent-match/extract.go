package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/catalog"
	"github.com/jonathan/talent-match/internal/extract"
	"github.com/jonathan/talent-match/internal/observability"
)

var (
	extractResume  string
	extractVerbose bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a candidate profile from resume text",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractResume, "resume", "", "Path to resume text file (required)")
	extractCmd.Flags().BoolVar(&extractVerbose, "verbose", false, "Print a formatted summary instead of JSON")
	_ = extractCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	text, err := readText(extractResume)
	if err != nil {
		return err
	}

	profile := extract.New(catalog.Default()).Profile(text)

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintProfile(profile)
		return nil
	}
	return printJSON(profile)
}
