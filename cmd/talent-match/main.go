// Package main provides the talent-match CLI: candidate-job scoring, skill-gap
// analysis, clustering, and resume similarity over plain text files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/logger"
)

var (
	flagJSONLogs bool
	flagDebug    bool

	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "talent-match",
	Short: "Candidate-job matching engine",
	Long:  "talent-match scores job candidates against postings using a hard-requirements gate, weighted component scores, profile clustering, skill-gap analysis, and TF-IDF text similarity.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		log, err = logger.New(flagJSONLogs, flagDebug)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		return nil
	},
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
