package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/similarity"
)

var (
	similarTarget string
	similarCorpus string
	similarTop    int
)

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "Rank a corpus of documents by similarity to a target",
	Long:  `Similar fits a TF-IDF vectorizer on the corpus plus the target, then ranks every corpus document by cosine similarity to the target.`,
	RunE:  runSimilar,
}

func init() {
	similarCmd.Flags().StringVar(&similarTarget, "target", "", "Path to target text file (required)")
	similarCmd.Flags().StringVar(&similarCorpus, "corpus", "", "Directory of .txt files to rank (required)")
	similarCmd.Flags().IntVar(&similarTop, "top", 5, "Number of matches to return")
	_ = similarCmd.MarkFlagRequired("target")
	_ = similarCmd.MarkFlagRequired("corpus")
	rootCmd.AddCommand(similarCmd)
}

func runSimilar(_ *cobra.Command, _ []string) error {
	target, err := readText(similarTarget)
	if err != nil {
		return err
	}
	names, texts, err := readCorpus(similarCorpus)
	if err != nil {
		return err
	}

	// Fit on the corpus plus the target so the target's vocabulary
	// contributes to document frequencies.
	vectorizer := similarity.NewVectorizer(similarity.Config{})
	if err := vectorizer.Fit(append(append([]string{}, texts...), target)); err != nil {
		return fmt.Errorf("failed to fit vectorizer: %w", err)
	}

	matcher := similarity.NewMatcher(vectorizer, log)
	matches := matcher.FindSimilar(target, texts, names, similarTop)
	return printJSON(matches)
}
