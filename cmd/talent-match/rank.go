package main

import (
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/catalog"
	"github.com/jonathan/talent-match/internal/extract"
	"github.com/jonathan/talent-match/internal/scoring"
	"github.com/jonathan/talent-match/internal/types"
)

var (
	rankCorpus string
	rankJob    string
	rankConfig string
)

// rankedCandidate is one row of the batch-ranking output.
type rankedCandidate struct {
	CandidateID string             `json:"candidate_id"`
	File        string             `json:"file"`
	Result      *types.ScoreResult `json:"result"`
	Percentile  float64            `json:"percentile"`
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score and rank a directory of resumes against a job posting",
	Long:  `Rank scores every .txt resume in a directory against the job, then ranks qualifying candidates by final score and reports each one's percentile within the batch.`,
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankCorpus, "resumes", "", "Directory of .txt resume files (required)")
	rankCmd.Flags().StringVar(&rankJob, "job", "", "Path to job requirement JSON file (required)")
	rankCmd.Flags().StringVar(&rankConfig, "config", "", "Path to scoring config JSON file")
	_ = rankCmd.MarkFlagRequired("resumes")
	_ = rankCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	names, texts, err := readCorpus(rankCorpus)
	if err != nil {
		return err
	}
	job, err := loadJob(rankJob)
	if err != nil {
		return err
	}
	scorer, err := loadScorer(rankConfig)
	if err != nil {
		return err
	}

	extractor := extract.New(catalog.Default())
	ranked := make([]rankedCandidate, 0, len(names))
	qualifying := make([]float64, 0, len(names))
	for i, name := range names {
		result := scorer.Score(extractor.Profile(texts[i]), job)
		ranked = append(ranked, rankedCandidate{
			CandidateID: uuid.New().String(),
			File:        name,
			Result:      result,
		})
		if result.MeetsRequirements {
			qualifying = append(qualifying, result.FinalScore)
		}
	}

	// Percentiles compare only against candidates that passed the gate.
	for i := range ranked {
		if ranked[i].Result.MeetsRequirements {
			ranked[i].Percentile = scoring.Percentile(ranked[i].Result.FinalScore, qualifying)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Result, ranked[j].Result
		if a.MeetsRequirements != b.MeetsRequirements {
			return a.MeetsRequirements
		}
		return a.FinalScore > b.FinalScore
	})

	log.Info("ranked candidate batch",
		zap.Int("candidates", len(ranked)),
		zap.Int("qualifying", len(qualifying)))
	return printJSON(ranked)
}
