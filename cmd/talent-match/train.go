package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/catalog"
	"github.com/jonathan/talent-match/internal/cluster"
	"github.com/jonathan/talent-match/internal/extract"
	"github.com/jonathan/talent-match/internal/types"
)

var (
	trainCorpus   string
	trainOut      string
	trainClusters int
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a cluster model from a directory of resumes",
	Long:  `Train extracts a profile from every .txt resume in a directory, fits a k-means centroid model over the profile features, and writes the model as JSON for later use with the cluster command.`,
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainCorpus, "resumes", "", "Directory of .txt resume files (required)")
	trainCmd.Flags().StringVar(&trainOut, "out", "", "Path to write the model JSON file (required)")
	trainCmd.Flags().IntVar(&trainClusters, "clusters", cluster.DefaultClusters, "Number of clusters")
	_ = trainCmd.MarkFlagRequired("resumes")
	_ = trainCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(_ *cobra.Command, _ []string) error {
	names, texts, err := readCorpus(trainCorpus)
	if err != nil {
		return err
	}

	extractor := extract.New(catalog.Default())
	profiles := make([]*types.CandidateProfile, len(texts))
	for i, text := range texts {
		profiles[i] = extractor.Profile(text)
	}

	model, err := cluster.Train(profiles, trainClusters)
	if err != nil {
		return err
	}

	f, err := os.Create(trainOut)
	if err != nil {
		return fmt.Errorf("failed to create model file %s: %w", trainOut, err)
	}
	defer f.Close()
	if err := model.Encode(f); err != nil {
		return err
	}

	log.Info("trained cluster model",
		zap.Int("profiles", len(names)),
		zap.Int("clusters", len(model.Centroids)),
		zap.String("out", trainOut))
	return nil
}
