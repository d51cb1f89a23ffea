package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/catalog"
	"github.com/jonathan/talent-match/internal/cluster"
	"github.com/jonathan/talent-match/internal/extract"
	"github.com/jonathan/talent-match/internal/observability"
)

var (
	clusterResume  string
	clusterModel   string
	clusterVerbose bool
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Assign a candidate to a profile cluster",
	Long:  `Cluster assigns the candidate to one of the profile clusters using a trained centroid model if provided, falling back to rule-based archetype matching otherwise.`,
	RunE:  runCluster,
}

func init() {
	clusterCmd.Flags().StringVar(&clusterResume, "resume", "", "Path to resume text file (required)")
	clusterCmd.Flags().StringVar(&clusterModel, "model", "", "Path to trained cluster model JSON file")
	clusterCmd.Flags().BoolVar(&clusterVerbose, "verbose", false, "Print a formatted summary instead of JSON")
	_ = clusterCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(clusterCmd)
}

func runCluster(_ *cobra.Command, _ []string) error {
	text, err := readText(clusterResume)
	if err != nil {
		return err
	}

	var model *cluster.CentroidModel
	if clusterModel != "" {
		f, err := os.Open(clusterModel)
		if err != nil {
			return fmt.Errorf("failed to open model file %s: %w", clusterModel, err)
		}
		defer f.Close()
		model, err = cluster.DecodeModel(f)
		if err != nil {
			return fmt.Errorf("model file %s: %w", clusterModel, err)
		}
	}

	profile := extract.New(catalog.Default()).Profile(text)
	assignment := cluster.NewAssigner(model, log).Assign(profile)

	if clusterVerbose {
		observability.NewPrinter(os.Stdout).PrintClusterAssignment(assignment)
		return nil
	}
	return printJSON(assignment)
}
