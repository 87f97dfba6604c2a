package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dprsim/internal/feasibility"
	"dprsim/internal/simulation"
)

var analyzeDprID string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <features.json>",
	Short: "Run a one-shot feasibility assessment for a features file",
	Long: `Reads a ProjectFeatures JSON file, runs the combined baseline assessment
(probability, risk factors, recommendations, preset scenario sweep) and prints the
result as JSON on stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		features, err := readFeatures(args[0])
		if err != nil {
			return err
		}

		result, err := simulation.AssessFeasibility(analyzeDprID, features, cfg.MaxRecommendations)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	},
}

func readFeatures(path string) (feasibility.ProjectFeatures, error) {
	var features feasibility.ProjectFeatures

	data, err := os.ReadFile(path)
	if err != nil {
		return features, fmt.Errorf("failed to read features file: %w", err)
	}
	if err := json.Unmarshal(data, &features); err != nil {
		return features, fmt.Errorf("failed to parse features file %s: %w", path, err)
	}
	return features, nil
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDprID, "dpr-id", "local", "DPR document ID to stamp on the result")
	rootCmd.AddCommand(analyzeCmd)
}
