package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/matching"
	"github.com/jonathan/jobmatch/internal/types"
)

var (
	scoreRequirementsPath string
	scoreProfilePath      string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a profile against a job's parsed requirements",
	Long:  "Reads a job requirements JSON file and a profile JSON file and prints the weighted per-dimension breakdown and overall 0-100 fit score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var reqs matching.JobRequirements
		if err := readJSONFile(scoreRequirementsPath, &reqs); err != nil {
			return err
		}
		var profile types.Profile
		if err := readJSONFile(scoreProfilePath, &profile); err != nil {
			return err
		}

		ctx := cmd.Context()
		rt, err := newEmbedderRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		overall, err := matching.ScoreResume(ctx, rt.embedder, reqs, &profile, rt.cfg.MatchThreshold)
		if err != nil {
			return err
		}
		return printJSON(overall)
	},
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func init() {
	scoreCmd.Flags().StringVar(&scoreRequirementsPath, "requirements", "", "Path to job requirements JSON")
	scoreCmd.Flags().StringVar(&scoreProfilePath, "profile", "", "Path to profile JSON")
	_ = scoreCmd.MarkFlagRequired("requirements")
	_ = scoreCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(scoreCmd)
}
