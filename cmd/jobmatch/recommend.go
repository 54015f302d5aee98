package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/recommend"
)

var (
	recommendUserID string
	recommendLimit  int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank job recommendations for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(recommendUserID)
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}

		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		svc := recommend.NewService(rt.store, rt.store, rt.embedder, rt.logger)
		ranked, err := svc.RecommendForUser(ctx, userID, recommendLimit)
		if err != nil {
			return err
		}
		return printJSON(ranked)
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recommendUserID, "user", "", "User ID (UUID)")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", recommend.DefaultLimit, "Maximum number of results")
	_ = recommendCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(recommendCmd)
}
