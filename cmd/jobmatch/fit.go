package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/fit"
)

var (
	fitUserID string
	fitJobID  string
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Compute (or serve cached) resume fit for a user and job",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(fitUserID)
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		jobID, err := uuid.Parse(fitJobID)
		if err != nil {
			return fmt.Errorf("invalid job id: %w", err)
		}

		ctx := cmd.Context()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		svc := fit.NewService(rt.store, rt.store, rt.fitStore(), rt.embedder, rt.logger)
		result, err := svc.GetOrCompute(ctx, userID, jobID)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	fitCmd.Flags().StringVar(&fitUserID, "user", "", "User ID (UUID)")
	fitCmd.Flags().StringVar(&fitJobID, "job", "", "Job ID (UUID)")
	_ = fitCmd.MarkFlagRequired("user")
	_ = fitCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(fitCmd)
}
