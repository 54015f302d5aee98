// Package main provides the jobmatch CLI: ranked job recommendations and
// résumé fit scores from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Resume/job matching engine",
	Long:  "jobmatch scores candidate resumes against job postings and produces ranked, explainable job recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
