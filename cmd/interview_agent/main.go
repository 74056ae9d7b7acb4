// Package main provides the entry point for the interview screener.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "Voice interview screening agent",
	Long:  "Interview agent conducts automated voice screening calls: it asks a fixed question script, classifies candidate answers, extracts notice period, CTC, and availability, and stores the structured result.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
