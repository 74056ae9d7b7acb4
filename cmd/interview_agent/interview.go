package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-screener/internal/agent"
	"github.com/jonathan/interview-screener/internal/config"
	"github.com/jonathan/interview-screener/internal/db"
)

var interviewCommand = &cobra.Command{
	Use:   "interview",
	Short: "Conduct a single voice interview from the terminal",
	Long:  "Initializes the speech subsystem, runs the full interview script against the given candidate and job, and prints the structured result as JSON.",
	RunE:  runInterviewCmd,
}

var (
	interviewCandidateID string
	interviewJobID       string
)

func init() {
	interviewCommand.Flags().StringVar(&interviewCandidateID, "candidate-id", "", "Candidate UUID (required)")
	interviewCommand.Flags().StringVar(&interviewJobID, "job-id", "", "Job UUID (required)")
	_ = interviewCommand.MarkFlagRequired("candidate-id")
	_ = interviewCommand.MarkFlagRequired("job-id")

	rootCmd.AddCommand(interviewCommand)
}

func runInterviewCmd(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	candidateID, err := uuid.Parse(interviewCandidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate id: %w", err)
	}
	jobID, err := uuid.Parse(interviewJobID)
	if err != nil {
		return fmt.Errorf("invalid job id: %w", err)
	}

	log, err := newLoggerFromConfig(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	manager := buildManager(cfg, log)
	defer manager.Cleanup()

	if err := manager.Initialize(ctx); err != nil {
		return err
	}
	sub, err := manager.Agent()
	if err != nil {
		return err
	}

	iv := agent.NewInterviewer(sub, db.NewInterviewLookup(database), db.NewInterviewSink(database), log)
	result, err := iv.Conduct(ctx, candidateID, jobID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
