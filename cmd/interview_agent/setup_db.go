package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-screener/internal/config"
	"github.com/jonathan/interview-screener/internal/db"
)

var setupDBCommand = &cobra.Command{
	Use:   "setup-db",
	Short: "Create the database schema",
	Long:  "Applies the candidates, jobs, appointments, and interview_results schema to the configured database. Safe to run repeatedly.",
	RunE:  runSetupDBCmd,
}

func init() {
	rootCmd.AddCommand(setupDBCommand)
}

func runSetupDBCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.SetupSchema(ctx); err != nil {
		return err
	}

	cmd.Println("Database schema created")
	return nil
}
