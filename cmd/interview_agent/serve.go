package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/interview-screener/internal/calendar"
	"github.com/jonathan/interview-screener/internal/config"
	"github.com/jonathan/interview-screener/internal/db"
	"github.com/jonathan/interview-screener/internal/server"
	"github.com/jonathan/interview-screener/internal/telephony"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the interview screener HTTP API server",
	Long:  "Starts the REST API for candidates, jobs, appointments, and voice interviews. The speech subsystem initializes in the background; voice endpoints return 503 until it is ready.",
	RunE:  runServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
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

	manager := buildManager(cfg, log)
	// Warm up in the background so the HTTP API is reachable immediately.
	go func() {
		if err := manager.Initialize(ctx); err != nil {
			log.Error("speech subsystem initialization aborted", zap.Error(err))
		}
	}()

	deps := server.Dependencies{
		DB:      database,
		Manager: manager,
		Log:     log,
	}

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		deps.Calls = telephony.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	} else {
		log.Info("telephony disabled: Twilio credentials not set")
	}

	if cfg.GoogleCredentials != "" && cfg.GoogleCalendarID != "" {
		creds, err := os.ReadFile(cfg.GoogleCredentials)
		if err != nil {
			return fmt.Errorf("failed to read calendar credentials: %w", err)
		}
		cal, err := calendar.NewService(ctx, creds, cfg.GoogleCalendarID)
		if err != nil {
			return err
		}
		deps.Calendar = cal
	} else {
		log.Info("calendar disabled: Google credentials not set")
	}

	return server.New(server.Config{Port: cfg.Port}, deps).Start()
}
