// Package config provides environment-backed configuration for the server and
// CLI commands. Values come from the process environment, optionally seeded
// from a .env file loaded at the command root.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every tunable the application reads from the environment.
type Config struct {
	Port        int
	DatabaseURL string

	// Speech subsystem
	DeepgramAPIKey   string
	ElevenLabsAPIKey string
	ElevenLabsVoice  string
	SoxPath          string
	CaptureDevice    string
	RecordSeconds    int

	// Lifecycle retries
	MaxInitAttempts int
	InitRetryDelay  time.Duration

	// External collaborators
	GoogleCalendarID  string
	GoogleCredentials string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromNumber  string

	// Logging
	Debug   bool
	JSONLog bool
}

// Load reads the configuration from the environment, applying defaults for
// anything unset. It never fails; required values are checked by Validate so
// commands that do not need them (setup-db, version) can still run.
func Load() *Config {
	return &Config{
		Port:              getEnvInt("PORT", 8080),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DeepgramAPIKey:    getEnv("DEEPGRAM_API_KEY", ""),
		ElevenLabsAPIKey:  getEnv("ELEVENLABS_API_KEY", ""),
		ElevenLabsVoice:   getEnv("ELEVENLABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
		SoxPath:           getEnv("SOX_PATH", "sox"),
		CaptureDevice:     getEnv("CAPTURE_DEVICE", ""),
		RecordSeconds:     getEnvInt("RECORD_SECONDS", 5),
		MaxInitAttempts:   getEnvInt("MAX_INIT_ATTEMPTS", 3),
		InitRetryDelay:    time.Duration(getEnvInt("INIT_RETRY_DELAY_MS", 1000)) * time.Millisecond,
		GoogleCalendarID:  getEnv("GOOGLE_CALENDAR_ID", ""),
		GoogleCredentials: getEnv("GOOGLE_CREDENTIALS", ""),
		TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber:  getEnv("TWILIO_FROM_NUMBER", ""),
		Debug:             getEnv("DEBUG", "false") == "true",
		JSONLog:           getEnv("LOG_JSON", "false") == "true",
	}
}

// Validate checks the values required to run the API server.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RecordSeconds <= 0 {
		return fmt.Errorf("RECORD_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
