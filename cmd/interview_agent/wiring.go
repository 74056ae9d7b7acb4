package main

import (
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/jonathan/interview-screener/internal/agent"
	"github.com/jonathan/interview-screener/internal/config"
	"github.com/jonathan/interview-screener/internal/logger"
	"github.com/jonathan/interview-screener/internal/nlp"
	"github.com/jonathan/interview-screener/internal/speech"
)

// buildManager wires the speech subsystem behind a lifecycle manager. The
// pre-flight check verifies the capture binary and API credentials before any
// startup attempt is spent.
func buildManager(cfg *config.Config, log *zap.Logger) *agent.Manager {
	preflight := func() error {
		if _, err := exec.LookPath(cfg.SoxPath); err != nil {
			return &agent.ConfigurationError{Resource: cfg.SoxPath, Detail: "audio binary not found on PATH"}
		}
		if cfg.DeepgramAPIKey == "" {
			return &agent.ConfigurationError{Resource: "DEEPGRAM_API_KEY", Detail: "transcription credential is not set"}
		}
		if cfg.ElevenLabsAPIKey == "" {
			return &agent.ConfigurationError{Resource: "ELEVENLABS_API_KEY", Detail: "synthesis credential is not set"}
		}
		return nil
	}

	init := func(ctx context.Context) (*agent.Subsystem, error) {
		player := speech.NewSoxPlayer(cfg.SoxPath)
		sub := &agent.Subsystem{
			Classifier:  nlp.NewClassifier(),
			Transcriber: speech.NewDeepgramTranscriber(cfg.DeepgramAPIKey, log),
			Synthesizer: speech.NewElevenLabsSynthesizer(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoice, player, log),
			Recorder:    speech.NewSoxRecorder(cfg.SoxPath, cfg.CaptureDevice, cfg.RecordSeconds, log),
		}
		return sub, nil
	}

	return agent.NewManager(init, preflight, agent.ManagerOptions{
		MaxAttempts: cfg.MaxInitAttempts,
		RetryDelay:  cfg.InitRetryDelay,
	}, log)
}

// newLoggerFromConfig builds the process logger from config flags.
func newLoggerFromConfig(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.JSONLog, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}
