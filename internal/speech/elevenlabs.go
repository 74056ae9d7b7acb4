package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ElevenLabsSynthesizer synthesizes speech over the ElevenLabs stream-input
// websocket and plays the resulting PCM through the injected Player. Each
// Speak call uses a fresh connection; the call blocks until playback has
// finished.
type ElevenLabsSynthesizer struct {
	apiKey  string
	voiceID string
	modelID string
	player  Player
	log     *zap.Logger
}

// NewElevenLabsSynthesizer returns a synthesizer for the given voice.
func NewElevenLabsSynthesizer(apiKey, voiceID string, player Player, log *zap.Logger) *ElevenLabsSynthesizer {
	return &ElevenLabsSynthesizer{
		apiKey:  apiKey,
		voiceID: voiceID,
		modelID: "eleven_flash_v2_5",
		player:  player,
		log:     log,
	}
}

type elevenLabsFrame struct {
	Text          string         `json:"text"`
	VoiceSettings *voiceSettings `json:"voice_settings,omitempty"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsAudio struct {
	Audio   string `json:"audio"`
	IsFinal bool   `json:"isFinal"`
}

// Speak synthesizes text and plays it back, returning once the audio has
// finished rendering to the output device.
func (e *ElevenLabsSynthesizer) Speak(ctx context.Context, text string) error {
	url := fmt.Sprintf(
		"wss://api.elevenlabs.io/v1/text-to-speech/%s/stream-input?model_id=%s&output_format=pcm_16000",
		e.voiceID, e.modelID,
	)
	header := http.Header{}
	header.Set("xi-api-key", e.apiKey)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		return fmt.Errorf("elevenlabs connect failed: %w", err)
	}
	defer conn.Close()

	frames := []elevenLabsFrame{
		{Text: " ", VoiceSettings: &voiceSettings{Stability: 0.5, SimilarityBoost: 0.8}},
		{Text: text + " "},
		{Text: ""}, // empty text flushes and ends the stream
	}
	for _, f := range frames {
		if err := conn.WriteJSON(f); err != nil {
			return fmt.Errorf("elevenlabs send failed: %w", err)
		}
	}

	var pcm []byte
	for {
		var msg elevenLabsAudio
		if err := conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("elevenlabs read failed: %w", err)
		}
		if msg.Audio != "" {
			chunk, err := base64.StdEncoding.DecodeString(msg.Audio)
			if err != nil {
				return fmt.Errorf("elevenlabs audio decode failed: %w", err)
			}
			pcm = append(pcm, chunk...)
		}
		if msg.IsFinal {
			break
		}
	}

	if len(pcm) == 0 {
		e.log.Warn("elevenlabs returned no audio", zap.Int("text_len", len(text)))
		return nil
	}
	if err := e.player.Play(ctx, pcm); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

// Close is a no-op; connections are scoped to a single Speak call.
func (e *ElevenLabsSynthesizer) Close() error { return nil }
