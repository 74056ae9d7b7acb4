package speech

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	msginterfaces "github.com/deepgram/deepgram-go-sdk/pkg/api/listen/v1/websocket/interfaces"
	interfaces "github.com/deepgram/deepgram-go-sdk/pkg/client/interfaces"
	listen "github.com/deepgram/deepgram-go-sdk/pkg/client/listen"
	"go.uber.org/zap"
)

// writeChunkSize keeps individual websocket frames small.
const writeChunkSize = 8192

// finalWait bounds how long we wait for the final transcript after the clip
// has been fully written.
const finalWait = 10 * time.Second

// DeepgramTranscriber transcribes fixed clips over the Deepgram live
// websocket API. Each Transcribe call opens a connection, streams the whole
// clip, closes the stream, and collects the final results.
type DeepgramTranscriber struct {
	apiKey string
	log    *zap.Logger
}

// NewDeepgramTranscriber returns a transcriber backed by the Deepgram API.
func NewDeepgramTranscriber(apiKey string, log *zap.Logger) *DeepgramTranscriber {
	return &DeepgramTranscriber{apiKey: apiKey, log: log}
}

// Transcribe sends one PCM clip and returns its transcript. Silence yields an
// empty string with no error.
func (d *DeepgramTranscriber) Transcribe(ctx context.Context, pcm []byte) (string, error) {
	clientOptions := interfaces.ClientOptions{
		APIKey: d.apiKey,
	}
	tOptions := interfaces.LiveTranscriptionOptions{
		Model:       "nova-3",
		Language:    "en-US",
		SmartFormat: true,
		Encoding:    "linear16",
		SampleRate:  SampleRate,
		Channels:    Channels,
	}

	rcv := newDeepgramReceiver(d.log)
	conn, err := listen.NewWebSocketUsingCallback(ctx, "", &clientOptions, &tOptions, rcv)
	if err != nil {
		return "", fmt.Errorf("deepgram connection failed: %w", err)
	}
	if ok := conn.Connect(); !ok {
		return "", fmt.Errorf("deepgram connect was refused")
	}

	for off := 0; off < len(pcm); off += writeChunkSize {
		end := off + writeChunkSize
		if end > len(pcm) {
			end = len(pcm)
		}
		if _, err := conn.Write(pcm[off:end]); err != nil {
			conn.Stop()
			return "", fmt.Errorf("deepgram write failed: %w", err)
		}
	}

	// Close the stream so the server flushes its final results.
	conn.Stop()

	select {
	case <-rcv.done:
	case <-time.After(finalWait):
		d.log.Warn("timed out waiting for final transcript")
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if err := rcv.err(); err != nil {
		return "", fmt.Errorf("deepgram transcription failed: %w", err)
	}
	return rcv.transcript(), nil
}

// Close is a no-op; connections are scoped to a single Transcribe call.
func (d *DeepgramTranscriber) Close() error { return nil }

// deepgramReceiver implements msginterfaces.LiveMessageCallback, collecting
// final transcript segments until the stream closes. Callbacks arrive on the
// SDK's goroutine while the transcriber reads results, so all state is behind
// the mutex.
type deepgramReceiver struct {
	log  *zap.Logger
	done chan struct{}

	mu       sync.Mutex
	segments []string
	firstErr error
}

func newDeepgramReceiver(log *zap.Logger) *deepgramReceiver {
	return &deepgramReceiver{log: log, done: make(chan struct{})}
}

func (r *deepgramReceiver) appendSegment(text string) {
	r.mu.Lock()
	r.segments = append(r.segments, text)
	r.mu.Unlock()
}

func (r *deepgramReceiver) recordErr(err error) {
	r.mu.Lock()
	if r.firstErr == nil {
		r.firstErr = err
	}
	r.mu.Unlock()
}

func (r *deepgramReceiver) transcript() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.TrimSpace(strings.Join(r.segments, " "))
}

func (r *deepgramReceiver) err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.firstErr
}

func (r *deepgramReceiver) Open(_ *msginterfaces.OpenResponse) error {
	r.log.Debug("deepgram stream open")
	return nil
}

func (r *deepgramReceiver) Message(mr *msginterfaces.MessageResponse) error {
	if len(mr.Channel.Alternatives) == 0 {
		return nil
	}
	alt := mr.Channel.Alternatives[0]
	if mr.IsFinal && alt.Transcript != "" {
		r.appendSegment(alt.Transcript)
	}
	return nil
}

func (r *deepgramReceiver) Metadata(_ *msginterfaces.MetadataResponse) error { return nil }

func (r *deepgramReceiver) SpeechStarted(_ *msginterfaces.SpeechStartedResponse) error { return nil }

func (r *deepgramReceiver) UtteranceEnd(_ *msginterfaces.UtteranceEndResponse) error { return nil }

func (r *deepgramReceiver) Close(_ *msginterfaces.CloseResponse) error {
	close(r.done)
	return nil
}

func (r *deepgramReceiver) Error(er *msginterfaces.ErrorResponse) error {
	r.recordErr(fmt.Errorf("%s: %s", er.Type, er.Description))
	r.log.Warn("deepgram stream error", zap.String("type", er.Type), zap.String("description", er.Description))
	return nil
}

func (r *deepgramReceiver) UnhandledEvent(_ []byte) error { return nil }
