// Package speech provides the speech-I/O collaborators consumed by the
// interview agent: transcription, synthesis with playback, and fixed-window
// audio capture. All audio crossing these interfaces is mono 16 kHz 16-bit
// little-endian PCM.
package speech

import "context"

// Transcriber converts one recorded clip into a transcript. An empty string
// (and nil error) means silence or nothing recognized.
type Transcriber interface {
	Transcribe(ctx context.Context, pcm []byte) (string, error)
	Close() error
}

// Synthesizer speaks an utterance to the candidate. Speak blocks until
// playback completes and returns an error on synthesis or playback failure.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
	Close() error
}

// Recorder captures one fixed-duration clip from the selected capture device.
type Recorder interface {
	Record(ctx context.Context) ([]byte, error)
}

// Player renders raw PCM to the default output device, blocking until done.
type Player interface {
	Play(ctx context.Context, pcm []byte) error
}

// Audio format constants shared by every collaborator.
const (
	SampleRate = 16000
	Channels   = 1
	BitDepth   = 16
)
