// Package agent implements the voice interview agent: the lifecycle manager
// guarding the shared speech subsystem, the dialogue engine that runs the
// interview turn sequence, and the FAQ responder for off-script questions.
package agent

import "fmt"

// ConfigurationError indicates a required external resource (capture binary,
// API credential, model asset) is missing. It is fatal at startup and never
// retried.
type ConfigurationError struct {
	Resource string
	Detail   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required resource %s: %s", e.Resource, e.Detail)
}

// InitializationError wraps a transient failure of one startup attempt.
type InitializationError struct {
	Attempt int
	Err     error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("speech subsystem initialization attempt %d failed: %v", e.Attempt, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// RecognitionError wraps a synthesis, capture, or transcription failure during
// an interview turn. It aborts the remaining turns.
type RecognitionError struct {
	Stage string // "synthesis", "capture", or "transcription"
	Err   error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *RecognitionError) Unwrap() error { return e.Err }

// UnavailableError is returned by Manager.Agent while the speech subsystem is
// not in the Ready state.
type UnavailableError struct {
	State LifecycleState
	Cause error
}

func (e *UnavailableError) Error() string {
	msg := fmt.Sprintf("voice features are not available (subsystem %s)", e.State)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *UnavailableError) Unwrap() error { return e.Cause }

// NotFoundError indicates the candidate or job record does not exist. The
// interview aborts before the first prompt.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
