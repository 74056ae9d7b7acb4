package agent

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/interview-screener/internal/nlp"
	"github.com/jonathan/interview-screener/internal/speech"
)

// LifecycleState tracks the speech subsystem through its startup sequence.
type LifecycleState int

// Lifecycle states. Unavailable is terminal until Cleanup resets the manager.
const (
	StateUninitialized LifecycleState = iota
	StateInitializing
	StateReady
	StateUnavailable
)

func (s LifecycleState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// Subsystem bundles the trained classifier and the speech collaborators that
// make up one ready-to-use voice agent. The process holds at most one; it is
// assumed exclusive to a single in-flight interview session.
type Subsystem struct {
	Classifier  *nlp.Classifier
	Transcriber speech.Transcriber
	Synthesizer speech.Synthesizer
	Recorder    speech.Recorder
}

// Close releases the recognizer and synthesis resources.
func (s *Subsystem) Close() {
	if s.Transcriber != nil {
		_ = s.Transcriber.Close()
	}
	if s.Synthesizer != nil {
		_ = s.Synthesizer.Close()
	}
}

// InitFunc builds the speech subsystem. Supplied by the speech-I/O wiring so
// tests can substitute fakes.
type InitFunc func(ctx context.Context) (*Subsystem, error)

// PreflightFunc verifies required external resources before any startup
// attempt. Returning an error marks the subsystem unavailable without
// retries.
type PreflightFunc func() error

// ManagerOptions tunes the retry loop.
type ManagerOptions struct {
	MaxAttempts int           // startup attempts before giving up (default 3)
	RetryDelay  time.Duration // base delay, grows linearly per attempt (default 1s)
}

// Manager guards the single shared speech subsystem. Initialize is idempotent
// and collapses concurrent callers onto one attempt sequence; Agent fails fast
// while the subsystem is not ready.
type Manager struct {
	init      InitFunc
	preflight PreflightFunc
	opts      ManagerOptions
	log       *zap.Logger

	mu      sync.Mutex
	state   LifecycleState
	sub     *Subsystem
	lastErr error
	group   *singleflight.Group
}

// NewManager builds a lifecycle manager around the given init routine.
func NewManager(init InitFunc, preflight PreflightFunc, opts ManagerOptions, log *zap.Logger) *Manager {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}
	return &Manager{
		init:      init,
		preflight: preflight,
		opts:      opts,
		log:       log,
		group:     &singleflight.Group{},
	}
}

// Initialize brings the subsystem to Ready. It returns nil even when every
// attempt fails: exhaustion transitions to Unavailable and callers discover
// that through Agent. Concurrent callers share the in-flight outcome; none of
// them trigger additional attempt sequences.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	if m.state == StateReady {
		m.mu.Unlock()
		return nil
	}
	group := m.group
	m.mu.Unlock()

	_, err, _ := group.Do("initialize", func() (any, error) {
		return nil, m.runInitialization(ctx)
	})
	return err
}

func (m *Manager) runInitialization(ctx context.Context) error {
	m.mu.Lock()
	if m.state == StateReady || m.state == StateUnavailable {
		m.mu.Unlock()
		return nil
	}
	m.state = StateInitializing
	m.mu.Unlock()

	if m.preflight != nil {
		if err := m.preflight(); err != nil {
			m.log.Warn("voice features disabled: pre-flight check failed", zap.Error(err))
			m.fail(err)
			return nil
		}
	}

	var lastErr error
	for attempt := 1; attempt <= m.opts.MaxAttempts; attempt++ {
		m.log.Info("initializing speech subsystem",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", m.opts.MaxAttempts))

		sub, err := m.init(ctx)
		if err == nil {
			m.mu.Lock()
			m.sub = sub
			m.state = StateReady
			m.lastErr = nil
			m.mu.Unlock()
			m.log.Info("speech subsystem ready")
			return nil
		}

		lastErr = &InitializationError{Attempt: attempt, Err: err}
		m.log.Error("speech subsystem initialization failed", zap.Error(lastErr))

		if attempt < m.opts.MaxAttempts {
			select {
			case <-time.After(m.opts.RetryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				m.fail(ctx.Err())
				return ctx.Err()
			}
		}
	}

	m.log.Warn("voice features disabled after exhausting initialization attempts",
		zap.Int("attempts", m.opts.MaxAttempts))
	m.fail(lastErr)
	return nil
}

func (m *Manager) fail(err error) {
	m.mu.Lock()
	m.state = StateUnavailable
	m.lastErr = err
	m.mu.Unlock()
}

// Agent returns the ready subsystem, or a descriptive error when the
// lifecycle is not in the Ready state.
func (m *Manager) Agent() (*Subsystem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReady {
		return nil, &UnavailableError{State: m.state, Cause: m.lastErr}
	}
	return m.sub, nil
}

// State reports the current lifecycle state.
func (m *Manager) State() LifecycleState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Cleanup releases held resources and resets all bookkeeping so a later
// Initialize starts fresh.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sub != nil {
		m.sub.Close()
		m.sub = nil
	}
	m.state = StateUninitialized
	m.lastErr = nil
	m.group = &singleflight.Group{}
}
