package agent

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/interview-screener/internal/nlp"
)

func testOptions() ManagerOptions {
	return ManagerOptions{MaxAttempts: 3, RetryDelay: time.Millisecond}
}

func TestInitializeSuccess(t *testing.T) {
	init := func(ctx context.Context) (*Subsystem, error) {
		return &Subsystem{Classifier: nlp.NewClassifier()}, nil
	}
	m := NewManager(init, nil, testOptions(), zap.NewNop())

	require.NoError(t, m.Initialize(context.Background()))
	assert.Equal(t, StateReady, m.State())

	sub, err := m.Agent()
	require.NoError(t, err)
	assert.NotNil(t, sub.Classifier)
}

func TestInitializeRetriesThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	init := func(ctx context.Context) (*Subsystem, error) {
		if attempts.Add(1) < 3 {
			return nil, errors.New("transcriber connection refused")
		}
		return &Subsystem{}, nil
	}
	m := NewManager(init, nil, testOptions(), zap.NewNop())

	require.NoError(t, m.Initialize(context.Background()))
	assert.Equal(t, StateReady, m.State())
	assert.Equal(t, int32(3), attempts.Load())
}

func TestInitializeExhaustionDoesNotError(t *testing.T) {
	var attempts atomic.Int32
	init := func(ctx context.Context) (*Subsystem, error) {
		attempts.Add(1)
		return nil, errors.New("transcriber connection refused")
	}
	m := NewManager(init, nil, testOptions(), zap.NewNop())

	// Exhausting all attempts degrades the service rather than failing it.
	require.NoError(t, m.Initialize(context.Background()))
	assert.Equal(t, StateUnavailable, m.State())
	assert.Equal(t, int32(3), attempts.Load())

	sub, err := m.Agent()
	assert.Nil(t, sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
	assert.Contains(t, err.Error(), "attempt 3")

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, StateUnavailable, unavailable.State)
}

func TestInitializeConcurrentCallersCollapse(t *testing.T) {
	var attempts atomic.Int32
	init := func(ctx context.Context) (*Subsystem, error) {
		attempts.Add(1)
		time.Sleep(time.Millisecond)
		return nil, errors.New("transcriber connection refused")
	}
	m := NewManager(init, nil, testOptions(), zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.Initialize(context.Background()))
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, attempts.Load(), int32(3))
	assert.Equal(t, StateUnavailable, m.State())
}

func TestInitializeAfterUnavailableIsNoOp(t *testing.T) {
	var attempts atomic.Int32
	init := func(ctx context.Context) (*Subsystem, error) {
		attempts.Add(1)
		return nil, errors.New("transcriber connection refused")
	}
	m := NewManager(init, nil, testOptions(), zap.NewNop())

	require.NoError(t, m.Initialize(context.Background()))
	require.NoError(t, m.Initialize(context.Background()))

	assert.Equal(t, int32(3), attempts.Load())
}

func TestInitializePreflightFailureSkipsAttempts(t *testing.T) {
	var attempts atomic.Int32
	init := func(ctx context.Context) (*Subsystem, error) {
		attempts.Add(1)
		return &Subsystem{}, nil
	}
	preflight := func() error {
		return &ConfigurationError{Resource: "sox", Detail: "binary not found on PATH"}
	}
	m := NewManager(init, preflight, testOptions(), zap.NewNop())

	require.NoError(t, m.Initialize(context.Background()))
	assert.Equal(t, StateUnavailable, m.State())
	assert.Zero(t, attempts.Load())

	_, err := m.Agent()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sox")
}

func TestCleanupResetsManager(t *testing.T) {
	var attempts atomic.Int32
	init := func(ctx context.Context) (*Subsystem, error) {
		attempts.Add(1)
		return &Subsystem{}, nil
	}
	m := NewManager(init, nil, testOptions(), zap.NewNop())

	require.NoError(t, m.Initialize(context.Background()))
	require.Equal(t, StateReady, m.State())

	m.Cleanup()
	assert.Equal(t, StateUninitialized, m.State())
	_, err := m.Agent()
	assert.Error(t, err)

	require.NoError(t, m.Initialize(context.Background()))
	assert.Equal(t, StateReady, m.State())
	assert.Equal(t, int32(2), attempts.Load())
}
