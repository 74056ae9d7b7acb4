package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/interview-screener/internal/agent"
)

// newTestServer builds a server with no database. Handlers that validate
// before touching the database can be exercised directly; a ready subsystem
// can be faked through readyManager.
func newTestServer(t *testing.T, manager *agent.Manager) *Server {
	t.Helper()
	if manager == nil {
		manager = agent.NewManager(nil, nil, agent.ManagerOptions{}, zap.NewNop())
	}
	return New(Config{Port: 0}, Dependencies{Manager: manager, Log: zap.NewNop()})
}

func readyManager(t *testing.T) *agent.Manager {
	t.Helper()
	init := func(ctx context.Context) (*agent.Subsystem, error) {
		return &agent.Subsystem{}, nil
	}
	m := agent.NewManager(init, nil, agent.ManagerOptions{MaxAttempts: 1, RetryDelay: time.Millisecond}, zap.NewNop())
	require.NoError(t, m.Initialize(context.Background()))
	return m
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestVoiceStateEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodGet, "/voice/state", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "uninitialized", resp["state"])
}

func TestCreateCandidateValidation(t *testing.T) {
	s := newTestServer(t, nil)

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing phone", `{"name": "Priya Sharma"}`},
		{"phone not e164", `{"name": "Priya Sharma", "phone": "12345"}`},
		{"bad email", `{"name": "Priya Sharma", "phone": "+919876543210", "email": "not-an-email"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(s, http.MethodPost, "/candidates", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetCandidateInvalidID(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodGet, "/candidates/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateJobValidation(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodPost, "/jobs", `{"description": "no title"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointmentValidation(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodPost, "/appointments", `{"candidate_id": "nope", "job_id": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartInterviewValidation(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodPost, "/interviews", `{"candidate_id": "nope", "job_id": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartInterviewSubsystemNotReady(t *testing.T) {
	s := newTestServer(t, nil)

	body := `{"candidate_id": "` + uuid.New().String() + `", "job_id": "` + uuid.New().String() + `"}`
	w := doRequest(s, http.MethodPost, "/interviews", body)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not available")
}

func TestStartInterviewReturnsResult(t *testing.T) {
	s := newTestServer(t, readyManager(t))

	s.runInterview = func(ctx context.Context, sub *agent.Subsystem, candidateID, jobID uuid.UUID) (*agent.InterviewResult, error) {
		days := 25
		interested := true
		return &agent.InterviewResult{
			CandidateID:      candidateID,
			JobID:            jobID,
			CandidateName:    "Priya Sharma",
			Interested:       &interested,
			NoticePeriodDays: &days,
		}, nil
	}

	candidateID := uuid.New()
	body := `{"candidate_id": "` + candidateID.String() + `", "job_id": "` + uuid.New().String() + `"}`
	w := doRequest(s, http.MethodPost, "/interviews", body)

	require.Equal(t, http.StatusOK, w.Code)

	var result agent.InterviewResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, candidateID, result.CandidateID)
	assert.Equal(t, "Priya Sharma", result.CandidateName)
	require.NotNil(t, result.Interested)
	assert.True(t, *result.Interested)
	require.NotNil(t, result.NoticePeriodDays)
	assert.Equal(t, 25, *result.NoticePeriodDays)
}

func TestStartInterviewUnknownCandidate(t *testing.T) {
	s := newTestServer(t, readyManager(t))

	s.runInterview = func(ctx context.Context, sub *agent.Subsystem, candidateID, jobID uuid.UUID) (*agent.InterviewResult, error) {
		return nil, &agent.NotFoundError{Kind: "candidate", ID: candidateID.String()}
	}

	body := `{"candidate_id": "` + uuid.New().String() + `", "job_id": "` + uuid.New().String() + `"}`
	w := doRequest(s, http.MethodPost, "/interviews", body)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "candidate not found")
}

func TestStartReturnsListenError(t *testing.T) {
	manager := agent.NewManager(nil, nil, agent.ManagerOptions{}, zap.NewNop())
	s := New(Config{Port: -1}, Dependencies{Manager: manager, Log: zap.NewNop()})

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after listener failure")
	}
}

func TestCreateCallWithoutTelephony(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodPost, "/calls", `{"to": "+919876543210", "twiml_url": "https://example.com/twiml"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
