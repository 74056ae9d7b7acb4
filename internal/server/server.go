// Package server provides the HTTP REST API for the interview screener.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/interview-screener/internal/agent"
	"github.com/jonathan/interview-screener/internal/calendar"
	"github.com/jonathan/interview-screener/internal/db"
	"github.com/jonathan/interview-screener/internal/telephony"
)

// InterviewRunner executes one interview against a ready speech subsystem.
type InterviewRunner func(ctx context.Context, sub *agent.Subsystem, candidateID, jobID uuid.UUID) (*agent.InterviewResult, error)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	manager    *agent.Manager
	calls      *telephony.Client
	calendar   *calendar.Service
	validate   *validator.Validate
	log        *zap.Logger

	runInterview InterviewRunner
}

// Config holds server configuration
type Config struct {
	Port int
}

// Dependencies are the collaborators the server routes requests to. Calls and
// Calendar may be nil when the corresponding credentials are not configured.
type Dependencies struct {
	DB       *db.DB
	Manager  *agent.Manager
	Calls    *telephony.Client
	Calendar *calendar.Service
	Log      *zap.Logger
}

// New creates a new server instance
func New(cfg Config, deps Dependencies) *Server {
	s := &Server{
		db:       deps.DB,
		manager:  deps.Manager,
		calls:    deps.Calls,
		calendar: deps.Calendar,
		validate: validator.New(),
		log:      deps.Log,
	}
	s.runInterview = s.conductInterview

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /voice/state", s.handleVoiceState)

	// Candidate endpoints
	mux.HandleFunc("POST /candidates", s.handleCreateCandidate)
	mux.HandleFunc("GET /candidates", s.handleListCandidates)
	mux.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	mux.HandleFunc("PUT /candidates/{id}", s.handleUpdateCandidate)
	mux.HandleFunc("DELETE /candidates/{id}", s.handleDeleteCandidate)
	mux.HandleFunc("GET /candidates/{id}/appointments", s.handleListCandidateAppointments)
	mux.HandleFunc("GET /candidates/{id}/results", s.handleListCandidateResults)

	// Job endpoints
	mux.HandleFunc("POST /jobs", s.handleCreateJob)
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("PUT /jobs/{id}", s.handleUpdateJob)
	mux.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)

	// Appointment endpoints
	mux.HandleFunc("POST /appointments", s.handleCreateAppointment)
	mux.HandleFunc("GET /appointments/{id}", s.handleGetAppointment)
	mux.HandleFunc("PUT /appointments/{id}/status", s.handleUpdateAppointmentStatus)
	mux.HandleFunc("DELETE /appointments/{id}", s.handleDeleteAppointment)

	// Interview endpoints
	mux.HandleFunc("POST /interviews", s.handleStartInterview)
	mux.HandleFunc("GET /interviews/{id}", s.handleGetInterviewResult)
	mux.HandleFunc("POST /calls", s.handleCreateCall)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Interviews run long
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown. A listener
// failure takes the same cleanup path as a termination signal.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serveErrs := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErrs <- err
		}
	}()

	var serveErr error
	select {
	case <-stop:
		s.log.Info("shutting down server")
	case serveErr = <-serveErrs:
		s.log.Error("server error", zap.Error(serveErr))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	shutdownErr := s.httpServer.Shutdown(ctx)

	s.manager.Cleanup()
	if s.db != nil {
		s.db.Close()
	}
	s.log.Info("server stopped")

	if serveErr != nil {
		return serveErr
	}
	if shutdownErr != nil {
		return fmt.Errorf("server shutdown failed: %w", shutdownErr)
	}
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVoiceState reports the speech subsystem lifecycle state
func (s *Server) handleVoiceState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"state": s.manager.State().String()})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// parseIDParam parses the {id} path segment as a UUID
func (s *Server) parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// decodeValid decodes the request body into dst and runs struct validation
func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}
