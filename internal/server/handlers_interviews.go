package server

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InterviewRequest represents the request body for starting an interview
type InterviewRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,uuid4"`
	JobID       string `json:"job_id" validate:"required,uuid4"`
}

// CallRequest represents the request body for placing an outbound call
type CallRequest struct {
	To       string `json:"to" validate:"required,e164"`
	TwimlURL string `json:"twiml_url" validate:"required,url"`
}

// handleStartInterview runs a voice interview for a candidate/job pair and
// returns the structured result once the call has finished. The subsystem
// must be ready before any database work happens; the server's long write
// timeout covers the interview duration.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req InterviewRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	sub, err := s.manager.Agent()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	candidateID, _ := uuid.Parse(req.CandidateID)
	jobID, _ := uuid.Parse(req.JobID)

	s.log.Info("starting interview",
		zap.String("candidate_id", req.CandidateID),
		zap.String("job_id", req.JobID))

	result, err := s.runInterview(r.Context(), sub, candidateID, jobID)
	if err != nil {
		s.log.Error("interview failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetInterviewResult retrieves a stored interview result by ID
func (s *Server) handleGetInterviewResult(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	result, err := s.db.GetInterviewResultByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "Interview result not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleCreateCall places an outbound phone call through the telephony client
func (s *Server) handleCreateCall(w http.ResponseWriter, r *http.Request) {
	if s.calls == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Telephony is not configured")
		return
	}

	var req CallRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	sid, err := s.calls.Call(req.To, req.TwimlURL)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Call failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"call_sid": sid, "status": "queued"})
}
