package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/interview-screener/internal/db"
)

// AppointmentRequest represents the request body for scheduling an appointment
type AppointmentRequest struct {
	CandidateID string    `json:"candidate_id" validate:"required,uuid4"`
	JobID       string    `json:"job_id" validate:"required,uuid4"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

// AppointmentStatusRequest represents the request body for a status transition
type AppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled cancelled completed"`
}

// handleCreateAppointment schedules an interview appointment. When a calendar
// client is configured, a matching calendar event is created as well.
func (s *Server) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req AppointmentRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	candidateID, _ := uuid.Parse(req.CandidateID)
	jobID, _ := uuid.Parse(req.JobID)

	candidate, err := s.db.GetCandidateByID(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	job, err := s.db.GetJobByID(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	appointment, err := s.db.CreateAppointment(r.Context(), candidateID, jobID, req.ScheduledAt)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if s.calendar != nil {
		summary := fmt.Sprintf("Interview: %s for %s", candidate.Name, job.Title)
		eventID, err := s.calendar.CreateInterviewEvent(r.Context(), summary, "Screening interview", req.ScheduledAt)
		if err != nil {
			s.log.Error("failed to create calendar event", zap.Error(err))
		} else if err := s.db.SetAppointmentCalendarEvent(r.Context(), appointment.ID, eventID); err != nil {
			s.log.Error("failed to record calendar event", zap.Error(err))
		} else {
			appointment.CalendarEventID = &eventID
		}
	}

	s.jsonResponse(w, http.StatusCreated, appointment)
}

// handleGetAppointment retrieves an appointment by ID
func (s *Server) handleGetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	appointment, err := s.db.GetAppointmentByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if appointment == nil {
		s.errorResponse(w, http.StatusNotFound, "Appointment not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, appointment)
}

// handleUpdateAppointmentStatus transitions an appointment's status. A
// cancellation also removes the linked calendar event.
func (s *Server) handleUpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	var req AppointmentStatusRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	appointment, err := s.db.UpdateAppointmentStatus(r.Context(), id, req.Status)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if appointment == nil {
		s.errorResponse(w, http.StatusNotFound, "Appointment not found")
		return
	}

	if req.Status == db.AppointmentStatusCancelled && s.calendar != nil && appointment.CalendarEventID != nil {
		if err := s.calendar.CancelEvent(r.Context(), *appointment.CalendarEventID); err != nil {
			s.log.Error("failed to cancel calendar event", zap.Error(err))
		}
	}

	s.jsonResponse(w, http.StatusOK, appointment)
}

// handleDeleteAppointment removes an appointment
func (s *Server) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteAppointment(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
