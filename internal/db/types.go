package db

import (
	"time"

	"github.com/google/uuid"
)

// Candidate represents a candidate record
type Candidate struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Job represents an open position
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Appointment statuses
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

// Appointment links a candidate to a job at a scheduled time. CalendarEventID
// holds the external calendar event when one was created.
type Appointment struct {
	ID              uuid.UUID `json:"id"`
	CandidateID     uuid.UUID `json:"candidate_id"`
	JobID           uuid.UUID `json:"job_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	CalendarEventID *string   `json:"calendar_event_id,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// InterviewResultRecord is the persisted form of one finished interview.
type InterviewResultRecord struct {
	ID               uuid.UUID  `json:"id"`
	CandidateID      uuid.UUID  `json:"candidate_id"`
	JobID            uuid.UUID  `json:"job_id"`
	Interested       *bool      `json:"interested,omitempty"`
	NoticePeriodDays *int       `json:"notice_period_days,omitempty"`
	CurrentCtcLakhs  *float64   `json:"current_ctc_lakhs,omitempty"`
	ExpectedCtcLakhs *float64   `json:"expected_ctc_lakhs,omitempty"`
	AvailableDate    *time.Time `json:"available_date,omitempty"`
	Confirmed        *bool      `json:"confirmed,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
