package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateAppointment schedules a candidate for a job interview slot
func (db *DB) CreateAppointment(ctx context.Context, candidateID, jobID uuid.UUID, scheduledAt time.Time) (*Appointment, error) {
	var a Appointment
	err := db.pool.QueryRow(ctx,
		`INSERT INTO appointments (candidate_id, job_id, scheduled_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, candidate_id, job_id, scheduled_at, calendar_event_id, status, created_at, updated_at`,
		candidateID, jobID, scheduledAt,
	).Scan(&a.ID, &a.CandidateID, &a.JobID, &a.ScheduledAt, &a.CalendarEventID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &a, nil
}

// GetAppointmentByID retrieves an appointment by its UUID
func (db *DB) GetAppointmentByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	var a Appointment
	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, job_id, scheduled_at, calendar_event_id, status, created_at, updated_at
		 FROM appointments WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.CandidateID, &a.JobID, &a.ScheduledAt, &a.CalendarEventID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &a, nil
}

// ListAppointmentsByCandidate retrieves a candidate's appointments, newest first
func (db *DB) ListAppointmentsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Appointment, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, job_id, scheduled_at, calendar_event_id, status, created_at, updated_at
		 FROM appointments WHERE candidate_id = $1 ORDER BY scheduled_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.CandidateID, &a.JobID, &a.ScheduledAt, &a.CalendarEventID, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

// SetAppointmentCalendarEvent records the calendar event created for an appointment
func (db *DB) SetAppointmentCalendarEvent(ctx context.Context, id uuid.UUID, eventID string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE appointments SET calendar_event_id = $1, updated_at = NOW() WHERE id = $2`,
		eventID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set calendar event: %w", err)
	}
	return nil
}

// UpdateAppointmentStatus transitions an appointment's status
func (db *DB) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status string) (*Appointment, error) {
	var a Appointment
	err := db.pool.QueryRow(ctx,
		`UPDATE appointments SET status = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING id, candidate_id, job_id, scheduled_at, calendar_event_id, status, created_at, updated_at`,
		status, id,
	).Scan(&a.ID, &a.CandidateID, &a.JobID, &a.ScheduledAt, &a.CalendarEventID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return &a, nil
}

// DeleteAppointment removes an appointment
func (db *DB) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment not found: %s", id)
	}
	return nil
}
