package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveInterviewResult stores a finished interview outcome
func (db *DB) SaveInterviewResult(ctx context.Context, r *InterviewResultRecord) (*InterviewResultRecord, error) {
	var saved InterviewResultRecord
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interview_results
		     (candidate_id, job_id, interested, notice_period_days, current_ctc_lakhs,
		      expected_ctc_lakhs, available_date, confirmed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, candidate_id, job_id, interested, notice_period_days, current_ctc_lakhs,
		           expected_ctc_lakhs, available_date, confirmed, created_at`,
		r.CandidateID, r.JobID, r.Interested, r.NoticePeriodDays, r.CurrentCtcLakhs,
		r.ExpectedCtcLakhs, r.AvailableDate, r.Confirmed,
	).Scan(&saved.ID, &saved.CandidateID, &saved.JobID, &saved.Interested, &saved.NoticePeriodDays,
		&saved.CurrentCtcLakhs, &saved.ExpectedCtcLakhs, &saved.AvailableDate, &saved.Confirmed, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save interview result: %w", err)
	}
	return &saved, nil
}

// GetInterviewResultByID retrieves one interview result
func (db *DB) GetInterviewResultByID(ctx context.Context, id uuid.UUID) (*InterviewResultRecord, error) {
	var r InterviewResultRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, job_id, interested, notice_period_days, current_ctc_lakhs,
		        expected_ctc_lakhs, available_date, confirmed, created_at
		 FROM interview_results WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.CandidateID, &r.JobID, &r.Interested, &r.NoticePeriodDays,
		&r.CurrentCtcLakhs, &r.ExpectedCtcLakhs, &r.AvailableDate, &r.Confirmed, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview result: %w", err)
	}
	return &r, nil
}

// ListInterviewResultsByCandidate retrieves a candidate's results, newest first
func (db *DB) ListInterviewResultsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]InterviewResultRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, job_id, interested, notice_period_days, current_ctc_lakhs,
		        expected_ctc_lakhs, available_date, confirmed, created_at
		 FROM interview_results WHERE candidate_id = $1 ORDER BY created_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interview results: %w", err)
	}
	defer rows.Close()

	var results []InterviewResultRecord
	for rows.Next() {
		var r InterviewResultRecord
		if err := rows.Scan(&r.ID, &r.CandidateID, &r.JobID, &r.Interested, &r.NoticePeriodDays,
			&r.CurrentCtcLakhs, &r.ExpectedCtcLakhs, &r.AvailableDate, &r.Confirmed, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interview result: %w", err)
		}
		results = append(results, r)
	}
	return results, nil
}
