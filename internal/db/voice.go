package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-screener/internal/agent"
)

// InterviewLookup resolves candidate and job names for the dialogue engine.
type InterviewLookup struct {
	db *DB
}

// NewInterviewLookup wraps the database as an interview context source
func NewInterviewLookup(db *DB) *InterviewLookup {
	return &InterviewLookup{db: db}
}

// Lookup fetches the candidate and job display names, reporting which record
// is missing when either does not exist.
func (l *InterviewLookup) Lookup(ctx context.Context, candidateID, jobID uuid.UUID) (*agent.InterviewContext, error) {
	candidate, err := l.db.GetCandidateByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, &agent.NotFoundError{Kind: "candidate", ID: candidateID.String()}
	}

	job, err := l.db.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &agent.NotFoundError{Kind: "job", ID: jobID.String()}
	}

	return &agent.InterviewContext{
		CandidateName: candidate.Name,
		JobTitle:      job.Title,
	}, nil
}

// InterviewSink stores finished interviews in the interview_results table.
type InterviewSink struct {
	db *DB
}

// NewInterviewSink wraps the database as an interview result sink
func NewInterviewSink(db *DB) *InterviewSink {
	return &InterviewSink{db: db}
}

// Save converts the engine result to a record and inserts it
func (s *InterviewSink) Save(ctx context.Context, result *agent.InterviewResult) error {
	record := &InterviewResultRecord{
		CandidateID:      result.CandidateID,
		JobID:            result.JobID,
		Interested:       result.Interested,
		NoticePeriodDays: result.NoticePeriodDays,
		CurrentCtcLakhs:  result.CurrentCtcLakhs,
		ExpectedCtcLakhs: result.ExpectedCtcLakhs,
		Confirmed:        result.Confirmed,
	}
	if result.AvailableDate != nil {
		t, err := time.Parse("2006-01-02", *result.AvailableDate)
		if err != nil {
			return fmt.Errorf("invalid available date %q: %w", *result.AvailableDate, err)
		}
		record.AvailableDate = &t
	}

	_, err := s.db.SaveInterviewResult(ctx, record)
	return err
}
