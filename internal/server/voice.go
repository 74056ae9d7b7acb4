package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/interview-screener/internal/agent"
	"github.com/jonathan/interview-screener/internal/db"
)

// conductInterview is the production interview runner: a fresh dialogue engine
// over the shared subsystem, persisting through the database.
func (s *Server) conductInterview(ctx context.Context, sub *agent.Subsystem, candidateID, jobID uuid.UUID) (*agent.InterviewResult, error) {
	iv := agent.NewInterviewer(sub, db.NewInterviewLookup(s.db), db.NewInterviewSink(s.db), s.log)
	return iv.Conduct(ctx, candidateID, jobID)
}
