// Package calendar creates and maintains interview events on a Google
// Calendar.
package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// interviewDuration is the fixed length of a scheduled interview slot.
const interviewDuration = time.Hour

// Service wraps the Google Calendar API for one target calendar.
type Service struct {
	svc        *gcal.Service
	calendarID string
}

// NewService builds a calendar client from service account credentials.
func NewService(ctx context.Context, credentialsJSON []byte, calendarID string) (*Service, error) {
	svc, err := gcal.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Service{svc: svc, calendarID: calendarID}, nil
}

// CreateInterviewEvent inserts a one hour event and returns its ID.
func (s *Service) CreateInterviewEvent(ctx context.Context, summary, description string, start time.Time) (string, error) {
	event := &gcal.Event{
		Summary:     summary,
		Description: description,
		Start: &gcal.EventDateTime{
			DateTime: start.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: start.Add(interviewDuration).UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}

	created, err := s.svc.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}

// RescheduleEvent moves an existing event to a new start time.
func (s *Service) RescheduleEvent(ctx context.Context, eventID string, start time.Time) error {
	event, err := s.svc.Events.Get(s.calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get calendar event: %w", err)
	}

	event.Start = &gcal.EventDateTime{
		DateTime: start.UTC().Format(time.RFC3339),
		TimeZone: "UTC",
	}
	event.End = &gcal.EventDateTime{
		DateTime: start.Add(interviewDuration).UTC().Format(time.RFC3339),
		TimeZone: "UTC",
	}

	if _, err := s.svc.Events.Update(s.calendarID, eventID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to update calendar event: %w", err)
	}
	return nil
}

// CancelEvent deletes an event from the calendar.
func (s *Service) CancelEvent(ctx context.Context, eventID string) error {
	if err := s.svc.Events.Delete(s.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}
