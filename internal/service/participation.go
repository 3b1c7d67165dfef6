package service

import (
	"context"

	"github.com/campuslabs/event-registry/internal/model"
)

func validPair(eventID, studentID int64) error {
	if eventID <= 0 {
		return invalidf("event_id is required")
	}
	if studentID <= 0 {
		return invalidf("student_id is required")
	}
	return nil
}

// Register creates a registration, the first stage of the chain. Duplicate
// pairs surface as repository.ErrDuplicate.
func (s *Registry) Register(ctx context.Context, eventID, studentID int64) (int64, error) {
	if err := validPair(eventID, studentID); err != nil {
		return 0, err
	}
	return s.registrations.Create(ctx, eventID, studentID)
}

// ListRegistrations returns the students registered for an event.
func (s *Registry) ListRegistrations(ctx context.Context, eventID int64) ([]model.Participant, error) {
	return s.registrations.ListByEvent(ctx, eventID)
}

// MarkAttendance records attendance. A missing registration surfaces as
// repository.ErrNotRegistered, a duplicate as repository.ErrDuplicate.
func (s *Registry) MarkAttendance(ctx context.Context, eventID, studentID int64) (int64, error) {
	if err := validPair(eventID, studentID); err != nil {
		return 0, err
	}
	return s.attendance.Create(ctx, eventID, studentID)
}

// ListAttendance returns the students who attended an event.
func (s *Registry) ListAttendance(ctx context.Context, eventID int64) ([]model.Participant, error) {
	return s.attendance.ListByEvent(ctx, eventID)
}

// SubmitFeedback records feedback after validating the rating range.
// Missing attendance surfaces as repository.ErrNotAttended.
func (s *Registry) SubmitFeedback(ctx context.Context, req model.FeedbackRequest) (int64, error) {
	if err := validPair(req.EventID, req.StudentID); err != nil {
		return 0, err
	}
	if req.Rating < 1 || req.Rating > 5 {
		return 0, invalidf("rating must be between 1 and 5")
	}
	return s.feedback.Create(ctx, req.EventID, req.StudentID, req.Rating, req.Comment)
}

// ListFeedback returns an event's feedback entries along with their count
// and mean rating rounded to two decimals. The mean is the literal sentinel
// 0 when no feedback exists.
func (s *Registry) ListFeedback(ctx context.Context, eventID int64) ([]model.FeedbackEntry, int, float64, error) {
	entries, err := s.feedback.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, 0, 0, err
	}
	if len(entries) == 0 {
		return entries, 0, 0, nil
	}

	total := 0
	for _, e := range entries {
		total += e.Rating
	}
	mean := round2(float64(total) / float64(len(entries)))
	return entries, len(entries), mean, nil
}
