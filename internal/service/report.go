package service

import (
	"context"

	"github.com/campuslabs/event-registry/internal/model"
)

// DefaultTopStudents is the limit applied when the caller does not ask for
// a specific number of top students.
const DefaultTopStudents = 3

// RegistrationReport returns the registration total for an event.
func (s *Registry) RegistrationReport(ctx context.Context, eventID int64) (*model.RegistrationReport, error) {
	title, err := s.reports.EventTitle(ctx, eventID)
	if err != nil {
		return nil, err
	}
	count, err := s.reports.RegistrationCount(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &model.RegistrationReport{
		EventID:            eventID,
		EventTitle:         title,
		TotalRegistrations: count,
	}, nil
}

// AttendanceReport returns registered/attended totals and the attendance
// percentage rounded to two decimals, 0 when nobody registered.
func (s *Registry) AttendanceReport(ctx context.Context, eventID int64) (*model.AttendanceReport, error) {
	title, err := s.reports.EventTitle(ctx, eventID)
	if err != nil {
		return nil, err
	}
	registered, attended, err := s.reports.AttendanceCounts(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var percentage float64
	if registered > 0 {
		percentage = round2(float64(attended) / float64(registered) * 100)
	}
	return &model.AttendanceReport{
		EventID:              eventID,
		EventTitle:           title,
		TotalRegistered:      registered,
		TotalAttended:        attended,
		AttendancePercentage: percentage,
	}, nil
}

// FeedbackReport returns the feedback total and mean rating rounded to two
// decimals, 0 when no feedback exists.
func (s *Registry) FeedbackReport(ctx context.Context, eventID int64) (*model.FeedbackReport, error) {
	title, err := s.reports.EventTitle(ctx, eventID)
	if err != nil {
		return nil, err
	}
	count, mean, err := s.reports.FeedbackStats(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &model.FeedbackReport{
		EventID:       eventID,
		EventTitle:    title,
		TotalFeedback: count,
		AverageRating: round2(mean),
	}, nil
}

// PopularityReport returns all events ranked by registration count.
func (s *Registry) PopularityReport(ctx context.Context, eventType string) ([]model.PopularityEntry, error) {
	return s.reports.Popularity(ctx, eventType)
}

// ParticipationReport returns a student's registration/attendance totals and
// attendance rate rounded to two decimals, 0 when nothing was registered.
func (s *Registry) ParticipationReport(ctx context.Context, studentID int64) (*model.ParticipationReport, error) {
	name, registered, attended, err := s.reports.Participation(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var rate float64
	if registered > 0 {
		rate = round2(float64(attended) / float64(registered) * 100)
	}
	return &model.ParticipationReport{
		StudentID:        studentID,
		StudentName:      name,
		EventsRegistered: registered,
		EventsAttended:   attended,
		AttendanceRate:   rate,
	}, nil
}

// TopStudentsReport returns at most limit students ranked by attendance
// count. Limit falls back to DefaultTopStudents when not positive.
func (s *Registry) TopStudentsReport(ctx context.Context, limit int) ([]model.TopStudent, error) {
	if limit <= 0 {
		limit = DefaultTopStudents
	}
	return s.reports.TopStudents(ctx, limit)
}
