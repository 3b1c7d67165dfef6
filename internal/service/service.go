// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/campuslabs/event-registry/internal/model"
)

// ErrValidation marks input the service rejected before touching a store.
// Handlers map it to 400.
var ErrValidation = errors.New("invalid input")

type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }
func (e *validationError) Unwrap() error { return ErrValidation }

// invalidf builds an ErrValidation whose message is exactly the formatted
// text, keeping the wire-visible messages stable.
func invalidf(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

// CollegeStore is the persistence surface the service needs for colleges.
type CollegeStore interface {
	Create(ctx context.Context, name string) (int64, error)
	List(ctx context.Context) ([]model.CollegeSummary, error)
	Delete(ctx context.Context, id int64) error
}

// StudentStore is the persistence surface for students.
type StudentStore interface {
	Create(ctx context.Context, req model.CreateStudentRequest) (int64, error)
	List(ctx context.Context) ([]model.StudentSummary, error)
	Delete(ctx context.Context, id int64) error
}

// EventStore is the persistence surface for events.
type EventStore interface {
	Create(ctx context.Context, e model.NewEvent) (int64, error)
	List(ctx context.Context, f model.EventFilter) ([]model.EventSummary, error)
	Get(ctx context.Context, id int64) (*model.EventDetail, error)
	Update(ctx context.Context, id int64, p model.EventPatch) error
	Cancel(ctx context.Context, id int64) error
}

// RegistrationStore is the persistence surface for registrations.
type RegistrationStore interface {
	Create(ctx context.Context, eventID, studentID int64) (int64, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.Participant, error)
}

// AttendanceStore is the persistence surface for attendance.
type AttendanceStore interface {
	Create(ctx context.Context, eventID, studentID int64) (int64, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.Participant, error)
}

// FeedbackStore is the persistence surface for feedback.
type FeedbackStore interface {
	Create(ctx context.Context, eventID, studentID int64, rating int, comment string) (int64, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.FeedbackEntry, error)
}

// ReportStore is the persistence surface for the aggregate reports.
type ReportStore interface {
	EventTitle(ctx context.Context, eventID int64) (string, error)
	RegistrationCount(ctx context.Context, eventID int64) (int, error)
	AttendanceCounts(ctx context.Context, eventID int64) (registered, attended int, err error)
	FeedbackStats(ctx context.Context, eventID int64) (count int, mean float64, err error)
	Popularity(ctx context.Context, eventType string) ([]model.PopularityEntry, error)
	Participation(ctx context.Context, studentID int64) (name string, registered, attended int, err error)
	TopStudents(ctx context.Context, limit int) ([]model.TopStudent, error)
}

// Registry orchestrates every operation of the event registry.
type Registry struct {
	colleges      CollegeStore
	students      StudentStore
	events        EventStore
	registrations RegistrationStore
	attendance    AttendanceStore
	feedback      FeedbackStore
	reports       ReportStore
}

// NewRegistry constructs a Registry with its dependencies.
func NewRegistry(
	colleges CollegeStore,
	students StudentStore,
	events EventStore,
	registrations RegistrationStore,
	attendance AttendanceStore,
	feedback FeedbackStore,
	reports ReportStore,
) *Registry {
	return &Registry{
		colleges:      colleges,
		students:      students,
		events:        events,
		registrations: registrations,
		attendance:    attendance,
		feedback:      feedback,
		reports:       reports,
	}
}

// round2 rounds to two decimal places, the precision every report uses.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
