// Package model defines the core domain types for the campus event registry.
package model

// Event status values. Cancelled is absorbing: the API exposes no path back
// to Active once an event has been cancelled.
const (
	StatusActive    = "Active"
	StatusCancelled = "Cancelled"
)

// CollegeSummary is a college row as returned by the admin listing.
type CollegeSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// StudentSummary is a student row as returned by the admin listing.
type StudentSummary struct {
	ID        int64  `json:"id"`
	CollegeID int64  `json:"college_id"`
	Name      string `json:"name"`
	SRN       string `json:"srn"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// EventSummary is an event row joined with its parent college name.
type EventSummary struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Date        Date        `json:"date"`
	Time        Clock       `json:"time"`
	Venue       string      `json:"venue"`
	Status      string      `json:"status"`
	Resources   ResourceDoc `json:"resources"`
	CollegeName string      `json:"college_name"`
}

// EventDetail is an EventSummary plus live child-row counts.
type EventDetail struct {
	EventSummary
	RegistrationsCount int `json:"registrations_count"`
	AttendanceCount    int `json:"attendance_count"`
}

// Participant is a student joined through a registration or attendance row.
// Exactly one of RegisteredAt/AttendedAt is set depending on the listing.
type Participant struct {
	StudentID    int64  `json:"student_id"`
	Name         string `json:"name"`
	SRN          string `json:"srn"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at,omitempty"`
	AttendedAt   string `json:"attended_at,omitempty"`
}

// FeedbackEntry is one feedback row joined with the student's name.
type FeedbackEntry struct {
	StudentName string `json:"student_name"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	CreatedAt   string `json:"created_at"`
}

// PopularityEntry is an event annotated with its registration count.
type PopularityEntry struct {
	EventID           int64  `json:"event_id"`
	Title             string `json:"title"`
	Type              string `json:"type"`
	Date              Date   `json:"date"`
	RegistrationCount int    `json:"registration_count"`
	CollegeName       string `json:"college_name"`
}

// TopStudent is a student ranked by attendance count.
type TopStudent struct {
	StudentID      int64  `json:"student_id"`
	Name           string `json:"name"`
	SRN            string `json:"srn"`
	CollegeName    string `json:"college_name"`
	EventsAttended int    `json:"events_attended"`
}

// NewEvent carries the validated fields of an event about to be inserted.
type NewEvent struct {
	CollegeID   int64
	Title       string
	Description string
	Type        string
	Date        Date
	Time        Clock
	Venue       string
	Status      string
	Resources   ResourceDoc
}

// EventFilter narrows an event listing. Zero values mean "no filter";
// callers that want only active events must set Status explicitly.
type EventFilter struct {
	Type   string
	Date   Date
	Status string
}

// EventPatch carries a partial event update. Nil pointers leave the
// corresponding column untouched.
type EventPatch struct {
	Title       *string
	Description *string
	Type        *string
	Date        *Date
	Time        *Clock
	Venue       *string
	Status      *string
	Resources   *ResourceDoc
}

// IsEmpty reports whether the patch would change nothing.
func (p EventPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Type == nil &&
		p.Date == nil && p.Time == nil && p.Venue == nil &&
		p.Status == nil && p.Resources == nil
}

// ─── Request payloads ─────────────────────────────────────────────────────────

// LoginRequest is the payload for the mock login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateCollegeRequest is the payload for creating a college.
type CreateCollegeRequest struct {
	Name string `json:"name"`
}

// CreateStudentRequest is the payload for creating a student.
type CreateStudentRequest struct {
	CollegeID int64  `json:"college_id"`
	Name      string `json:"name"`
	SRN       string `json:"srn"`
	Email     string `json:"email"`
}

// CreateEventRequest is the payload for creating a new event.
// Date and Time are wire strings; the service layer parses them.
type CreateEventRequest struct {
	CollegeID   int64       `json:"college_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Venue       string      `json:"venue"`
	Status      string      `json:"status"`
	Resources   ResourceDoc `json:"resources"`
}

// UpdateEventRequest is the payload for a partial event update.
// Absent fields decode as nil and are left untouched.
type UpdateEventRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Type        *string      `json:"type"`
	Date        *string      `json:"date"`
	Time        *string      `json:"time"`
	Venue       *string      `json:"venue"`
	Status      *string      `json:"status"`
	Resources   *ResourceDoc `json:"resources"`
}

// PairRequest identifies an (event, student) pair. Used by the registration
// and attendance endpoints.
type PairRequest struct {
	EventID   int64 `json:"event_id"`
	StudentID int64 `json:"student_id"`
}

// FeedbackRequest is the payload for submitting feedback.
type FeedbackRequest struct {
	EventID   int64  `json:"event_id"`
	StudentID int64  `json:"student_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}
