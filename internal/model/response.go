package model

// Every endpoint answers with a structured document carrying a success flag,
// mirroring the envelope expected by the existing clients.

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the bare success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserInfo echoes the authenticated identity in a login response.
type UserInfo struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse is the mock-auth success payload.
type LoginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

type CollegeCreatedResponse struct {
	Success   bool   `json:"success"`
	CollegeID int64  `json:"college_id"`
	Message   string `json:"message"`
}

type CollegeListResponse struct {
	Success  bool             `json:"success"`
	Colleges []CollegeSummary `json:"colleges"`
}

type StudentCreatedResponse struct {
	Success   bool   `json:"success"`
	StudentID int64  `json:"student_id"`
	Message   string `json:"message"`
}

type StudentListResponse struct {
	Success  bool             `json:"success"`
	Students []StudentSummary `json:"students"`
}

type EventCreatedResponse struct {
	Success bool   `json:"success"`
	EventID int64  `json:"event_id"`
	Message string `json:"message"`
}

type EventListResponse struct {
	Success bool           `json:"success"`
	Events  []EventSummary `json:"events"`
}

type EventResponse struct {
	Success bool        `json:"success"`
	Event   EventDetail `json:"event"`
}

type RegistrationCreatedResponse struct {
	Success        bool   `json:"success"`
	RegistrationID int64  `json:"registration_id"`
	Message        string `json:"message"`
}

type RegistrationListResponse struct {
	Success            bool          `json:"success"`
	EventID            int64         `json:"event_id"`
	TotalRegistrations int           `json:"total_registrations"`
	Students           []Participant `json:"students"`
}

type AttendanceCreatedResponse struct {
	Success      bool   `json:"success"`
	AttendanceID int64  `json:"attendance_id"`
	Message      string `json:"message"`
}

type AttendanceListResponse struct {
	Success         bool          `json:"success"`
	EventID         int64         `json:"event_id"`
	TotalAttendance int           `json:"total_attendance"`
	Students        []Participant `json:"students"`
}

type FeedbackCreatedResponse struct {
	Success    bool   `json:"success"`
	FeedbackID int64  `json:"feedback_id"`
	Message    string `json:"message"`
}

type FeedbackListResponse struct {
	Success       bool            `json:"success"`
	EventID       int64           `json:"event_id"`
	TotalFeedback int             `json:"total_feedback"`
	AverageRating float64         `json:"average_rating"`
	Feedback      []FeedbackEntry `json:"feedback"`
}

type RegistrationReport struct {
	Success            bool   `json:"success"`
	EventID            int64  `json:"event_id"`
	EventTitle         string `json:"event_title"`
	TotalRegistrations int    `json:"total_registrations"`
}

type AttendanceReport struct {
	Success              bool    `json:"success"`
	EventID              int64   `json:"event_id"`
	EventTitle           string  `json:"event_title"`
	TotalRegistered      int     `json:"total_registered"`
	TotalAttended        int     `json:"total_attended"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type FeedbackReport struct {
	Success       bool    `json:"success"`
	EventID       int64   `json:"event_id"`
	EventTitle    string  `json:"event_title"`
	TotalFeedback int     `json:"total_feedback"`
	AverageRating float64 `json:"average_rating"`
}

type PopularityReport struct {
	Success bool              `json:"success"`
	Events  []PopularityEntry `json:"events"`
}

type ParticipationReport struct {
	Success          bool    `json:"success"`
	StudentID        int64   `json:"student_id"`
	StudentName      string  `json:"student_name"`
	EventsRegistered int     `json:"events_registered"`
	EventsAttended   int     `json:"events_attended"`
	AttendanceRate   float64 `json:"attendance_rate"`
}

type TopStudentsReport struct {
	Success     bool         `json:"success"`
	TopStudents []TopStudent `json:"top_students"`
}
