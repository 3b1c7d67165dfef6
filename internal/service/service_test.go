package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campuslabs/event-registry/internal/model"
)

// ─── Fakes ────────────────────────────────────────────────────────────────────

type fakeEvents struct {
	created *model.NewEvent
	filter  *model.EventFilter
	patch   *model.EventPatch
}

func (f *fakeEvents) Create(_ context.Context, e model.NewEvent) (int64, error) {
	f.created = &e
	return 1, nil
}

func (f *fakeEvents) List(_ context.Context, flt model.EventFilter) ([]model.EventSummary, error) {
	f.filter = &flt
	return nil, nil
}

func (f *fakeEvents) Get(context.Context, int64) (*model.EventDetail, error) {
	return &model.EventDetail{}, nil
}

func (f *fakeEvents) Update(_ context.Context, _ int64, p model.EventPatch) error {
	f.patch = &p
	return nil
}

func (f *fakeEvents) Cancel(context.Context, int64) error { return nil }

type fakeRegistrations struct{ created bool }

func (f *fakeRegistrations) Create(context.Context, int64, int64) (int64, error) {
	f.created = true
	return 1, nil
}

func (f *fakeRegistrations) ListByEvent(context.Context, int64) ([]model.Participant, error) {
	return nil, nil
}

type fakeFeedback struct {
	entries []model.FeedbackEntry
	created bool
}

func (f *fakeFeedback) Create(context.Context, int64, int64, int, string) (int64, error) {
	f.created = true
	return 1, nil
}

func (f *fakeFeedback) ListByEvent(context.Context, int64) ([]model.FeedbackEntry, error) {
	return f.entries, nil
}

type fakeReports struct {
	title                string
	registered, attended int
	fbCount              int
	fbMean               float64
	partName             string
	partReg, partAtt     int
	top                  []model.TopStudent
	gotLimit             int
}

func (f *fakeReports) EventTitle(context.Context, int64) (string, error) { return f.title, nil }

func (f *fakeReports) RegistrationCount(context.Context, int64) (int, error) {
	return f.registered, nil
}

func (f *fakeReports) AttendanceCounts(context.Context, int64) (int, int, error) {
	return f.registered, f.attended, nil
}

func (f *fakeReports) FeedbackStats(context.Context, int64) (int, float64, error) {
	return f.fbCount, f.fbMean, nil
}

func (f *fakeReports) Popularity(context.Context, string) ([]model.PopularityEntry, error) {
	return nil, nil
}

func (f *fakeReports) Participation(context.Context, int64) (string, int, int, error) {
	return f.partName, f.partReg, f.partAtt, nil
}

func (f *fakeReports) TopStudents(_ context.Context, limit int) ([]model.TopStudent, error) {
	f.gotLimit = limit
	return f.top, nil
}

type fakeColleges struct{ created string }

func (f *fakeColleges) Create(_ context.Context, name string) (int64, error) {
	f.created = name
	return 1, nil
}

func (f *fakeColleges) List(context.Context) ([]model.CollegeSummary, error) { return nil, nil }

func (f *fakeColleges) Delete(context.Context, int64) error { return nil }

type fakeStudents struct{ created *model.CreateStudentRequest }

func (f *fakeStudents) Create(_ context.Context, req model.CreateStudentRequest) (int64, error) {
	f.created = &req
	return 1, nil
}

func (f *fakeStudents) List(context.Context) ([]model.StudentSummary, error) { return nil, nil }

func (f *fakeStudents) Delete(context.Context, int64) error { return nil }

// ─── Event operations ─────────────────────────────────────────────────────────

func validCreateEvent() model.CreateEventRequest {
	return model.CreateEventRequest{
		CollegeID: 1,
		Title:     "Python Workshop",
		Type:      "Workshop",
		Date:      "2024-12-15",
		Time:      "10:00",
		Venue:     "Lab 1",
	}
}

func TestCreateEventValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CreateEventRequest)
	}{
		{"missing title", func(r *model.CreateEventRequest) { r.Title = "  " }},
		{"missing type", func(r *model.CreateEventRequest) { r.Type = "" }},
		{"missing venue", func(r *model.CreateEventRequest) { r.Venue = "" }},
		{"bad date", func(r *model.CreateEventRequest) { r.Date = "15/12/2024" }},
		{"bad time", func(r *model.CreateEventRequest) { r.Time = "10am" }},
		{"bad status", func(r *model.CreateEventRequest) { r.Status = "Pending" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &fakeEvents{}
			svc := NewRegistry(nil, nil, events, nil, nil, nil, nil)

			req := validCreateEvent()
			tt.mutate(&req)

			if _, err := svc.CreateEvent(context.Background(), req); !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			if events.created != nil {
				t.Error("invalid event must not reach the store")
			}
		})
	}
}

func TestCreateEventDefaults(t *testing.T) {
	events := &fakeEvents{}
	svc := NewRegistry(nil, nil, events, nil, nil, nil, nil)

	id, err := svc.CreateEvent(context.Background(), validCreateEvent())
	if err != nil {
		t.Fatalf("CreateEvent error = %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}
	if events.created.Status != model.StatusActive {
		t.Errorf("status = %q, want Active default", events.created.Status)
	}
	if events.created.Resources == nil {
		t.Error("resources must default to an empty document")
	}
}

func TestListEventsParsesDate(t *testing.T) {
	events := &fakeEvents{}
	svc := NewRegistry(nil, nil, events, nil, nil, nil, nil)

	if _, err := svc.ListEvents(context.Background(), "", "garbage", "Active"); err == nil {
		t.Fatal("expected date parse error")
	}

	if _, err := svc.ListEvents(context.Background(), "Workshop", "2024-12-15", ""); err != nil {
		t.Fatalf("ListEvents error = %v", err)
	}
	if events.filter.Type != "Workshop" || events.filter.Date != "2024-12-15" || events.filter.Status != "" {
		t.Errorf("filter = %+v", events.filter)
	}
}

func TestUpdateEventWireFields(t *testing.T) {
	events := &fakeEvents{}
	svc := NewRegistry(nil, nil, events, nil, nil, nil, nil)

	bad := "not-a-date"
	if err := svc.UpdateEvent(context.Background(), 1, model.UpdateEventRequest{Date: &bad}); err == nil {
		t.Fatal("expected date parse error")
	}

	badStatus := "Archived"
	if err := svc.UpdateEvent(context.Background(), 1, model.UpdateEventRequest{Status: &badStatus}); err == nil {
		t.Fatal("expected status validation error")
	}

	date, clock := "2025-01-02", "18:30"
	err := svc.UpdateEvent(context.Background(), 1, model.UpdateEventRequest{Date: &date, Time: &clock})
	if err != nil {
		t.Fatalf("UpdateEvent error = %v", err)
	}
	if events.patch.Date == nil || events.patch.Date.String() != date {
		t.Errorf("patch date = %v", events.patch.Date)
	}
	if events.patch.Time == nil || events.patch.Time.String() != clock {
		t.Errorf("patch time = %v", events.patch.Time)
	}
	if events.patch.Title != nil {
		t.Error("absent title must stay nil in the patch")
	}
}

// ─── Registration and feedback ────────────────────────────────────────────────

func TestRegisterValidatesIDs(t *testing.T) {
	regs := &fakeRegistrations{}
	svc := NewRegistry(nil, nil, nil, regs, nil, nil, nil)

	if _, err := svc.Register(context.Background(), 0, 1); err == nil {
		t.Error("expected error for missing event_id")
	}
	if _, err := svc.Register(context.Background(), 1, 0); err == nil {
		t.Error("expected error for missing student_id")
	}
	if regs.created {
		t.Error("invalid pair must not reach the store")
	}

	if _, err := svc.Register(context.Background(), 1, 2); err != nil {
		t.Fatalf("Register error = %v", err)
	}
}

func TestSubmitFeedbackRatingRange(t *testing.T) {
	for _, rating := range []int{-1, 0, 6, 100} {
		fb := &fakeFeedback{}
		svc := NewRegistry(nil, nil, nil, nil, nil, fb, nil)

		req := model.FeedbackRequest{EventID: 1, StudentID: 2, Rating: rating}
		if _, err := svc.SubmitFeedback(context.Background(), req); !errors.Is(err, ErrValidation) {
			t.Errorf("rating %d: err = %v, want ErrValidation", rating, err)
		}
		if fb.created {
			t.Errorf("rating %d must not persist a row", rating)
		}
	}

	for rating := 1; rating <= 5; rating++ {
		fb := &fakeFeedback{}
		svc := NewRegistry(nil, nil, nil, nil, nil, fb, nil)

		req := model.FeedbackRequest{EventID: 1, StudentID: 2, Rating: rating}
		if _, err := svc.SubmitFeedback(context.Background(), req); err != nil {
			t.Errorf("rating %d: unexpected error %v", rating, err)
		}
	}
}

func TestListFeedbackMean(t *testing.T) {
	fb := &fakeFeedback{entries: []model.FeedbackEntry{
		{Rating: 5}, {Rating: 4}, {Rating: 3},
	}}
	svc := NewRegistry(nil, nil, nil, nil, nil, fb, nil)

	_, count, mean, err := svc.ListFeedback(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListFeedback error = %v", err)
	}
	if count != 3 || mean != 4.0 {
		t.Errorf("count = %d, mean = %v; want 3, 4.0", count, mean)
	}
}

func TestListFeedbackEmptySentinel(t *testing.T) {
	svc := NewRegistry(nil, nil, nil, nil, nil, &fakeFeedback{}, nil)

	_, count, mean, err := svc.ListFeedback(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListFeedback error = %v", err)
	}
	if count != 0 || mean != 0 {
		t.Errorf("count = %d, mean = %v; want the 0 sentinels", count, mean)
	}
}

// ─── Colleges and students ────────────────────────────────────────────────────

func TestCreateCollegeValidation(t *testing.T) {
	colleges := &fakeColleges{}
	svc := NewRegistry(colleges, nil, nil, nil, nil, nil, nil)

	for _, name := range []string{"", "   "} {
		if _, err := svc.CreateCollege(context.Background(), name); !errors.Is(err, ErrValidation) {
			t.Errorf("name %q: err = %v, want ErrValidation", name, err)
		}
	}
	if colleges.created != "" {
		t.Error("invalid college must not reach the store")
	}

	if _, err := svc.CreateCollege(context.Background(), "  Engineering College A  "); err != nil {
		t.Fatalf("CreateCollege error = %v", err)
	}
	if colleges.created != "Engineering College A" {
		t.Errorf("stored name = %q, want it trimmed", colleges.created)
	}
}

func validCreateStudent() model.CreateStudentRequest {
	return model.CreateStudentRequest{
		CollegeID: 1,
		Name:      "John Doe",
		SRN:       "ENG001",
		Email:     "john@example.com",
	}
}

func TestCreateStudentValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CreateStudentRequest)
	}{
		{"missing college", func(r *model.CreateStudentRequest) { r.CollegeID = 0 }},
		{"missing name", func(r *model.CreateStudentRequest) { r.Name = "  " }},
		{"missing srn", func(r *model.CreateStudentRequest) { r.SRN = "" }},
		{"bare word email", func(r *model.CreateStudentRequest) { r.Email = "john" }},
		{"missing local part", func(r *model.CreateStudentRequest) { r.Email = "@example.com" }},
		{"two at signs", func(r *model.CreateStudentRequest) { r.Email = "a@b@example.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students := &fakeStudents{}
			svc := NewRegistry(nil, students, nil, nil, nil, nil, nil)

			req := validCreateStudent()
			tt.mutate(&req)

			if _, err := svc.CreateStudent(context.Background(), req); !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			if students.created != nil {
				t.Error("invalid student must not reach the store")
			}
		})
	}
}

func TestCreateStudentNormalizesEmail(t *testing.T) {
	students := &fakeStudents{}
	svc := NewRegistry(nil, students, nil, nil, nil, nil, nil)

	req := validCreateStudent()
	req.Email = "  John.Doe@Example.COM  "
	if _, err := svc.CreateStudent(context.Background(), req); err != nil {
		t.Fatalf("CreateStudent error = %v", err)
	}
	if students.created.Email != "john.doe@example.com" {
		t.Errorf("stored email = %q, want it trimmed and lowercased", students.created.Email)
	}
}

// ─── Reports ──────────────────────────────────────────────────────────────────

func TestAttendanceReportPercentage(t *testing.T) {
	tests := []struct {
		registered, attended int
		want                 float64
	}{
		{10, 4, 40},
		{0, 0, 0},
		{3, 1, 33.33},
		{3, 2, 66.67},
		{7, 7, 100},
	}

	for _, tt := range tests {
		reports := &fakeReports{title: "Python Workshop", registered: tt.registered, attended: tt.attended}
		svc := NewRegistry(nil, nil, nil, nil, nil, nil, reports)

		got, err := svc.AttendanceReport(context.Background(), 1)
		if err != nil {
			t.Fatalf("AttendanceReport error = %v", err)
		}
		if got.AttendancePercentage != tt.want {
			t.Errorf("%d/%d: percentage = %v, want %v",
				tt.attended, tt.registered, got.AttendancePercentage, tt.want)
		}
		if got.EventTitle != "Python Workshop" {
			t.Errorf("title = %q", got.EventTitle)
		}
	}
}

func TestFeedbackReportRounding(t *testing.T) {
	reports := &fakeReports{title: "t", fbCount: 3, fbMean: 3.6666666666}
	svc := NewRegistry(nil, nil, nil, nil, nil, nil, reports)

	got, err := svc.FeedbackReport(context.Background(), 1)
	if err != nil {
		t.Fatalf("FeedbackReport error = %v", err)
	}
	if got.AverageRating != 3.67 {
		t.Errorf("average = %v, want 3.67", got.AverageRating)
	}
	if got.TotalFeedback != 3 {
		t.Errorf("total = %d, want 3", got.TotalFeedback)
	}
}

func TestParticipationReportRate(t *testing.T) {
	reports := &fakeReports{partName: "John Doe", partReg: 8, partAtt: 4}
	svc := NewRegistry(nil, nil, nil, nil, nil, nil, reports)

	got, err := svc.ParticipationReport(context.Background(), 1)
	if err != nil {
		t.Fatalf("ParticipationReport error = %v", err)
	}
	if got.AttendanceRate != 50 {
		t.Errorf("rate = %v, want 50", got.AttendanceRate)
	}
	if got.StudentName != "John Doe" {
		t.Errorf("name = %q", got.StudentName)
	}
}

func TestParticipationReportZeroRegistered(t *testing.T) {
	reports := &fakeReports{partName: "Jane Smith"}
	svc := NewRegistry(nil, nil, nil, nil, nil, nil, reports)

	got, err := svc.ParticipationReport(context.Background(), 1)
	if err != nil {
		t.Fatalf("ParticipationReport error = %v", err)
	}
	if got.AttendanceRate != 0 {
		t.Errorf("rate = %v, want the 0 sentinel", got.AttendanceRate)
	}
}

func TestTopStudentsDefaultLimit(t *testing.T) {
	reports := &fakeReports{}
	svc := NewRegistry(nil, nil, nil, nil, nil, nil, reports)

	if _, err := svc.TopStudentsReport(context.Background(), 0); err != nil {
		t.Fatalf("TopStudentsReport error = %v", err)
	}
	if reports.gotLimit != DefaultTopStudents {
		t.Errorf("limit = %d, want %d", reports.gotLimit, DefaultTopStudents)
	}

	if _, err := svc.TopStudentsReport(context.Background(), 10); err != nil {
		t.Fatalf("TopStudentsReport error = %v", err)
	}
	if reports.gotLimit != 10 {
		t.Errorf("limit = %d, want 10", reports.gotLimit)
	}
}
