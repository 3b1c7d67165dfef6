package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/campuslabs/event-registry/internal/model"
)

// CreateCollege validates the name and delegates to the repository, where
// the unique index enforces name uniqueness.
func (s *Registry) CreateCollege(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, invalidf("college name is required")
	}
	return s.colleges.Create(ctx, name)
}

// ListColleges returns all colleges.
func (s *Registry) ListColleges(ctx context.Context) ([]model.CollegeSummary, error) {
	return s.colleges.List(ctx)
}

// DeleteCollege hard-deletes a college and everything it owns.
func (s *Registry) DeleteCollege(ctx context.Context, id int64) error {
	return s.colleges.Delete(ctx, id)
}

// CreateStudent validates the request and delegates to the repository,
// where unique indexes enforce srn and email uniqueness.
func (s *Registry) CreateStudent(ctx context.Context, req model.CreateStudentRequest) (int64, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.SRN = strings.TrimSpace(req.SRN)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.CollegeID <= 0 {
		return 0, invalidf("college_id is required")
	}
	if req.Name == "" {
		return 0, invalidf("student name is required")
	}
	if req.SRN == "" {
		return 0, invalidf("srn is required")
	}
	if !isValidEmail(req.Email) {
		return 0, invalidf("email is not a valid email address")
	}
	return s.students.Create(ctx, req)
}

// ListStudents returns all students.
func (s *Registry) ListStudents(ctx context.Context) ([]model.StudentSummary, error) {
	return s.students.List(ctx)
}

// DeleteStudent hard-deletes a student and its chain records.
func (s *Registry) DeleteStudent(ctx context.Context, id int64) error {
	return s.students.Delete(ctx, id)
}

// isValidEmail accepts only a bare RFC 5322 address, no display name.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
