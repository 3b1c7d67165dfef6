package handler

import (
	"errors"
	"net/http"

	"github.com/campuslabs/event-registry/internal/model"
	"github.com/campuslabs/event-registry/internal/repository"
)

// Administrative surface for colleges and students. Creation goes through
// the same uniqueness invariants as everything else; deletion is the hard
// cascade the public API never triggers on its own.

// CreateCollege handles POST /colleges
func (h *Handler) CreateCollege(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCollegeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.svc.CreateCollege(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, http.StatusConflict, "College already exists")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, model.CollegeCreatedResponse{
		Success:   true,
		CollegeID: id,
		Message:   "College created successfully",
	})
}

// ListColleges handles GET /colleges
func (h *Handler) ListColleges(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.svc.ListColleges(r.Context())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if colleges == nil {
		colleges = []model.CollegeSummary{}
	}

	writeJSON(w, http.StatusOK, model.CollegeListResponse{Success: true, Colleges: colleges})
}

// DeleteCollege handles DELETE /colleges/{id}
func (h *Handler) DeleteCollege(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid college id")
		return
	}

	if err := h.svc.DeleteCollege(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "College not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{
		Success: true,
		Message: "College deleted successfully",
	})
}

// CreateStudent handles POST /students
func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.svc.CreateStudent(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, http.StatusConflict, "Student with this SRN or email already exists")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, model.StudentCreatedResponse{
		Success:   true,
		StudentID: id,
		Message:   "Student created successfully",
	})
}

// ListStudents handles GET /students
func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.svc.ListStudents(r.Context())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if students == nil {
		students = []model.StudentSummary{}
	}

	writeJSON(w, http.StatusOK, model.StudentListResponse{Success: true, Students: students})
}

// DeleteStudent handles DELETE /students/{id}
func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	if err := h.svc.DeleteStudent(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Student not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{
		Success: true,
		Message: "Student deleted successfully",
	})
}
