package handler

import (
	"errors"
	"net/http"

	"github.com/campuslabs/event-registry/internal/model"
	"github.com/campuslabs/event-registry/internal/repository"
)

// Register handles POST /register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.PairRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.svc.Register(r.Context(), req.EventID, req.StudentID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, http.StatusConflict, "Student already registered for this event")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, model.RegistrationCreatedResponse{
		Success:        true,
		RegistrationID: id,
		Message:        "Successfully registered for event",
	})
}

// ListRegistrations handles GET /registrations/{eventID}
func (h *Handler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	students, err := h.svc.ListRegistrations(r.Context(), eventID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if students == nil {
		students = []model.Participant{}
	}

	writeJSON(w, http.StatusOK, model.RegistrationListResponse{
		Success:            true,
		EventID:            eventID,
		TotalRegistrations: len(students),
		Students:           students,
	})
}

// MarkAttendance handles POST /attendance
//
// Precedence: the pair must already be registered, otherwise 404.
func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req model.PairRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.svc.MarkAttendance(r.Context(), req.EventID, req.StudentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotRegistered):
			writeError(w, http.StatusNotFound, "Student not registered for this event")
		case errors.Is(err, repository.ErrDuplicate):
			writeError(w, http.StatusConflict, "Attendance already marked")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, model.AttendanceCreatedResponse{
		Success:      true,
		AttendanceID: id,
		Message:      "Attendance marked successfully",
	})
}

// ListAttendance handles GET /attendance/{eventID}
func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	students, err := h.svc.ListAttendance(r.Context(), eventID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if students == nil {
		students = []model.Participant{}
	}

	writeJSON(w, http.StatusOK, model.AttendanceListResponse{
		Success:         true,
		EventID:         eventID,
		TotalAttendance: len(students),
		Students:        students,
	})
}

// SubmitFeedback handles POST /feedback
//
// Precedence: the pair must have attended, otherwise 403.
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req model.FeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.svc.SubmitFeedback(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotAttended):
			writeError(w, http.StatusForbidden, "Can only provide feedback for attended events")
		case errors.Is(err, repository.ErrDuplicate):
			writeError(w, http.StatusConflict, "Feedback already submitted")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, model.FeedbackCreatedResponse{
		Success:    true,
		FeedbackID: id,
		Message:    "Feedback submitted successfully",
	})
}

// ListFeedback handles GET /feedback/{eventID}
func (h *Handler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	entries, count, mean, err := h.svc.ListFeedback(r.Context(), eventID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if entries == nil {
		entries = []model.FeedbackEntry{}
	}

	writeJSON(w, http.StatusOK, model.FeedbackListResponse{
		Success:       true,
		EventID:       eventID,
		TotalFeedback: count,
		AverageRating: mean,
		Feedback:      entries,
	})
}
