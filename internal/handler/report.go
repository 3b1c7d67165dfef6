package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campuslabs/event-registry/internal/model"
	"github.com/campuslabs/event-registry/internal/repository"
)

// ReportRegistrations handles GET /reports/registrations/{eventID}
func (h *Handler) ReportRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	report, err := h.svc.RegistrationReport(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report.Success = true
	writeJSON(w, http.StatusOK, report)
}

// ReportAttendance handles GET /reports/attendance/{eventID}
func (h *Handler) ReportAttendance(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	report, err := h.svc.AttendanceReport(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report.Success = true
	writeJSON(w, http.StatusOK, report)
}

// ReportFeedback handles GET /reports/feedback/{eventID}
func (h *Handler) ReportFeedback(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	report, err := h.svc.FeedbackReport(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report.Success = true
	writeJSON(w, http.StatusOK, report)
}

// ReportPopularity handles GET /reports/popularity
func (h *Handler) ReportPopularity(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.PopularityReport(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if events == nil {
		events = []model.PopularityEntry{}
	}

	writeJSON(w, http.StatusOK, model.PopularityReport{Success: true, Events: events})
}

// ReportParticipation handles GET /reports/participation/{studentID}
func (h *Handler) ReportParticipation(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "studentID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	report, err := h.svc.ParticipationReport(r.Context(), studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Student not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report.Success = true
	writeJSON(w, http.StatusOK, report)
}

// ReportTopStudents handles GET /reports/top-students
func (h *Handler) ReportTopStudents(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	students, err := h.svc.TopStudentsReport(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if students == nil {
		students = []model.TopStudent{}
	}

	writeJSON(w, http.StatusOK, model.TopStudentsReport{Success: true, TopStudents: students})
}
