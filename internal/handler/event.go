package handler

import (
	"errors"
	"net/http"

	"github.com/campuslabs/event-registry/internal/model"
	"github.com/campuslabs/event-registry/internal/repository"
)

// CreateEvent handles POST /events
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.svc.CreateEvent(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, model.EventCreatedResponse{
		Success: true,
		EventID: id,
		Message: "Event created successfully",
	})
}

// ListEvents handles GET /events
//
// Filters: type, date, status. Status defaults to Active; clients must pass
// an explicit empty status to see all statuses.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := model.StatusActive
	if v, ok := q["status"]; ok && len(v) > 0 {
		status = v[0]
	}

	events, err := h.svc.ListEvents(r.Context(), q.Get("type"), q.Get("date"), status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if events == nil {
		events = []model.EventSummary{}
	}

	writeJSON(w, http.StatusOK, model.EventListResponse{Success: true, Events: events})
}

// GetEvent handles GET /events/{id}
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	event, err := h.svc.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.EventResponse{Success: true, Event: *event})
}

// UpdateEvent handles PUT /events/{id}
//
// Applies only the fields present in the body; absent fields are untouched.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req model.UpdateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.UpdateEvent(r.Context(), id, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{
		Success: true,
		Message: "Event updated successfully",
	})
}

// CancelEvent handles DELETE /events/{id}
//
// Soft delete: flips status to Cancelled and leaves child rows intact.
// Cancelling twice succeeds silently both times.
func (h *Handler) CancelEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	if err := h.svc.CancelEvent(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{
		Success: true,
		Message: "Event cancelled successfully",
	})
}
