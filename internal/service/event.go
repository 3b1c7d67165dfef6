package service

import (
	"context"
	"strings"

	"github.com/campuslabs/event-registry/internal/model"
)

func validStatus(s string) bool {
	return s == model.StatusActive || s == model.StatusCancelled
}

// CreateEvent validates the request, parses the wire date/time, applies
// defaults, and delegates to the repository. College existence is not
// pre-checked; a dangling reference surfaces as a store failure.
func (s *Registry) CreateEvent(ctx context.Context, req model.CreateEventRequest) (int64, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Type = strings.TrimSpace(req.Type)
	req.Venue = strings.TrimSpace(req.Venue)

	if req.Title == "" {
		return 0, invalidf("event title is required")
	}
	if req.Type == "" {
		return 0, invalidf("event type is required")
	}
	if req.Venue == "" {
		return 0, invalidf("event venue is required")
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		return 0, invalidf("%v", err)
	}
	clock, err := model.ParseClock(req.Time)
	if err != nil {
		return 0, invalidf("%v", err)
	}

	status := req.Status
	if status == "" {
		status = model.StatusActive
	}
	if !validStatus(status) {
		return 0, invalidf("invalid status %q", status)
	}

	resources := req.Resources
	if resources == nil {
		resources = model.ResourceDoc{}
	}

	return s.events.Create(ctx, model.NewEvent{
		CollegeID:   req.CollegeID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Date:        date,
		Time:        clock,
		Venue:       req.Venue,
		Status:      status,
		Resources:   resources,
	})
}

// ListEvents returns event summaries matching the conjunction of the given
// filters. An empty status means all statuses; the handler applies the
// Active default before calling here.
func (s *Registry) ListEvents(ctx context.Context, eventType, date, status string) ([]model.EventSummary, error) {
	var filter model.EventFilter
	filter.Type = strings.TrimSpace(eventType)
	filter.Status = strings.TrimSpace(status)

	if date != "" {
		d, err := model.ParseDate(date)
		if err != nil {
			return nil, invalidf("%v", err)
		}
		filter.Date = d
	}

	return s.events.List(ctx, filter)
}

// GetEvent returns full event detail with live child counts.
func (s *Registry) GetEvent(ctx context.Context, id int64) (*model.EventDetail, error) {
	return s.events.Get(ctx, id)
}

// UpdateEvent applies only the fields present in the request, validating
// any wire-format fields before touching the store.
func (s *Registry) UpdateEvent(ctx context.Context, id int64, req model.UpdateEventRequest) error {
	patch := model.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Venue:       req.Venue,
	}

	if req.Date != nil {
		d, err := model.ParseDate(*req.Date)
		if err != nil {
			return invalidf("%v", err)
		}
		patch.Date = &d
	}
	if req.Time != nil {
		c, err := model.ParseClock(*req.Time)
		if err != nil {
			return invalidf("%v", err)
		}
		patch.Time = &c
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return invalidf("invalid status %q", *req.Status)
		}
		patch.Status = req.Status
	}
	if req.Resources != nil {
		patch.Resources = req.Resources
	}

	return s.events.Update(ctx, id, patch)
}

// CancelEvent soft-deletes an event. Idempotent.
func (s *Registry) CancelEvent(ctx context.Context, id int64) error {
	return s.events.Cancel(ctx, id)
}
