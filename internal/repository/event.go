package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslabs/event-registry/internal/model"
)

// Columns shared by every event read. Date and time come back as wire
// strings so the model types stay driver-agnostic.
const eventColumns = `e.id, e.title, e.description, e.type,
	e.date::text, to_char(e.time, 'HH24:MI'), e.venue, e.status, e.resources, c.name`

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event and returns its id. A dangling college
// reference surfaces as a generic failure from the store.
func (r *EventRepository) Create(ctx context.Context, e model.NewEvent) (int64, error) {
	resources, err := e.Resources.Encode()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.QueryRow(ctx,
		`INSERT INTO events (college_id, title, description, type, date, time, venue, status, resources)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		e.CollegeID, e.Title, e.Description, e.Type,
		e.Date.String(), e.Time.String(), e.Venue, e.Status, resources,
	).Scan(&id)
	if err != nil {
		if isFKViolation(err) {
			return 0, fmt.Errorf("college %d does not exist", e.CollegeID)
		}
		return 0, fmt.Errorf("insert event: %w", err)
	}
	return id, nil
}

// List returns event summaries matching the filter, joined with the parent
// college name. Filters are a conjunction; empty fields are skipped.
func (r *EventRepository) List(ctx context.Context, f model.EventFilter) ([]model.EventSummary, error) {
	query := `SELECT ` + eventColumns + `
		FROM events e
		JOIN colleges c ON c.id = e.college_id`

	var (
		where []string
		args  []any
	)
	if f.Type != "" {
		args = append(args, f.Type)
		where = append(where, fmt.Sprintf("e.type = $%d", len(args)))
	}
	if f.Date != "" {
		args = append(args, f.Date.String())
		where = append(where, fmt.Sprintf("e.date = $%d::date", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("e.status = $%d", len(args)))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY e.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.EventSummary
	for rows.Next() {
		e, err := scanEventSummary(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// Get returns a single event with live registration and attendance counts,
// or ErrNotFound.
func (r *EventRepository) Get(ctx context.Context, id int64) (*model.EventDetail, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+eventColumns+`,
			(SELECT COUNT(*) FROM registrations WHERE event_id = e.id),
			(SELECT COUNT(*) FROM attendance WHERE event_id = e.id)
		 FROM events e
		 JOIN colleges c ON c.id = e.college_id
		 WHERE e.id = $1`,
		id,
	)

	var (
		d         model.EventDetail
		resources string
	)
	err := row.Scan(&d.ID, &d.Title, &d.Description, &d.Type, &d.Date, &d.Time,
		&d.Venue, &d.Status, &resources, &d.CollegeName,
		&d.RegistrationsCount, &d.AttendanceCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if d.Resources, err = model.DecodeResources(resources); err != nil {
		return nil, err
	}
	return &d, nil
}

// Update applies the non-nil patch fields to an event. An empty patch only
// verifies the event exists; the original treats it as a successful no-op.
func (r *EventRepository) Update(ctx context.Context, id int64, p model.EventPatch) error {
	if p.IsEmpty() {
		var exists int64
		err := r.db.QueryRow(ctx, `SELECT id FROM events WHERE id = $1`, id).Scan(&exists)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if p.Title != nil {
		set("title", *p.Title)
	}
	if p.Description != nil {
		set("description", *p.Description)
	}
	if p.Type != nil {
		set("type", *p.Type)
	}
	if p.Date != nil {
		set("date", p.Date.String())
	}
	if p.Time != nil {
		set(`"time"`, p.Time.String())
	}
	if p.Venue != nil {
		set("venue", *p.Venue)
	}
	if p.Status != nil {
		set("status", *p.Status)
	}
	if p.Resources != nil {
		resources, err := p.Resources.Encode()
		if err != nil {
			return err
		}
		set("resources", resources)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE events SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Cancel soft-deletes an event by flipping its status. Cancelling an
// already-cancelled event succeeds silently.
func (r *EventRepository) Cancel(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events SET status = $1 WHERE id = $2`,
		model.StatusCancelled, id,
	)
	if err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEventSummary(rows pgx.Rows) (*model.EventSummary, error) {
	var (
		e         model.EventSummary
		resources string
	)
	err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Type, &e.Date, &e.Time,
		&e.Venue, &e.Status, &resources, &e.CollegeName)
	if err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}
	if e.Resources, err = model.DecodeResources(resources); err != nil {
		return nil, err
	}
	return &e, nil
}
