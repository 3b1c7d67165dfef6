package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslabs/event-registry/internal/model"
)

// ReportRepository runs the read-only aggregate queries behind /reports.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository constructs a ReportRepository.
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// EventTitle returns an event's title or ErrNotFound.
func (r *ReportRepository) EventTitle(ctx context.Context, eventID int64) (string, error) {
	var title string
	err := r.db.QueryRow(ctx,
		`SELECT title FROM events WHERE id = $1`, eventID,
	).Scan(&title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get event title: %w", err)
	}
	return title, nil
}

// RegistrationCount returns the number of registrations for an event.
func (r *ReportRepository) RegistrationCount(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}

// AttendanceCounts returns registered and attended totals for an event in
// one round trip.
func (r *ReportRepository) AttendanceCounts(ctx context.Context, eventID int64) (registered, attended int, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM registrations WHERE event_id = $1),
			(SELECT COUNT(*) FROM attendance WHERE event_id = $1)`,
		eventID,
	).Scan(&registered, &attended)
	if err != nil {
		return 0, 0, fmt.Errorf("count attendance: %w", err)
	}
	return registered, attended, nil
}

// FeedbackStats returns the feedback count and raw mean rating for an event.
// The mean is 0 when no feedback exists.
func (r *ReportRepository) FeedbackStats(ctx context.Context, eventID int64) (count int, mean float64, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(rating), 0)
		 FROM feedback WHERE event_id = $1`,
		eventID,
	).Scan(&count, &mean)
	if err != nil {
		return 0, 0, fmt.Errorf("feedback stats: %w", err)
	}
	return count, mean, nil
}

// Popularity returns all events (optionally filtered by type) with their
// registration counts, most popular first. The outer join keeps events with
// zero registrations; event id breaks ties deterministically.
func (r *ReportRepository) Popularity(ctx context.Context, eventType string) ([]model.PopularityEntry, error) {
	query := `SELECT e.id, e.title, e.type, e.date::text, COUNT(r.id), c.name
		FROM events e
		JOIN colleges c ON c.id = e.college_id
		LEFT JOIN registrations r ON r.event_id = e.id`

	var args []any
	if eventType != "" {
		query += ` WHERE e.type = $1`
		args = append(args, eventType)
	}
	query += `
		GROUP BY e.id, c.name
		ORDER BY COUNT(r.id) DESC, e.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("popularity report: %w", err)
	}
	defer rows.Close()

	var entries []model.PopularityEntry
	for rows.Next() {
		var e model.PopularityEntry
		if err := rows.Scan(&e.EventID, &e.Title, &e.Type, &e.Date, &e.RegistrationCount, &e.CollegeName); err != nil {
			return nil, fmt.Errorf("scan popularity: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Participation returns a student's name and registered/attended totals, or
// ErrNotFound when the student does not exist.
func (r *ReportRepository) Participation(ctx context.Context, studentID int64) (name string, registered, attended int, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT s.name,
			(SELECT COUNT(*) FROM registrations WHERE student_id = s.id),
			(SELECT COUNT(*) FROM attendance WHERE student_id = s.id)
		 FROM students s WHERE s.id = $1`,
		studentID,
	).Scan(&name, &registered, &attended)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, 0, ErrNotFound
		}
		return "", 0, 0, fmt.Errorf("participation report: %w", err)
	}
	return name, registered, attended, nil
}

// TopStudents ranks students by attendance count descending, student id
// breaking ties. The inner join keeps students with zero attendance out.
func (r *ReportRepository) TopStudents(ctx context.Context, limit int) ([]model.TopStudent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.name, s.srn, c.name, COUNT(a.id)
		 FROM students s
		 JOIN colleges c ON c.id = s.college_id
		 JOIN attendance a ON a.student_id = s.id
		 GROUP BY s.id, c.name
		 ORDER BY COUNT(a.id) DESC, s.id
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top students report: %w", err)
	}
	defer rows.Close()

	var students []model.TopStudent
	for rows.Next() {
		var s model.TopStudent
		if err := rows.Scan(&s.StudentID, &s.Name, &s.SRN, &s.CollegeName, &s.EventsAttended); err != nil {
			return nil, fmt.Errorf("scan top student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
