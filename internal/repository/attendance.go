package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslabs/event-registry/internal/model"
)

// AttendanceRepository handles persistence for attendance, the second stage
// of the chain. A row may only exist after a registration for the same pair.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create marks attendance inside one transaction: verify the registration
// precedence, reject duplicates, insert. The unique index covers the race
// window between the pre-check and the insert.
func (r *AttendanceRepository) Create(ctx context.Context, eventID, studentID int64) (id int64, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var registered int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID,
	).Scan(&registered)
	if err != nil {
		return 0, fmt.Errorf("check registration: %w", err)
	}
	if registered == 0 {
		return 0, ErrNotRegistered
	}

	var dupCount int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID,
	).Scan(&dupCount)
	if err != nil {
		return 0, fmt.Errorf("check duplicate: %w", err)
	}
	if dupCount > 0 {
		return 0, ErrDuplicate
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO attendance (event_id, student_id) VALUES ($1, $2) RETURNING id`,
		eventID, studentID,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("insert attendance: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

// ListByEvent returns all students who attended an event with their
// attendance timestamps.
func (r *AttendanceRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.Participant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.name, s.srn, s.email, a.attended_at
		 FROM attendance a
		 JOIN students s ON s.id = a.student_id
		 WHERE a.event_id = $1
		 ORDER BY a.id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var students []model.Participant
	for rows.Next() {
		var (
			p          model.Participant
			attendedAt time.Time
		)
		if err := rows.Scan(&p.StudentID, &p.Name, &p.SRN, &p.Email, &attendedAt); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		p.AttendedAt = model.FormatTimestamp(attendedAt)
		students = append(students, p)
	}
	return students, rows.Err()
}
