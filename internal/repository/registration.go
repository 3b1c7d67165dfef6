package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslabs/event-registry/internal/model"
)

// RegistrationRepository handles persistence for registrations, the first
// stage before attendance and feedback.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create registers a student for an event inside one transaction. The
// in-transaction pre-check gives the friendly duplicate answer; the unique
// index on (event_id, student_id) decides the race when two writers slip
// past it concurrently, so exactly one insert commits.
func (r *RegistrationRepository) Create(ctx context.Context, eventID, studentID int64) (id int64, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var dupCount int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID,
	).Scan(&dupCount)
	if err != nil {
		return 0, fmt.Errorf("check duplicate: %w", err)
	}
	if dupCount > 0 {
		return 0, ErrDuplicate
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO registrations (event_id, student_id) VALUES ($1, $2) RETURNING id`,
		eventID, studentID,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		if isFKViolation(err) {
			return 0, fmt.Errorf("event %d or student %d does not exist", eventID, studentID)
		}
		return 0, fmt.Errorf("insert registration: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

// ListByEvent returns all students registered for an event with their
// registration timestamps, in registration order.
func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.Participant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.name, s.srn, s.email, r.registered_at
		 FROM registrations r
		 JOIN students s ON s.id = r.student_id
		 WHERE r.event_id = $1
		 ORDER BY r.id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var students []model.Participant
	for rows.Next() {
		var (
			p            model.Participant
			registeredAt time.Time
		)
		if err := rows.Scan(&p.StudentID, &p.Name, &p.SRN, &p.Email, &registeredAt); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		p.RegisteredAt = model.FormatTimestamp(registeredAt)
		students = append(students, p)
	}
	return students, rows.Err()
}
