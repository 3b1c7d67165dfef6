package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslabs/event-registry/internal/model"
)

// FeedbackRepository handles persistence for feedback, the final stage of
// the chain. A row may only exist after attendance for the same pair.
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository constructs a FeedbackRepository.
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create submits feedback inside one transaction: verify the attendance
// precedence, reject duplicates, insert. The rating range is validated
// upstream and double-checked by the store's CHECK constraint.
func (r *FeedbackRepository) Create(ctx context.Context, eventID, studentID int64, rating int, comment string) (id int64, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var attended int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID,
	).Scan(&attended)
	if err != nil {
		return 0, fmt.Errorf("check attendance: %w", err)
	}
	if attended == 0 {
		return 0, ErrNotAttended
	}

	var dupCount int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM feedback WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID,
	).Scan(&dupCount)
	if err != nil {
		return 0, fmt.Errorf("check duplicate: %w", err)
	}
	if dupCount > 0 {
		return 0, ErrDuplicate
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO feedback (event_id, student_id, rating, comment)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		eventID, studentID, rating, comment,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("insert feedback: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

// ListByEvent returns all feedback entries for an event with student names.
func (r *FeedbackRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.FeedbackEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.name, f.rating, f.comment, f.created_at
		 FROM feedback f
		 JOIN students s ON s.id = f.student_id
		 WHERE f.event_id = $1
		 ORDER BY f.id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var entries []model.FeedbackEntry
	for rows.Next() {
		var (
			e         model.FeedbackEntry
			createdAt time.Time
		)
		if err := rows.Scan(&e.StudentName, &e.Rating, &e.Comment, &createdAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		e.CreatedAt = model.FormatTimestamp(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
