package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslabs/event-registry/internal/model"
)

// CollegeRepository handles persistence for colleges, including the
// application-level cascade that replaces ORM delete-orphan magic.
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository constructs a CollegeRepository.
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// Create inserts a new college and returns its id.
func (r *CollegeRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO colleges (name) VALUES ($1) RETURNING id`,
		name,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("insert college: %w", err)
	}
	return id, nil
}

// List returns all colleges ordered by id.
func (r *CollegeRepository) List(ctx context.Context) ([]model.CollegeSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at FROM colleges ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list colleges: %w", err)
	}
	defer rows.Close()

	var colleges []model.CollegeSummary
	for rows.Next() {
		var (
			c         model.CollegeSummary
			createdAt time.Time
		)
		if err := rows.Scan(&c.ID, &c.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan college: %w", err)
		}
		c.CreatedAt = model.FormatTimestamp(createdAt)
		colleges = append(colleges, c)
	}
	return colleges, rows.Err()
}

// Delete hard-deletes a college and cascades to its students, events, and
// their child rows, all inside one transaction. Child tables go first so the
// foreign keys never dangle mid-flight.
func (r *CollegeRepository) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var exists int64
	err = tx.QueryRow(ctx, `SELECT id FROM colleges WHERE id = $1`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("check college: %w", err)
	}

	for _, table := range []string{"feedback", "attendance", "registrations"} {
		_, err = tx.Exec(ctx, fmt.Sprintf(
			`DELETE FROM %s
			 WHERE event_id IN (SELECT id FROM events WHERE college_id = $1)
			    OR student_id IN (SELECT id FROM students WHERE college_id = $1)`,
			table), id)
		if err != nil {
			return fmt.Errorf("cascade %s: %w", table, err)
		}
	}
	if _, err = tx.Exec(ctx, `DELETE FROM events WHERE college_id = $1`, id); err != nil {
		return fmt.Errorf("cascade events: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM students WHERE college_id = $1`, id); err != nil {
		return fmt.Errorf("cascade students: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM colleges WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete college: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
