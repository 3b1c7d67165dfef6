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

// StudentRepository handles persistence for students.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student and returns its id. SRN and email uniqueness
// are enforced by the store; a dangling college reference surfaces as a
// generic failure.
func (r *StudentRepository) Create(ctx context.Context, req model.CreateStudentRequest) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO students (college_id, name, srn, email)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		req.CollegeID, req.Name, req.SRN, req.Email,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		if isFKViolation(err) {
			return 0, fmt.Errorf("college %d does not exist", req.CollegeID)
		}
		return 0, fmt.Errorf("insert student: %w", err)
	}
	return id, nil
}

// List returns all students ordered by id.
func (r *StudentRepository) List(ctx context.Context) ([]model.StudentSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, college_id, name, srn, email, created_at
		 FROM students ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []model.StudentSummary
	for rows.Next() {
		var (
			s         model.StudentSummary
			createdAt time.Time
		)
		if err := rows.Scan(&s.ID, &s.CollegeID, &s.Name, &s.SRN, &s.Email, &createdAt); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		s.CreatedAt = model.FormatTimestamp(createdAt)
		students = append(students, s)
	}
	return students, rows.Err()
}

// Delete hard-deletes a student and its registration, attendance, and
// feedback rows inside one transaction.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (err error) {
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
	err = tx.QueryRow(ctx, `SELECT id FROM students WHERE id = $1`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("check student: %w", err)
	}

	for _, table := range []string{"feedback", "attendance", "registrations"} {
		_, err = tx.Exec(ctx, fmt.Sprintf(
			`DELETE FROM %s WHERE student_id = $1`, table), id)
		if err != nil {
			return fmt.Errorf("cascade %s: %w", table, err)
		}
	}
	if _, err = tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
