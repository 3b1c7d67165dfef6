// Package repository implements all database queries for the event registry.
// It uses pgx directly (no ORM) for transparency and performance.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a uniqueness constraint is violated, either
// by an in-transaction pre-check or by the store itself when two writers
// race at the constraint.
var ErrDuplicate = errors.New("duplicate record")

// ErrNotRegistered is returned when attendance is marked for a pair with no
// prior registration.
var ErrNotRegistered = errors.New("student not registered")

// ErrNotAttended is returned when feedback is submitted for a pair with no
// prior attendance.
var ErrNotAttended = errors.New("student did not attend")

// PostgreSQL SQLSTATE codes.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation reports whether err is the store rejecting a duplicate
// key. The unique index is the sole arbiter when two writers race.
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isFKViolation reports whether err is the store rejecting a dangling
// reference. Surfaced to callers as a generic failure, not pre-checked.
func isFKViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}
