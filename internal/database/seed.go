package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Seed inserts the demo colleges, students, and event on first boot.
// It is a no-op when the colleges table already has rows.
func Seed(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM colleges`).Scan(&count); err != nil {
		return fmt.Errorf("count colleges: %w", err)
	}
	if count > 0 {
		return nil
	}

	var engineeringID, artsID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO colleges (name) VALUES ($1) RETURNING id`,
		"Engineering College A",
	).Scan(&engineeringID)
	if err != nil {
		return fmt.Errorf("seed college: %w", err)
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO colleges (name) VALUES ($1) RETURNING id`,
		"Arts & Science College B",
	).Scan(&artsID)
	if err != nil {
		return fmt.Errorf("seed college: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO students (college_id, name, srn, email) VALUES
		 ($1, 'John Doe', 'ENG001', 'john@example.com'),
		 ($1, 'Jane Smith', 'ENG002', 'jane@example.com')`,
		engineeringID,
	)
	if err != nil {
		return fmt.Errorf("seed students: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO events (college_id, title, description, type, date, time, venue, resources)
		 VALUES ($1, 'Python Workshop', 'Learn Python programming basics', 'Workshop',
		         '2024-12-15', '10:00', 'Lab 1', '{"materials": ["slides.pdf", "code.zip"]}')`,
		engineeringID,
	)
	if err != nil {
		return fmt.Errorf("seed event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	log.Info("seeded demo data", zap.Int64("colleges", 2))
	return nil
}
