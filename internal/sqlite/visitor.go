package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/visitors"
)

// VisitorRepository implements visitors.Repository for SQLite
type VisitorRepository struct {
	db *DB
}

func NewVisitorRepository(db *DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

func (r *VisitorRepository) Record(ctx context.Context, v visitors.Visit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, created_at)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, unix(v.Timestamp))
	if err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

func (r *VisitorRepository) Summary(ctx context.Context, dayStart, weekStart time.Time) (visitors.Summary, error) {
	var s visitors.Summary
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT hashed_ip),
			COALESCE(SUM(CASE WHEN created_at >= ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN created_at >= ? THEN 1 ELSE 0 END), 0)
		FROM visitors
	`, unix(dayStart), unix(weekStart)).Scan(&s.Total, &s.Unique, &s.Today, &s.ThisWeek)
	if err != nil {
		return visitors.Summary{}, fmt.Errorf("failed to summarise visitors: %w", err)
	}
	return s, nil
}

func (r *VisitorRepository) TopPaths(ctx context.Context, limit int) ([]visitors.PathCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS visits
		FROM visitors
		GROUP BY path
		ORDER BY visits DESC, path ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top paths: %w", err)
	}
	defer rows.Close()

	var out []visitors.PathCount
	for rows.Next() {
		var pc visitors.PathCount
		if err := rows.Scan(&pc.Path, &pc.Visits); err != nil {
			return nil, fmt.Errorf("failed to scan path count: %w", err)
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// Recent returns the latest visits first.
func (r *VisitorRepository) Recent(ctx context.Context, limit int) ([]visitors.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), created_at
		FROM visitors
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load visitors: %w", err)
	}
	defer rows.Close()

	var out []visitors.Visit
	for rows.Next() {
		var v visitors.Visit
		var created int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &created); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		v.Timestamp = fromUnix(created)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VisitorRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM visitors WHERE created_at < ?`, unix(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to delete old visits: %w", err)
	}
	return result.RowsAffected()
}
