package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Zachkp/portfolio/internal/newsletter"
)

// SubscriberRepository implements newsletter.Repository for SQLite
type SubscriberRepository struct {
	db *DB
}

func NewSubscriberRepository(db *DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) Add(ctx context.Context, s newsletter.Subscriber) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscribers (id, email, created_at)
		VALUES (?, ?, ?)
	`, s.ID, s.Email, unix(s.CreatedAt))
	if isUniqueViolation(err) {
		return newsletter.ErrAlreadySubscribed
	}
	if err != nil {
		return fmt.Errorf("failed to add subscriber: %w", err)
	}
	return nil
}

func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	var s newsletter.Subscriber
	var created int64
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, created_at FROM subscribers WHERE email = ?
	`, email).Scan(&s.ID, &s.Email, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, newsletter.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	s.CreatedAt = fromUnix(created)
	return &s, nil
}

// List returns the newest subscribers first.
func (r *SubscriberRepository) List(ctx context.Context, limit int) ([]newsletter.Subscriber, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, created_at
		FROM subscribers
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	var out []newsletter.Subscriber
	for rows.Next() {
		var s newsletter.Subscriber
		var created int64
		if err := rows.Scan(&s.ID, &s.Email, &created); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		s.CreatedAt = fromUnix(created)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubscriberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return n, nil
}

func (r *SubscriberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM subscribers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	if n == 0 {
		return newsletter.ErrNotFound
	}
	return nil
}
