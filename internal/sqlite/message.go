package sqlite

import (
	"context"
	"fmt"

	"github.com/Zachkp/portfolio/internal/contact"
)

// MessageRepository implements contact.Repository for SQLite
type MessageRepository struct {
	db *DB
}

func NewMessageRepository(db *DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Save(ctx context.Context, m contact.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, message, delivered, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Email, m.Body, m.Delivered, unix(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

func (r *MessageRepository) MarkDelivered(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE contact_messages SET delivered = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark message delivered: %w", err)
	}
	return nil
}

func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}

// Get loads one message; it exists for the admin export and tests.
func (r *MessageRepository) Get(ctx context.Context, id string) (*contact.Message, error) {
	var m contact.Message
	var created int64
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, message, delivered, created_at
		FROM contact_messages WHERE id = ?
	`, id).Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Delivered, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	m.CreatedAt = fromUnix(created)
	return &m, nil
}
