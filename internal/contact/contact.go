package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/newsletter"
	"github.com/Zachkp/portfolio/internal/platform/logger"
)

const (
	SuccessMessage = "Thank you for your message! I'll get back to you soon."
	FailureMessage = "Sorry, there was an error sending your message. Please try again later."
	InvalidMessage = "Please fill in your name, a valid email address and a message."
)

var (
	ErrInvalidMessage = errors.New("invalid contact message")
	ErrNotConfigured  = errors.New("SMTP credentials not configured")
)

type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	Delivered bool      `json:"delivered"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository keeps a copy of every message, delivered or not.
type Repository interface {
	Save(ctx context.Context, m Message) error
	MarkDelivered(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// Sender delivers a message to the site owner.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

type Service struct {
	repo   Repository
	sender Sender
	log    *logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, sender Sender, log *logger.Logger) *Service {
	return &Service{repo: repo, sender: sender, log: log, now: time.Now}
}

// Submit validates, stores and delivers a message. The stored copy survives a
// delivery failure so nothing is lost.
func (s *Service) Submit(ctx context.Context, name, email, body string) (*Message, error) {
	m := Message{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Body:      strings.TrimSpace(body),
		CreatedAt: s.now().UTC(),
	}
	if m.Name == "" || m.Body == "" || !newsletter.ValidEmail(m.Email) {
		return nil, ErrInvalidMessage
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	if err := s.sender.Send(ctx, m); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	if err := s.repo.MarkDelivered(ctx, m.ID); err != nil {
		s.log.Warn("mark message delivered", "message_id", m.ID, "error", err)
	}
	m.Delivered = true
	s.log.Info("contact message sent", "message_id", m.ID, "email", m.Email)
	return &m, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
