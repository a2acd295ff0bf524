package newsletter

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	InvalidEmailMessage = "Please enter a valid email address."
	SuccessMessage      = "Thank you for subscribing!"
	FailureMessage      = "Sorry, we could not save your subscription. Please try again later."
)

var (
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrNotFound          = errors.New("subscriber not found")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the same loose shape check the subscribe form uses.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository persists subscribers.
type Repository interface {
	Add(ctx context.Context, s Subscriber) error
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
	List(ctx context.Context, limit int) ([]Subscriber, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Subscribe validates and stores an address. Subscribing an address twice
// succeeds without creating a second row and returns the stored subscriber.
func (s *Service) Subscribe(ctx context.Context, email string) (*Subscriber, error) {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	sub := Subscriber{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(email),
		CreatedAt: s.now().UTC(),
	}
	err := s.repo.Add(ctx, sub)
	if errors.Is(err, ErrAlreadySubscribed) {
		existing, err := s.repo.GetByEmail(ctx, sub.Email)
		if err != nil {
			return nil, fmt.Errorf("load subscriber: %w", err)
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("add subscriber: %w", err)
	}
	return &sub, nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Subscriber, error) {
	return s.repo.List(ctx, limit)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
