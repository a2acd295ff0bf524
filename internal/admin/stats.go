package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/newsletter"
	"github.com/Zachkp/portfolio/internal/visitors"
)

const (
	topPathsLimit          = 10
	recentVisitorsLimit    = 50
	recentSubscribersLimit = 10
)

// Stats is everything the dashboard shows.
type Stats struct {
	visitors.Summary
	TopPaths          []visitors.PathCount    `json:"top_paths"`
	RecentVisitors    []visitors.Visit        `json:"recent_visitors"`
	Subscribers       int64                   `json:"subscribers"`
	RecentSubscribers []newsletter.Subscriber `json:"recent_subscribers"`
	Messages          int64                   `json:"messages"`
	GeneratedAt       time.Time               `json:"generated_at"`
}

type SubscriberStore interface {
	Recent(ctx context.Context, limit int) ([]newsletter.Subscriber, error)
	Count(ctx context.Context) (int64, error)
	Remove(ctx context.Context, id string) error
}

type MessageCounter interface {
	Count(ctx context.Context) (int64, error)
}

type StatsService struct {
	visits      visitors.Repository
	subscribers SubscriberStore
	messages    MessageCounter
	now         func() time.Time
}

func NewStatsService(visits visitors.Repository, subscribers SubscriberStore, messages MessageCounter) *StatsService {
	return &StatsService{visits: visits, subscribers: subscribers, messages: messages, now: time.Now}
}

// Collect gathers the dashboard numbers. "Today" starts at UTC midnight and
// "this week" is the trailing seven days.
func (s *StatsService) Collect(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := now.AddDate(0, 0, -7)

	stats := &Stats{GeneratedAt: now}
	var err error

	if stats.Summary, err = s.visits.Summary(ctx, dayStart, weekStart); err != nil {
		return nil, fmt.Errorf("visitor summary: %w", err)
	}
	if stats.TopPaths, err = s.visits.TopPaths(ctx, topPathsLimit); err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	if stats.RecentVisitors, err = s.visits.Recent(ctx, recentVisitorsLimit); err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	if stats.Subscribers, err = s.subscribers.Count(ctx); err != nil {
		return nil, fmt.Errorf("subscriber count: %w", err)
	}
	if stats.RecentSubscribers, err = s.subscribers.Recent(ctx, recentSubscribersLimit); err != nil {
		return nil, fmt.Errorf("recent subscribers: %w", err)
	}
	if stats.Messages, err = s.messages.Count(ctx); err != nil {
		return nil, fmt.Errorf("message count: %w", err)
	}
	return stats, nil
}
