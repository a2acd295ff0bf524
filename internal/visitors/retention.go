package visitors

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Zachkp/portfolio/internal/platform/logger"
)

// Retention purges visits older than a fixed window.
type Retention struct {
	repo   Repository
	window time.Duration
	log    *logger.Logger
	now    func() time.Time
}

func NewRetention(repo Repository, window time.Duration, log *logger.Logger) *Retention {
	return &Retention{repo: repo, window: window, log: log, now: time.Now}
}

// Purge deletes visits older than the window and returns how many went.
func (r *Retention) Purge(ctx context.Context) (int64, error) {
	cutoff := r.now().UTC().Add(-r.window)
	n, err := r.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge visits: %w", err)
	}
	if n > 0 {
		r.log.Info("privacy cleanup", "removed", n, "cutoff", cutoff)
	}
	return n, nil
}

// Schedule registers Purge on c with the given cron spec.
func (r *Retention) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	id, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := r.Purge(ctx); err != nil {
			r.log.Error("scheduled privacy cleanup", "error", err)
		}
	})
	if err != nil {
		return 0, fmt.Errorf("schedule retention %q: %w", spec, err)
	}
	return id, nil
}
