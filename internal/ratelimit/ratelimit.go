// Package ratelimit throttles form submissions per client.
package ratelimit

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const LimitedMessage = "Too many submissions. Please wait a minute and try again."

var ErrRateLimited = errors.New("rate limited")

// idleTTL is how long an untouched visitor entry is kept.
const idleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter hands out one token bucket per key.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// PerMinute allows n events per minute per key, bursting up to n.
func PerMinute(n int) *Limiter {
	if n < 1 {
		n = 1
	}
	return &Limiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(n)),
		burst:    n,
		now:      time.Now,
	}
}

// Allow consumes a token for key and reports whether one was available.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(now)

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Len reports how many keys are tracked.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

func (l *Limiter) evict(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > idleTTL {
			delete(l.visitors, key)
		}
	}
}

// Middleware rejects requests over the limit, keyed by client IP and route so
// each form has its own budget. onLimited writes the rejection; when it is nil
// a JSON 429 is written.
func (l *Limiter) Middleware(onLimited gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.Allow(c.ClientIP() + " " + c.FullPath()) {
			c.Next()
			return
		}
		_ = c.Error(ErrRateLimited)
		if onLimited != nil {
			onLimited(c)
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": LimitedMessage})
	}
}
