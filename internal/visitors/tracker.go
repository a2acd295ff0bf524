package visitors

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/platform/logger"
)

const recordTimeout = 5 * time.Second

// untrackedPrefixes are never recorded.
var untrackedPrefixes = []string{"/static/", "/images/", "/admin", "/favicon", "/privacy", "/health"}

// Tracker records page views off the request path.
type Tracker struct {
	repo   Repository
	hasher *Hasher
	log    *logger.Logger
	now    func() time.Time
	wg     sync.WaitGroup
}

func NewTracker(repo Repository, hasher *Hasher, log *logger.Logger) *Tracker {
	return &Tracker{repo: repo, hasher: hasher, log: log, now: time.Now}
}

// Tracked reports whether a request should be recorded.
func Tracked(method, path, dnt string) bool {
	if method != "GET" {
		return false
	}
	if dnt == "1" {
		return false
	}
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// Middleware records GET page views. HTMX fragment requests are skipped so a
// page load counts once.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !Tracked(c.Request.Method, path, c.GetHeader("DNT")) || c.GetHeader("HX-Request") == "true" {
			c.Next()
			return
		}

		v := Visit{
			HashedIP:  t.hasher.Hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: t.now().UTC(),
		}
		t.wg.Add(1)
		go t.record(v)
		c.Next()
	}
}

func (t *Tracker) record(v Visit) {
	defer t.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := t.repo.Record(ctx, v); err != nil {
		t.log.Warn("record visit", "path", v.Path, "error", err)
	}
}

// Wait blocks until in-flight recordings finish.
func (t *Tracker) Wait() {
	t.wg.Wait()
}
