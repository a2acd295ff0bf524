package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	l := PerMinute(2)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"), "burst exhausted")
	assert.True(t, l.Allow("b"), "keys are independent")

	now = now.Add(30 * time.Second)
	assert.True(t, l.Allow("a"), "one token refills every 30s")
	assert.False(t, l.Allow("a"))
}

func TestEvictIdle(t *testing.T) {
	l := PerMinute(1)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.Len())

	now = now.Add(idleTTL + time.Second)
	l.Allow("c")
	assert.Equal(t, 1, l.Len())
}

func TestPerMinuteFloor(t *testing.T) {
	l := PerMinute(0)
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default response", func(t *testing.T) {
		r := gin.New()
		r.POST("/f", PerMinute(1).Middleware(nil), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		codes := make([]int, 0, 2)
		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/f", nil))
			codes = append(codes, w.Code)
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("custom response", func(t *testing.T) {
		r := gin.New()
		limited := func(c *gin.Context) { c.String(http.StatusTooManyRequests, "slow down") }
		r.POST("/f", PerMinute(1).Middleware(limited), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/f", nil))
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/f", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "slow down", w.Body.String())
	})
}
