package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, mode := range []string{"development", "production", "PROD", ""} {
		log, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, log.SugaredLogger)
	}
}

func TestRedactsSensitiveKeys(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromCore(core)

	log.Info("subscribed", "email", "me@example.com", "subscriber_id", "abc")
	log.With("admin_token", "xyz").Warn("login", "password", "hunter2")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "[REDACTED]", first["email"])
	assert.Equal(t, "abc", first["subscriber_id"])

	second := entries[1].ContextMap()
	assert.Equal(t, "[REDACTED]", second["admin_token"])
	assert.Equal(t, "[REDACTED]", second["password"])
}

func TestOddKeyValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	NewFromCore(core).Error("dangling", "path", "/", "orphan")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "/", logs.All()[0].ContextMap()["path"])
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromCore(core)

	router := gin.New()
	router.Use(log.Middleware())
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/boom", "/missing"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, zap.WarnLevel, entries[2].Level)
	assert.EqualValues(t, http.StatusNotFound, entries[2].ContextMap()["status"])
}
