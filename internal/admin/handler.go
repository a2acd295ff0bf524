package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/newsletter"
	"github.com/Zachkp/portfolio/internal/platform/logger"
	"github.com/Zachkp/portfolio/internal/visitors"
)

const listLimit = 200

// Purger removes expired analytics rows.
type Purger interface {
	Purge(ctx context.Context) (int64, error)
}

type Handler struct {
	auth        *Authenticator
	stats       *StatsService
	visits      visitors.Repository
	subscribers SubscriberStore
	purger      Purger
	hasher      *visitors.Hasher
	log         *logger.Logger
}

func NewHandler(auth *Authenticator, stats *StatsService, visits visitors.Repository, subscribers SubscriberStore, purger Purger, hasher *visitors.Hasher, log *logger.Logger) *Handler {
	return &Handler{
		auth:        auth,
		stats:       stats,
		visits:      visits,
		subscribers: subscribers,
		purger:      purger,
		hasher:      hasher,
		log:         log.With("component", "admin"),
	}
}

// Register mounts the login pages and the protected admin group.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/admin/login", h.loginPage)
	r.POST("/admin/login", h.login)
	r.GET("/admin/logout", h.logout)

	group := r.Group("/admin")
	group.Use(h.RequireSession())
	group.GET("", func(c *gin.Context) { c.Redirect(http.StatusFound, "/admin/dashboard") })
	group.GET("/dashboard", h.dashboard)
	group.GET("/api/stats", h.apiStats)
	group.GET("/visitors", h.visitorList)
	group.GET("/subscribers", h.subscriberList)
	group.DELETE("/subscribers/:id", h.deleteSubscriber)
	group.POST("/privacy/cleanup", h.cleanup)
	group.GET("/export/stats", h.exportStats)
}

// RequireSession redirects to the login page unless the session cookie verifies.
func (h *Handler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(CookieName)
		if err := h.auth.Verify(token); err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{
		"title": "Admin Login",
	})
}

func (h *Handler) login(c *gin.Context) {
	token, err := h.auth.Login(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		h.log.Warn("failed admin login", "client", h.hasher.Hash(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(h.auth.TTL().Seconds()), CookiePath, "", c.Request.TLS != nil, true)
	h.log.Info("admin login", "client", h.hasher.Hash(c.ClientIP()))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, CookiePath, "", c.Request.TLS != nil, true)
	h.log.Info("admin logout", "client", h.hasher.Hash(c.ClientIP()))
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *Handler) dashboard(c *gin.Context) {
	stats, err := h.stats.Collect(c.Request.Context())
	if err != nil {
		h.log.Error("load admin stats", "error", err)
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
			"title": "Admin",
			"error": "Failed to load statistics",
		})
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"title": "Dashboard",
		"stats": stats,
	})
}

func (h *Handler) apiStats(c *gin.Context) {
	stats, err := h.stats.Collect(c.Request.Context())
	if err != nil {
		h.log.Error("load admin stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) visitorList(c *gin.Context) {
	visits, err := h.visits.Recent(c.Request.Context(), listLimit)
	if err != nil {
		h.log.Error("load visitors", "error", err)
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
			"title": "Admin",
			"error": "Failed to load visitors",
		})
		return
	}
	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
		"title":    "Visitors",
		"visitors": visits,
	})
}

func (h *Handler) subscriberList(c *gin.Context) {
	subs, err := h.subscribers.Recent(c.Request.Context(), listLimit)
	if err != nil {
		h.log.Error("load subscribers", "error", err)
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
			"title": "Admin",
			"error": "Failed to load subscribers",
		})
		return
	}
	c.HTML(http.StatusOK, "admin-subscribers.html", gin.H{
		"title":       "Subscribers",
		"subscribers": subs,
	})
}

func (h *Handler) deleteSubscriber(c *gin.Context) {
	id := c.Param("id")
	err := h.subscribers.Remove(c.Request.Context(), id)
	if errors.Is(err, newsletter.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		return
	}
	if err != nil {
		h.log.Error("delete subscriber", "subscriber_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscriber"})
		return
	}
	h.log.Info("subscriber deleted", "subscriber_id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deleted successfully"})
}

func (h *Handler) cleanup(c *gin.Context) {
	removed, err := h.purger.Purge(c.Request.Context())
	if err != nil {
		h.log.Error("privacy cleanup", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": removed})
}

func (h *Handler) exportStats(c *gin.Context) {
	stats, err := h.stats.Collect(c.Request.Context())
	if err != nil {
		h.log.Error("export admin stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	h.log.Info("admin stats exported", "client", h.hasher.Hash(c.ClientIP()))
	c.JSON(http.StatusOK, stats)
}
