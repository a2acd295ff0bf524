package web

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/theme"
)

func (s *Server) home(c *gin.Context) {
	s.render(c, http.StatusOK, "home.html", "Home", nil)
}

func (s *Server) about(c *gin.Context) {
	s.render(c, http.StatusOK, "about.html", "About Me", nil)
}

func (s *Server) privacy(c *gin.Context) {
	s.render(c, http.StatusOK, "privacy.html", "Privacy Policy", nil)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": s.deps.AppName,
		"version": s.deps.Version,
	})
}

// toggleTheme flips the theme cookie. HTMX callers get a full refresh so the
// new palette applies everywhere; plain form posts go back where they came from.
func (s *Server) toggleTheme(c *gin.Context) {
	next := theme.FromRequest(c.Request).Toggle()
	http.SetCookie(c.Writer, next.Cookie())

	if isHTMX(c) {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, sameSiteReferer(c.GetHeader("Referer")))
}

// sameSiteReferer keeps only the path and query of a referer so a redirect
// never leaves the site.
func sameSiteReferer(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" || u.Path[0] != '/' {
		return "/"
	}
	out := u.Path
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	return out
}
