package web

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/present"
	"github.com/Zachkp/portfolio/internal/theme"
)

const requestIDHeader = "X-Request-ID"

var funcMap = template.FuncMap{
	"truncate": present.Truncate,
	"progress": present.Progress,
	"skills":   present.SkillsOrDefault,
	"domID":    present.DomID,
	"cardText": func(s string) present.Excerpt {
		return present.Truncate(s, present.CardDescriptionLimit)
	},
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
	"stamp": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
	"join": strings.Join,
}

// pageData is the data every full page needs: site copy, theme and the
// active path for the nav.
func (s *Server) pageData(c *gin.Context, title string, extra gin.H) gin.H {
	mode := theme.FromRequest(c.Request)
	data := gin.H{
		"title":   title,
		"site":    s.deps.Content,
		"theme":   mode,
		"palette": mode.Palette(),
		"path":    c.Request.URL.Path,
		"year":    time.Now().Year(),
		"appName": s.deps.AppName,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (s *Server) render(c *gin.Context, status int, name, title string, extra gin.H) {
	c.HTML(status, name, s.pageData(c, title, extra))
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// requestID tags each request with an id, reusing one the client sent.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) notFound(c *gin.Context) {
	s.render(c, http.StatusNotFound, "404.html", "Page Not Found", nil)
}
