// Package web serves the portfolio site: full pages, HTMX fragments and the
// owner dashboard, all rendered from embedded templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/admin"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/listing"
	"github.com/Zachkp/portfolio/internal/newsletter"
	"github.com/Zachkp/portfolio/internal/platform/logger"
	"github.com/Zachkp/portfolio/internal/ratelimit"
	"github.com/Zachkp/portfolio/internal/visitors"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Deps are the collaborators the site needs. Tracker, Admin and Limiter are optional.
type Deps struct {
	Content    *content.Content
	Projects   listing.Fetcher
	Newsletter *newsletter.Service
	Contact    *contact.Service
	Tracker    *visitors.Tracker
	Admin      *admin.Handler
	Limiter    *ratelimit.Limiter
	Log        *logger.Logger
	AppName    string
	Version    string

	// TrustedProxies may set the client address via X-Forwarded-For. None are trusted by default.
	TrustedProxies []string
}

type Server struct {
	deps   Deps
	engine *gin.Engine
}

// New builds the gin engine with every route registered.
func New(deps Deps) (*Server, error) {
	if deps.Content == nil {
		return nil, fmt.Errorf("web: content is required")
	}
	if deps.Projects == nil {
		return nil, fmt.Errorf("web: project fetcher is required")
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{deps: deps}

	r := gin.New()
	if err := r.SetTrustedProxies(deps.TrustedProxies); err != nil {
		return nil, fmt.Errorf("web: trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), requestID(), deps.Log.Middleware())
	if deps.Tracker != nil {
		r.Use(deps.Tracker.Middleware())
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("web: static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	s.routes(r)
	s.engine = r
	return s, nil
}

// Handler exposes the engine for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.home)
	r.GET("/about", s.about)
	r.GET("/projects", s.projectsPage)
	r.GET("/projects/list", s.projectsList)
	r.POST("/theme", s.toggleTheme)
	r.GET("/privacy", s.privacy)
	r.GET("/health", s.health)

	r.GET("/contact", s.contactPage)
	r.GET("/contact-form", s.contactForm)

	newsletterHandlers := []gin.HandlerFunc{}
	contactHandlers := []gin.HandlerFunc{}
	if s.deps.Limiter != nil {
		newsletterHandlers = append(newsletterHandlers, s.deps.Limiter.Middleware(s.alertLimited("newsletter-result.html")))
		contactHandlers = append(contactHandlers, s.deps.Limiter.Middleware(s.alertLimited("contact-error.html")))
	}
	r.POST("/newsletter", append(newsletterHandlers, s.subscribe)...)
	r.POST("/contact", append(contactHandlers, s.submitContact)...)

	if s.deps.Admin != nil {
		s.deps.Admin.Register(r)
	}

	r.NoRoute(s.notFound)
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	return tmpl, nil
}
