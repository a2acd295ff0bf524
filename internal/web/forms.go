package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/newsletter"
	"github.com/Zachkp/portfolio/internal/ratelimit"
)

// subscribe answers the footer form with an alert fragment.
func (s *Server) subscribe(c *gin.Context) {
	if s.deps.Newsletter == nil {
		c.HTML(http.StatusOK, "newsletter-result.html", gin.H{"error": newsletter.FailureMessage})
		return
	}

	_, err := s.deps.Newsletter.Subscribe(c.Request.Context(), c.PostForm("email"))
	switch {
	case errors.Is(err, newsletter.ErrInvalidEmail):
		c.HTML(http.StatusOK, "newsletter-result.html", gin.H{"error": newsletter.InvalidEmailMessage})
	case err != nil:
		s.deps.Log.Error("newsletter subscribe", "error", err)
		c.HTML(http.StatusOK, "newsletter-result.html", gin.H{"error": newsletter.FailureMessage})
	default:
		c.HTML(http.StatusOK, "newsletter-result.html", gin.H{"success": newsletter.SuccessMessage})
	}
}

func (s *Server) contactPage(c *gin.Context) {
	s.render(c, http.StatusOK, "contact.html", "Contact Me", nil)
}

// contactForm returns just the form so HTMX can reset it after a send.
func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", gin.H{
		"title": "Contact Me",
	})
}

func (s *Server) submitContact(c *gin.Context) {
	if s.deps.Contact == nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contact.FailureMessage})
		return
	}

	_, err := s.deps.Contact.Submit(c.Request.Context(),
		c.PostForm("fullName"),
		c.PostForm("email"),
		c.PostForm("message"),
	)
	switch {
	case errors.Is(err, contact.ErrInvalidMessage):
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contact.InvalidMessage})
	case err != nil:
		s.deps.Log.Error("contact submit", "error", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contact.FailureMessage})
	default:
		c.HTML(http.StatusOK, "contact-success.html", gin.H{"success": contact.SuccessMessage})
	}
}

// alertLimited renders the rate limit notice with the given alert template.
// The status stays 200 because HTMX does not swap error responses.
func (s *Server) alertLimited(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, gin.H{"error": ratelimit.LimitedMessage})
	}
}
