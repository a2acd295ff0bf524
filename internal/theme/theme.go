// Package theme resolves the light/dark mode of a single request. The mode is
// kept in a cookie and handed to templates explicitly; nothing here is global.
package theme

import (
	"net/http"
	"time"
)

// CookieName stores the visitor's chosen mode.
const CookieName = "theme"

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Palette is the set of colours a mode renders with.
type Palette struct {
	Primary       string
	Secondary     string
	Background    string
	Paper         string
	TextPrimary   string
	TextSecondary string
}

var palettes = map[Mode]Palette{
	Light: {
		Primary:       "#1976d2",
		Secondary:     "#f6a560",
		Background:    "#f4f6f8",
		Paper:         "#fff",
		TextPrimary:   "#1e1e1e",
		TextSecondary: "#555",
	},
	Dark: {
		Primary:       "#90caf9",
		Secondary:     "#f6a560",
		Background:    "#121212",
		Paper:         "#1e1e1e",
		TextPrimary:   "#eee",
		TextSecondary: "#bbb",
	},
}

// Parse maps a raw value to a mode, defaulting to Light.
func Parse(raw string) Mode {
	if Mode(raw) == Dark {
		return Dark
	}
	return Light
}

// FromRequest reads the mode cookie.
func FromRequest(r *http.Request) Mode {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Light
	}
	return Parse(c.Value)
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) Palette() Palette {
	return palettes[Parse(string(m))]
}

func (m Mode) IsDark() bool {
	return m == Dark
}

// Cookie builds the cookie that persists m for a year.
func (m Mode) Cookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    string(m),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
