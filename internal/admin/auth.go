// Package admin is the owner-only dashboard: a signed session cookie, site
// statistics, and a few maintenance actions.
package admin

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/platform/logger"
)

const (
	CookieName = "admin_token"
	CookiePath = "/admin"

	defaultUsername = "admin"
	defaultPassword = "admin123"
	issuer          = "portfolio-admin"
)

// Authenticator checks owner credentials and issues session tokens.
type Authenticator struct {
	username string
	password string
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthenticator falls back to development credentials when none are
// configured and to a per-process signing key when ADMIN_SECRET is empty.
func NewAuthenticator(cfg config.AdminConfig, log *logger.Logger) (*Authenticator, error) {
	a := &Authenticator{
		username: cfg.Username,
		password: cfg.Password,
		ttl:      cfg.SessionTTL,
		now:      time.Now,
	}
	if a.username == "" {
		a.username = defaultUsername
		log.Warn("using default admin username, set ADMIN_USERNAME")
	}
	if a.password == "" {
		a.password = defaultPassword
		log.Warn("using default admin password, set ADMIN_PASSWORD")
	}
	if a.ttl <= 0 {
		a.ttl = 24 * time.Hour
	}

	if cfg.Secret != "" {
		a.secret = []byte(cfg.Secret)
	} else {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("generate admin secret: %w", err)
		}
		a.secret = []byte(hex.EncodeToString(buf))
		log.Info("admin sessions signed with a per-process key, they end on restart")
	}
	return a, nil
}

func (a *Authenticator) TTL() time.Duration {
	return a.ttl
}

// Login returns a signed session token for valid credentials.
func (a *Authenticator) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	now := a.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   a.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, issuer and expiry of a session token.
func (a *Authenticator) Verify(tokenString string) error {
	if tokenString == "" {
		return ErrInvalidSession
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject != a.username {
		return ErrInvalidSession
	}
	return nil
}
