package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Projects  ProjectsConfig
	Database  DatabaseConfig
	Content   ContentConfig
	SMTP      SMTPConfig
	Admin     AdminConfig
	Analytics AnalyticsConfig
	Forms     FormsConfig
	App       AppConfig
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`

	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is honoured.
	// Empty means the client address is always the peer address.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

type ProjectsConfig struct {
	APIURL       string        `env:"PROJECTS_API_URL" envDefault:"http://localhost:5000"`
	FetchTimeout time.Duration `env:"PROJECTS_FETCH_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	Path string `env:"DB_PATH" envDefault:"portfolio.db"`
}

type ContentConfig struct {
	Path string `env:"CONTENT_PATH"`
}

type SMTPConfig struct {
	Host    string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port    string `env:"SMTP_PORT" envDefault:"587"`
	User    string `env:"SMTP_USER"`
	Pass    string `env:"SMTP_PASS"`
	ToEmail string `env:"TO_EMAIL"`
}

type AdminConfig struct {
	Username   string        `env:"ADMIN_USERNAME"`
	Password   string        `env:"ADMIN_PASSWORD"`
	Secret     string        `env:"ADMIN_SECRET"`
	SessionTTL time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"24h"`
}

type AnalyticsConfig struct {
	Retention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	Schedule  string        `env:"RETENTION_SCHEDULE" envDefault:"@daily"`
	HashSalt  string        `env:"VISITOR_HASH_SALT"`
}

type FormsConfig struct {
	RatePerMinute int `env:"FORM_RATE_PER_MINUTE" envDefault:"5"`
}

type AppConfig struct {
	Name    string `env:"APP_NAME" envDefault:"portfolio"`
	LogMode string `env:"LOG_MODE" envDefault:"development"`
	Version string `env:"APP_VERSION" envDefault:"1.0.0"`
}

// Load reads an optional .env file and then parses the environment.
// A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}
	if c.Projects.FetchTimeout <= 0 {
		return errors.New("PROJECTS_FETCH_TIMEOUT must be positive")
	}
	u, err := url.Parse(c.Projects.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("PROJECTS_API_URL is not an absolute URL: %q", c.Projects.APIURL)
	}
	if c.Admin.SessionTTL <= 0 {
		return errors.New("ADMIN_SESSION_TTL must be positive")
	}
	if c.Forms.RatePerMinute <= 0 {
		return errors.New("FORM_RATE_PER_MINUTE must be positive")
	}
	if c.Analytics.Retention <= 0 {
		return errors.New("VISITOR_RETENTION must be positive")
	}
	if strings.TrimSpace(c.Analytics.Schedule) == "" {
		return errors.New("RETENTION_SCHEDULE is required")
	}
	for _, p := range c.Server.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("TRUSTED_PROXIES entry is not an IP or CIDR: %q", p)
			}
		}
	}
	return nil
}

// Configured reports whether contact mail can be sent.
func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Pass != ""
}
