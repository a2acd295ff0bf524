package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Zachkp/portfolio/internal/config"
)

// SMTPSender mails contact messages to the site owner.
type SMTPSender struct {
	cfg      config.SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if !s.cfg.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := s.cfg.ToEmail
	if to == "" {
		to = s.cfg.User
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	if err := s.sendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{to}, compose(s.cfg.User, to, m)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func compose(from, to string, m Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(m.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Body)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe(m.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe strips line breaks so visitor input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
