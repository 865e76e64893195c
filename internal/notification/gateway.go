package notification

import (
	"fmt"
	"net/smtp"

	"auction-house/utils"
)

// Gateway delivers best-effort emails. Callers treat every error as
// non-fatal: a failed delivery is logged and never undoes the operation that
// triggered it.
type Gateway interface {
	Notify(email, subject, body string) error
}

// EmailConfig holds SMTP server settings
type EmailConfig struct {
	Host        string
	Port        string
	Username    string
	Password    string
	FromName    string
	FromAddress string
}

// SMTPGateway sends mail over a plain SMTP connection
type SMTPGateway struct {
	cfg EmailConfig
}

// NewSMTPGateway creates a gateway for the given SMTP server
func NewSMTPGateway(cfg EmailConfig) *SMTPGateway {
	return &SMTPGateway{cfg: cfg}
}

// Notify sends a single email to the given address
func (g *SMTPGateway) Notify(email, subject, body string) error {
	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		g.cfg.FromName, g.cfg.FromAddress, email, subject, body)

	addr := g.cfg.Host + ":" + g.cfg.Port
	var auth smtp.Auth
	if g.cfg.Username != "" {
		auth = smtp.PlainAuth("", g.cfg.Username, g.cfg.Password, g.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, g.cfg.FromAddress, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp gateway: send to %s: %w", email, err)
	}
	return nil
}

// LogGateway writes notifications to the application log instead of sending
// them. Used when no SMTP server is configured.
type LogGateway struct{}

// NewLogGateway creates a log-only notification gateway
func NewLogGateway() *LogGateway {
	return &LogGateway{}
}

// Notify logs the notification and always succeeds
func (g *LogGateway) Notify(email, subject, body string) error {
	utils.Info("notification", map[string]any{
		"email":   email,
		"subject": subject,
		"body":    body,
	})
	return nil
}
