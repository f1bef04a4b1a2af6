package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/momentum-hq/momentum-backend/pkg/config"
)

// SMTPMailer sends plain-text notification mail over SMTP
type SMTPMailer struct {
	host      string
	port      string
	username  string
	password  string
	from      string
	recipient string
}

// NewSMTPMailer creates a mailer using the provided config
func NewSMTPMailer(cfg *config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Username,
		password:  cfg.Password,
		from:      cfg.From,
		recipient: cfg.NotifyRecipient,
	}
}

// SummaryReady sends the summary-ready notification to the configured
// recipient. A missing recipient is a silent no-op so deployments without
// mail configured keep working.
func (m *SMTPMailer) SummaryReady(meetingID, meetingTitle string) error {
	if m.recipient == "" {
		return nil
	}
	return m.send(m.recipient, meetingID, meetingTitle)
}

// SendSummaryReady notifies a recipient that a meeting summary is available
func (m *SMTPMailer) SendSummaryReady(to, meetingTitle string) error {
	return m.send(to, "", meetingTitle)
}

func (m *SMTPMailer) send(to, meetingID, meetingTitle string) error {
	if m.host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	subject := fmt.Sprintf("Summary ready: %s", meetingTitle)
	body := fmt.Sprintf("The structured summary for %q has been generated and is available in Momentum.", meetingTitle)
	if meetingID != "" {
		body += fmt.Sprintf("\r\n\r\nMeeting ID: %s", meetingID)
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
