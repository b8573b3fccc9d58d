package mail

import (
	"context"
	"fmt"
	"net/mail"
	"net/smtp"

	"github.com/pixelvide/mailtap/pkg/config"
)

// SMTPMailer implements Mailer using net/smtp
type SMTPMailer struct {
	cfg config.MailConfig
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send sends the given message over a single blocking SMTP connection.
// The connection is plaintext; PLAIN auth is used only when both
// username and password are configured.
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	addr := m.cfg.Addr()

	// Default the From address on a copy; the caller's message stays untouched
	out := *msg
	if out.From == "" && m.cfg.FromAddress != "" {
		out.From = m.cfg.FromAddress
		if m.cfg.FromName != "" {
			out.From = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromAddress)
		}
	}

	body, err := buildEmailBody(&out)
	if err != nil {
		return fmt.Errorf("failed to build email body: %w", err)
	}

	var auth smtp.Auth
	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	fromAddr, err := parseEmailAddress(out.From)
	if err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}

	recipients := getAllRecipients(&out)
	if len(recipients) == 0 {
		return fmt.Errorf("message has no recipients")
	}

	// smtp.SendMail handles STARTTLS automatically if the server supports it;
	// against a plain local listener it stays unencrypted.
	return smtp.SendMail(addr, auth, fromAddr, recipients, body)
}

func getAllRecipients(msg *Message) []string {
	recipients := make([]string, 0, len(msg.To)+len(msg.Cc)+len(msg.Bcc))
	recipients = append(recipients, msg.To...)
	recipients = append(recipients, msg.Cc...)
	recipients = append(recipients, msg.Bcc...)
	return recipients
}

// parseEmailAddress extracts the address part using net/mail
func parseEmailAddress(input string) (string, error) {
	addr, err := mail.ParseAddress(input)
	if err != nil {
		// If input is just "foo@bar.com" it works.
		// If input is "Name <foo@bar.com>" it works.
		return "", err
	}
	return addr.Address, nil
}
