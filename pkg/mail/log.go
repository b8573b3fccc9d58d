package mail

import (
	"context"
	"fmt"

	"github.com/pixelvide/mailtap/pkg/config"
	"github.com/rs/zerolog/log"
)

// LogMailer implements Mailer by logging messages
type LogMailer struct {
	cfg config.MailConfig
}

// NewLogMailer creates a new LogMailer
func NewLogMailer(cfg config.MailConfig) *LogMailer {
	return &LogMailer{cfg: cfg}
}

// Send logs the message details
func (m *LogMailer) Send(ctx context.Context, msg *Message) error {
	// Default the From address on a copy; the caller's message stays untouched
	from := msg.From
	if from == "" && m.cfg.FromAddress != "" {
		from = m.cfg.FromAddress
		if m.cfg.FromName != "" {
			from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromAddress)
		}
	}

	logger := log.Ctx(ctx).With().
		Str("mailer", "log").
		Str("from", from).
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Logger()

	if len(msg.Cc) > 0 {
		logger = logger.With().Strs("cc", msg.Cc).Logger()
	}
	if len(msg.Bcc) > 0 {
		logger = logger.With().Strs("bcc", msg.Bcc).Logger()
	}
	if len(msg.Attachments) > 0 {
		names := make([]string, 0, len(msg.Attachments))
		for _, att := range msg.Attachments {
			names = append(names, att.Filename)
		}
		logger = logger.With().Strs("attachments", names).Logger()
	}

	logger.Info().Msg("Sending email")

	// Since this is a "log" mailer, the purpose is to see the email.
	logger.Info().Msgf("Body:\n%s", msg.Body)

	return nil
}
