// Package probe sends a fixed sequence of test emails for manually
// exercising a local mail server.
package probe

import (
	"context"
	"time"

	"github.com/pixelvide/mailtap/pkg/mail"
	"github.com/pixelvide/mailtap/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// sampleAttachment is the canned file sent with the attachment test
// message. The mail server under test should hand these exact bytes
// back after base64 decoding.
var sampleAttachment = mail.Attachment{
	Filename:    "sample.txt",
	ContentType: "text/plain",
	Content: []byte(`Hello! This is a sample text file attachment.

It contains some example data:
- Line 1
- Line 2
- Line 3

This demonstrates that the email server can handle attachments correctly.
`),
}

// Result records the outcome of one test send.
type Result struct {
	To      string
	Subject string
	Err     error
}

// Runner sends the test sequence one message at a time.
type Runner struct {
	Mailer mail.Mailer
	Delay  time.Duration
	To     string // primary test recipient
	AltTo  string // secondary recipient, exercises a second inbox
	tracer trace.Tracer
}

// NewRunner creates a Runner sending via the given mailer.
func NewRunner(mailer mail.Mailer, delay time.Duration, to, altTo string, tracer trace.Tracer) *Runner {
	return &Runner{
		Mailer: mailer,
		Delay:  delay,
		To:     to,
		AltTo:  altTo,
		tracer: tracer,
	}
}

// Run sends the fixed test messages sequentially with the configured
// delay between sends. A failed send is recorded and the run moves on
// to the next message; cancelling the context stops the run between
// sends. The returned slice holds one Result per attempted message.
func (r *Runner) Run(ctx context.Context) []Result {
	messages := []*mail.Message{
		{
			To:      []string{r.To},
			Subject: "Welcome to Temporary Mail!",
			Body:    "This is your first test email. The server is working!",
		},
		{
			To:          []string{r.To},
			Subject:     "Second Test Email with Attachment",
			Body:        "This is another test email with an attached file. Check it out!",
			Attachments: []mail.Attachment{sampleAttachment},
		},
		{
			To:      []string{r.AltTo},
			Subject: "Email for different address",
			Body:    "This email is sent to a different address to test multiple inboxes.",
		},
	}

	results := make([]Result, 0, len(messages))
	for i, msg := range messages {
		if i > 0 && r.Delay > 0 {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(r.Delay):
			}
		}

		results = append(results, r.send(ctx, msg))

		if ctx.Err() != nil {
			return results
		}
	}

	return results
}

func (r *Runner) send(ctx context.Context, msg *mail.Message) Result {
	if r.tracer != nil {
		var span trace.Span
		ctx, span = r.tracer.Start(ctx, "probe.send",
			trace.WithAttributes(
				attribute.String("mail.to", msg.To[0]),
				attribute.String("mail.subject", msg.Subject),
			))
		defer span.End()
	}

	logger := telemetry.LoggerFromContext(ctx)
	err := r.Mailer.Send(ctx, msg)
	if err != nil {
		logger.Error().Err(err).
			Str("to", msg.To[0]).
			Str("subject", msg.Subject).
			Msg("Failed to send test email")
	} else {
		logger.Info().
			Str("to", msg.To[0]).
			Str("subject", msg.Subject).
			Msg("Test email sent")
	}

	return Result{To: msg.To[0], Subject: msg.Subject, Err: err}
}
