package probe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixelvide/mailtap/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMailer records sent messages and can fail selected subjects.
type mockMailer struct {
	sent        []*mail.Message
	failSubject string
}

func (m *mockMailer) Send(_ context.Context, msg *mail.Message) error {
	m.sent = append(m.sent, msg)
	if m.failSubject != "" && msg.Subject == m.failSubject {
		return errors.New("send failed")
	}
	return nil
}

func TestRunner_Run(t *testing.T) {
	mailer := &mockMailer{}
	runner := NewRunner(mailer, 0, "test@example.com", "another@example.com", nil)

	results := runner.Run(context.Background())

	require.Len(t, results, 3)
	for _, res := range results {
		assert.NoError(t, res.Err)
	}

	require.Len(t, mailer.sent, 3)
	assert.Equal(t, []string{"test@example.com"}, mailer.sent[0].To)
	assert.Equal(t, []string{"test@example.com"}, mailer.sent[1].To)
	assert.Equal(t, []string{"another@example.com"}, mailer.sent[2].To)

	// The second message carries the sample attachment
	require.Len(t, mailer.sent[1].Attachments, 1)
	att := mailer.sent[1].Attachments[0]
	assert.Equal(t, "sample.txt", att.Filename)
	assert.Equal(t, "text/plain", att.ContentType)
	assert.Contains(t, string(att.Content), "sample text file attachment")
}

func TestRunner_Run_ContinuesAfterFailure(t *testing.T) {
	mailer := &mockMailer{failSubject: "Welcome to Temporary Mail!"}
	runner := NewRunner(mailer, 0, "test@example.com", "another@example.com", nil)

	results := runner.Run(context.Background())

	require.Len(t, results, 3)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Len(t, mailer.sent, 3)
}

func TestRunner_Run_CancelStopsBetweenSends(t *testing.T) {
	mailer := &mockMailer{}
	runner := NewRunner(mailer, time.Hour, "test@example.com", "another@example.com", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := runner.Run(ctx)

	// The first send happens before any delay; the cancelled context
	// stops the run before the second.
	assert.Len(t, results, 1)
	assert.Len(t, mailer.sent, 1)
}
