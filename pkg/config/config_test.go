package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "smtp", cfg.Mail.Mailer)
	assert.Equal(t, "localhost", cfg.Mail.Host)
	assert.Equal(t, "2525", cfg.Mail.Port)
	assert.Equal(t, "test-sender@example.com", cfg.Mail.FromAddress)
	assert.Empty(t, cfg.Mail.Username)
	assert.Equal(t, 3009, cfg.Webhook.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAIL_HOST", "mail.internal")
	t.Setenv("MAIL_PORT", "25")
	t.Setenv("MAIL_MAILER", "log")
	t.Setenv("WEBHOOK_PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "log", cfg.Mail.Mailer)
	assert.Equal(t, "mail.internal", cfg.Mail.Host)
	assert.Equal(t, "25", cfg.Mail.Port)
	assert.Equal(t, 8080, cfg.Webhook.Port)
}

func TestMailConfig_Addr(t *testing.T) {
	cfg := MailConfig{Host: "localhost", Port: "2525"}
	assert.Equal(t, "localhost:2525", cfg.Addr())
}
