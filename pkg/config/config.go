package config

// Config holds the full mailtap configuration.
type Config struct {
	Mail    MailConfig
	Webhook WebhookConfig
}

// MailConfig holds configuration for the outbound mail channel
type MailConfig struct {
	Mailer      string `env:"MAIL_MAILER" envDefault:"smtp"`
	Host        string `env:"MAIL_HOST" envDefault:"localhost"`
	Port        string `env:"MAIL_PORT" envDefault:"2525"`
	Username    string `env:"MAIL_USERNAME"`
	Password    string `env:"MAIL_PASSWORD"`
	FromAddress string `env:"MAIL_FROM_ADDRESS" envDefault:"test-sender@example.com"`
	FromName    string `env:"MAIL_FROM_NAME"`
}

// WebhookConfig holds configuration for the webhook debug listener
type WebhookConfig struct {
	Port int `env:"WEBHOOK_PORT" envDefault:"3009"`
}

// Addr returns the SMTP host:port pair.
func (c MailConfig) Addr() string {
	return c.Host + ":" + c.Port
}
