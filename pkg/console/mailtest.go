package console

import (
	"context"
	"time"

	"github.com/pixelvide/mailtap/pkg/config"
	"github.com/pixelvide/mailtap/pkg/mail"
	"github.com/pixelvide/mailtap/pkg/probe"
	"github.com/pixelvide/mailtap/pkg/root"
	"github.com/pixelvide/mailtap/pkg/telemetry"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	mailTo     string
	mailAltTo  string
	mailHost   string
	mailPort   string
	mailFrom   string
	mailDriver string
	sendDelay  time.Duration
)

var mailTestCmd = &cobra.Command{
	Use:   "mail:test",
	Short: "Send a fixed sequence of test emails to the local mail server",
	Run: func(cmd *cobra.Command, args []string) {
		telemetry.SetGlobalLogger()

		tp, err := telemetry.InitTracer("mailtap-sender")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Error().Err(err).Msg("Error shutting down tracer")
			}
		}()

		cfg, err := config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		// Flags override the environment
		if cmd.Flags().Changed("host") {
			cfg.Mail.Host = mailHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Mail.Port = mailPort
		}
		if cmd.Flags().Changed("from") {
			cfg.Mail.FromAddress = mailFrom
		}
		if cmd.Flags().Changed("mailer") {
			cfg.Mail.Mailer = mailDriver
		}

		mailer, err := mail.NewMailer(cfg.Mail)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create mailer")
		}

		ctx := log.Logger.WithContext(cmd.Context())

		log.Info().
			Str("addr", cfg.Mail.Addr()).
			Str("mailer", cfg.Mail.Mailer).
			Msg("Sending test emails to mail server...")

		runner := probe.NewRunner(mailer, sendDelay, mailTo, mailAltTo, tp.Tracer("probe"))
		results := runner.Run(ctx)

		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
		}
		log.Info().
			Int("sent", len(results)-failed).
			Int("failed", failed).
			Msg("Done! Check the mail server inbox.")
	},
}

func init() {
	mailTestCmd.Flags().StringVar(&mailTo, "to", "test@example.com", "Primary test recipient")
	mailTestCmd.Flags().StringVar(&mailAltTo, "alt-to", "another@example.com", "Secondary recipient, exercises a second inbox")
	mailTestCmd.Flags().StringVar(&mailHost, "host", "localhost", "SMTP server host")
	mailTestCmd.Flags().StringVar(&mailPort, "port", "2525", "SMTP server port")
	mailTestCmd.Flags().StringVar(&mailFrom, "from", "test-sender@example.com", "Envelope from address")
	mailTestCmd.Flags().StringVar(&mailDriver, "mailer", "smtp", "Mailer driver (smtp or log)")
	mailTestCmd.Flags().DurationVar(&sendDelay, "delay", time.Second, "Delay between sends")

	root.GetRoot().AddCommand(mailTestCmd)
}
