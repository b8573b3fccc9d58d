package console

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pixelvide/mailtap/pkg/config"
	"github.com/pixelvide/mailtap/pkg/root"
	"github.com/pixelvide/mailtap/pkg/telemetry"
	"github.com/pixelvide/mailtap/pkg/webhook"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var webhookPort int

var webhookCmd = &cobra.Command{
	Use:   "webhook:listen",
	Short: "Run the webhook debug server",
	Run: func(cmd *cobra.Command, args []string) {
		telemetry.SetGlobalLogger()

		tp, err := telemetry.InitTracer("mailtap-webhook")
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
		if cmd.Flags().Changed("port") {
			cfg.Webhook.Port = webhookPort
		}

		srv := webhook.NewServer(cfg.Webhook, tp.Tracer("webhook"))

		// Run with graceful shutdown
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle SIGINT/SIGTERM
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-c
			log.Info().Msg("Shutting down webhook server...")
			cancel()
		}()

		if err := srv.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("Webhook server failed")
		}
		log.Info().Msg("Webhook server stopped.")
	},
}

func init() {
	webhookCmd.Flags().IntVar(&webhookPort, "port", 3009, "Port to listen on")

	root.GetRoot().AddCommand(webhookCmd)
}
