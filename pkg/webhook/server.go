// Package webhook implements a debug endpoint that echoes posted JSON
// payloads to the console for inspection.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/pixelvide/mailtap/pkg/config"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// response is the JSON body returned for every request, success or error.
type response struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Server accepts POST requests on any path, logs the decoded JSON
// payload, and acknowledges with a canned JSON response. Requests are
// handled strictly one at a time.
type Server struct {
	cfg    config.WebhookConfig
	tracer trace.Tracer

	mu sync.Mutex // serializes request handling
}

// NewServer creates a webhook debug server.
func NewServer(cfg config.WebhookConfig, tracer trace.Tracer) *Server {
	return &Server{cfg: cfg, tracer: tracer}
}

// Run serves until the context is cancelled, then shuts down cleanly.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Info().Int("port", s.cfg.Port).Msg("Webhook debug server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("webhook server shutdown: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("webhook server: %w", err)
		}
		return nil
	}
}

// ServeHTTP handles a single webhook delivery. Each request is fully
// processed before the next one is admitted.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := log.Logger.WithContext(r.Context())
	if s.tracer != nil {
		var span trace.Span
		ctx, span = s.tracer.Start(ctx, "webhook.receive",
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			))
		defer span.End()

		// Stamp log lines with the span's trace id so console output
		// can be matched against the exported spans.
		ctx = log.Ctx(ctx).With().
			Str("trace_id", span.SpanContext().TraceID().String()).
			Logger().WithContext(ctx)
	}
	logger := log.Ctx(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Any("panic", rec).Str("path", r.URL.Path).Msg("Unexpected error handling webhook")
			writeResponse(w, http.StatusInternalServerError, response{
				Status:  "error",
				Message: fmt.Sprintf("server error: %v", rec),
			})
		}
	}()

	if r.Method != http.MethodPost {
		writeResponse(w, http.StatusMethodNotAllowed, response{
			Status:  "error",
			Message: fmt.Sprintf("method %s not allowed, use POST", r.Method),
		})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("Failed to read webhook body")
		writeResponse(w, http.StatusInternalServerError, response{
			Status:  "error",
			Message: fmt.Sprintf("server error: %v", err),
		})
		return
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("Failed to parse webhook JSON")
		writeResponse(w, http.StatusBadRequest, response{
			Status:  "error",
			Message: fmt.Sprintf("invalid JSON: %v", err),
		})
		return
	}

	s.logDelivery(ctx, r, payload)

	writeResponse(w, http.StatusOK, response{
		Status:  "success",
		Message: "Webhook received successfully",
	})
}

// logDelivery prints the received webhook for visual inspection.
func (s *Server) logDelivery(ctx context.Context, r *http.Request, payload any) {
	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		pretty = []byte(fmt.Sprintf("%v", payload))
	}

	headers := make(map[string]string, len(r.Header))
	for key := range r.Header {
		headers[key] = r.Header.Get(key)
	}

	logger := log.Ctx(ctx)
	logger.Info().
		Time("received_at", time.Now()).
		Str("path", r.URL.Path).
		Any("headers", headers).
		Msg("Webhook received")
	logger.Info().Msgf("Payload:\n%s", pretty)
}

func writeResponse(w http.ResponseWriter, status int, resp response) {
	resp.Timestamp = time.Now().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("Failed to write webhook response")
	}
}
