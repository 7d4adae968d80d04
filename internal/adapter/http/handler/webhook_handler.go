package handler

import (
	"context"
	"io"
	"time"

	"storefront-events/internal/core/domain"
	"storefront-events/internal/core/ports"
	"storefront-events/pkg/apperror"
	"storefront-events/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderSignature carries the provider's timestamped HMAC signature.
const HeaderSignature = "Webhook-Signature"

// WebhookHandler handles the inbound event ingest route.
type WebhookHandler struct {
	dispatcher ports.Dispatcher
	verifier   ports.SignatureVerifier
	timeout    time.Duration
	log        zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler. timeout bounds one delivery
// end to end.
func NewWebhookHandler(dispatcher ports.Dispatcher, verifier ports.SignatureVerifier, timeout time.Duration, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		dispatcher: dispatcher,
		verifier:   verifier,
		timeout:    timeout,
		log:        log,
	}
}

// Receive handles POST /webhook. The body must be read raw: the signature is
// computed over the exact bytes the provider sent.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Reject(c, apperror.ErrMalformedPayload(err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	outcome := h.dispatcher.Dispatch(ctx, body, c.GetHeader(HeaderSignature))

	switch outcome.Status {
	case ports.OutcomeProcessed, ports.OutcomeIgnored, ports.OutcomeDuplicate:
		response.Ack(c)
	case ports.OutcomeFailed:
		switch outcome.Class {
		case ports.FailureFatal:
			response.Reject(c, outcome.Err)
		case ports.FailureRecoverable, ports.FailureCritical:
			// The event itself was valid; the provider must not redeliver it.
			response.Ack(c)
		default:
			response.Reject(c, outcome.Err)
		}
	default:
		response.Ack(c)
	}
}

// Introspect handles GET /webhook: static configuration, no side effects.
func (h *WebhookHandler) Introspect(c *gin.Context) {
	response.OK(c, gin.H{
		"signing_secret_configured": h.verifier.SecretConfigured(),
		"handled_event_types":       domain.HandledEventTypes(),
	})
}
