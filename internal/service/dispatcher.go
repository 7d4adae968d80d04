package service

import (
	"context"
	"fmt"
	"time"

	"storefront-events/internal/core/domain"
	"storefront-events/internal/core/ports"
	"storefront-events/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventDispatcher implements ports.Dispatcher: the full pipeline for one
// inbound delivery. Verify, decode, ledger, route. It owns the idempotency
// check so no handler ever sees a duplicate.
type EventDispatcher struct {
	verifier     ports.SignatureVerifier
	decoder      ports.EventDecoder
	encSvc       ports.EncryptionService
	dedupe       ports.DedupeCache
	ledger       ports.EventLedger
	txHandler    ports.TransactionHandler
	subHandler   ports.SubscriptionHandler
	fraudHandler ports.FraudHandler
	alerter      ports.Alerter
	dedupeTTL    time.Duration
	log          zerolog.Logger
}

// NewEventDispatcher creates a new EventDispatcher.
func NewEventDispatcher(
	verifier ports.SignatureVerifier,
	decoder ports.EventDecoder,
	encSvc ports.EncryptionService,
	dedupe ports.DedupeCache,
	ledger ports.EventLedger,
	txHandler ports.TransactionHandler,
	subHandler ports.SubscriptionHandler,
	fraudHandler ports.FraudHandler,
	alerter ports.Alerter,
	dedupeTTL time.Duration,
	log zerolog.Logger,
) *EventDispatcher {
	return &EventDispatcher{
		verifier:     verifier,
		decoder:      decoder,
		encSvc:       encSvc,
		dedupe:       dedupe,
		ledger:       ledger,
		txHandler:    txHandler,
		subHandler:   subHandler,
		fraudHandler: fraudHandler,
		alerter:      alerter,
		dedupeTTL:    dedupeTTL,
		log:          log,
	}
}

// Dispatch processes one delivery end to end and returns the outcome the
// HTTP layer maps to a status code.
func (d *EventDispatcher) Dispatch(ctx context.Context, body []byte, sigHeader string) ports.Outcome {
	if err := d.verifier.Verify(body, sigHeader); err != nil {
		d.log.Warn().Err(err).Msg("signature verification failed")
		return ports.Fatal(err)
	}

	ev, err := d.decoder.Decode(body)
	if err != nil {
		d.log.Warn().Err(err).Msg("payload decode failed")
		return ports.Fatal(err)
	}

	if ev.Type == domain.EventNoOp {
		d.log.Debug().Str("event_id", ev.ID).Msg("unhandled event type acknowledged")
		return ports.Ignored()
	}

	fresh, outcome := d.recordOnce(ctx, ev, body)
	if !fresh {
		return outcome
	}

	outcome = d.route(ctx, ev)

	logEv := d.log.Info()
	if outcome.Status == ports.OutcomeFailed {
		logEv = d.log.Error().Err(outcome.Err).Str("class", string(outcome.Class))
	}
	logEv.
		Str("event_id", ev.ID).
		Str("event_type", string(ev.Type)).
		Str("outcome", string(outcome.Status)).
		Msg("event dispatched")

	if outcome.Status == ports.OutcomeFailed && outcome.Class == ports.FailureCritical {
		d.escalate(ctx, ev, outcome.Err)
	}
	return outcome
}

// recordOnce runs the two-layer idempotency check: the Redis fast path, then
// the ledger insert that is the single point of serialization. The cache
// marker is written only after the ledger insert succeeds; a rejected insert
// attempt must stay invisible to the cache so the provider's retry is
// processed, not swallowed as a duplicate. Returns fresh=false with the
// outcome to return when the event must not be routed.
func (d *EventDispatcher) recordOnce(ctx context.Context, ev *domain.Event, body []byte) (bool, ports.Outcome) {
	if d.dedupe != nil {
		seen, err := d.dedupe.Seen(ctx, ev.ID)
		if err != nil {
			// The cache is an optimization; the ledger below still guards
			// correctness when Redis is down.
			d.log.Warn().Err(err).Str("event_id", ev.ID).Msg("dedupe cache unavailable")
		} else if seen {
			d.log.Info().Str("event_id", ev.ID).Msg("duplicate delivery (cache)")
			return false, ports.Duplicate()
		}
	}

	payloadEnc, err := d.encSvc.Encrypt(string(body))
	if err != nil {
		return false, ports.Internal(apperror.ErrEncryptionFailure(err))
	}

	record := &domain.PaymentEvent{
		ID:             uuid.New(),
		EventID:        ev.ID,
		Type:           ev.Type,
		PayloadEnc:     payloadEnc,
		SignatureValid: true,
		ReceivedAt:     time.Now().UTC(),
	}
	inserted, err := d.ledger.InsertIfAbsent(ctx, record)
	if err != nil {
		return false, ports.Internal(fmt.Errorf("recording event: %w", err))
	}

	if d.dedupe != nil {
		// Best effort: the marker serves both the fresh and the duplicate row.
		if err := d.dedupe.MarkSeen(ctx, ev.ID, d.dedupeTTL); err != nil {
			d.log.Warn().Err(err).Str("event_id", ev.ID).Msg("dedupe cache mark failed")
		}
	}

	if !inserted {
		d.log.Info().Str("event_id", ev.ID).Msg("duplicate delivery (ledger)")
		return false, ports.Duplicate()
	}
	return true, ports.Outcome{}
}

func (d *EventDispatcher) route(ctx context.Context, ev *domain.Event) ports.Outcome {
	switch ev.Type {
	case domain.EventPaymentProcessing:
		return d.txHandler.HandlePaymentProcessing(ctx, ev)
	case domain.EventPaymentSucceeded:
		return d.txHandler.HandlePaymentSucceeded(ctx, ev)
	case domain.EventPaymentFailed:
		return d.txHandler.HandlePaymentFailed(ctx, ev)
	case domain.EventPaymentCanceled:
		return d.txHandler.HandlePaymentCanceled(ctx, ev)
	case domain.EventChargeRefunded:
		return d.txHandler.HandleChargeRefunded(ctx, ev)
	case domain.EventDisputeCreated:
		return d.txHandler.HandleDisputeCreated(ctx, ev)
	case domain.EventDisputeClosed:
		return d.txHandler.HandleDisputeClosed(ctx, ev)
	case domain.EventCheckoutCompleted:
		return d.subHandler.HandleCheckoutCompleted(ctx, ev)
	case domain.EventSubscriptionCreated:
		return d.subHandler.HandleSubscriptionCreated(ctx, ev)
	case domain.EventSubscriptionUpdated:
		return d.subHandler.HandleSubscriptionUpdated(ctx, ev)
	case domain.EventSubscriptionDeleted:
		return d.subHandler.HandleSubscriptionDeleted(ctx, ev)
	case domain.EventInvoiceSucceeded:
		return d.subHandler.HandleInvoiceSucceeded(ctx, ev)
	case domain.EventInvoiceFailed:
		return d.subHandler.HandleInvoiceFailed(ctx, ev)
	case domain.EventReviewOpened:
		return d.fraudHandler.HandleReviewOpened(ctx, ev)
	case domain.EventReviewClosed:
		return d.fraudHandler.HandleReviewClosed(ctx, ev)
	case domain.EventFraudWarning:
		return d.fraudHandler.HandleFraudWarning(ctx, ev)
	default:
		return ports.Ignored()
	}
}

// escalate pushes a critical failure to the operator channel. Alert delivery
// failure is logged; there is nothing further to fall back to.
func (d *EventDispatcher) escalate(ctx context.Context, ev *domain.Event, cause error) {
	if d.alerter == nil {
		return
	}
	fields := map[string]string{
		"event_id":   ev.ID,
		"event_type": string(ev.Type),
	}
	if cause != nil {
		fields["error"] = cause.Error()
	}
	if err := d.alerter.Alert(ctx, "fraud event processing failed", fields); err != nil {
		d.log.Error().Err(err).Str("event_id", ev.ID).Msg("operator alert delivery failed")
	}
}
