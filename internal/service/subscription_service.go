package service

import (
	"context"
	"fmt"
	"time"

	"storefront-events/internal/core/domain"
	"storefront-events/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SubscriptionService implements ports.SubscriptionHandler: checkout
// completion, recurring billing lifecycle and renewal invoices.
type SubscriptionService struct {
	subRepo        ports.SubscriptionRepository
	fulfillment    ports.Fulfillment
	encSvc         ports.EncryptionService
	thresholdCents int64
	defaultTier    string
	defaultSeats   int
	log            zerolog.Logger
}

// NewSubscriptionService creates a new SubscriptionService. thresholdCents is
// the per-period amount at or above which a subscription is classified as an
// enterprise plan and granted all-product access.
func NewSubscriptionService(
	subRepo ports.SubscriptionRepository,
	fulfillment ports.Fulfillment,
	encSvc ports.EncryptionService,
	thresholdCents int64,
	defaultTier string,
	defaultSeats int,
	log zerolog.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		subRepo:        subRepo,
		fulfillment:    fulfillment,
		encSvc:         encSvc,
		thresholdCents: thresholdCents,
		defaultTier:    defaultTier,
		defaultSeats:   defaultSeats,
		log:            log,
	}
}

// HandleCheckoutCompleted provisions a new subscriber: license credential,
// subscription access grant and welcome notification. One-time payment mode
// sessions are handled by the payment-intent events instead.
func (s *SubscriptionService) HandleCheckoutCompleted(ctx context.Context, ev *domain.Event) ports.Outcome {
	co := ev.Checkout
	if co.Mode != "subscription" {
		s.log.Debug().
			Str("session_id", co.SessionID).
			Str("mode", co.Mode).
			Msg("non-subscription checkout, handled via payment events")
		return ports.Ignored()
	}
	if co.SubscriptionID == "" {
		return ports.Ignored()
	}

	planTier := co.PlanTier
	if planTier == "" {
		planTier = s.defaultTier
	}
	seats := co.SeatLimit
	if seats <= 0 {
		seats = s.defaultSeats
	}

	cred, key, created, err := s.fulfillment.IssueCredential(ctx, co.CustomerEmail, co.SubscriptionID, planTier, seats)
	if err != nil {
		return ports.Recoverable(fmt.Errorf("issuing credential: %w", err))
	}

	if _, err := s.fulfillment.GrantAccess(ctx, co.CustomerEmail, co.ProductID, domain.GrantTypeSubscription, nil); err != nil {
		return ports.Recoverable(fmt.Errorf("granting subscription access: %w", err))
	}

	if created {
		// The plaintext key exists only in this notification; at rest we hold
		// the hash and fingerprint.
		s.fulfillment.Notify(ctx, ports.NotifySubscriptionWelcome, co.CustomerEmail, map[string]string{
			"subscription_id": co.SubscriptionID,
			"plan_tier":       planTier,
			"license_key":     key,
			"fingerprint":     cred.KeyFingerprint,
		})
	}

	s.log.Info().
		Str("session_id", co.SessionID).
		Str("subscription_id", co.SubscriptionID).
		Bool("credential_created", created).
		Msg("checkout completed")
	return ports.Processed()
}

// HandleSubscriptionCreated upserts the subscription row and, for plans at or
// above the enterprise threshold, grants all-product access.
func (s *SubscriptionService) HandleSubscriptionCreated(ctx context.Context, ev *domain.Event) ports.Outcome {
	sub, outcome := s.upsertFromPayload(ctx, ev.Subscription)
	if outcome.Status != ports.OutcomeProcessed {
		return outcome
	}

	if sub.RecurringAmount >= s.thresholdCents {
		email, err := s.encSvc.Decrypt(sub.CustomerEmailEnc)
		if err != nil {
			return ports.Internal(fmt.Errorf("decrypting customer email: %w", err))
		}
		if _, err := s.fulfillment.GrantAccess(ctx, email, domain.ResourceAllProducts, domain.GrantTypeEnterprise, nil); err != nil {
			return ports.Recoverable(fmt.Errorf("granting enterprise access: %w", err))
		}
		s.log.Info().
			Str("subscription_id", sub.SubscriptionID).
			Int64("recurring_amount", sub.RecurringAmount).
			Msg("enterprise plan, all-product access granted")
	}
	return ports.Processed()
}

// HandleSubscriptionUpdated refreshes stored state: status, period end,
// cancel-at-period-end flag, plan changes.
func (s *SubscriptionService) HandleSubscriptionUpdated(ctx context.Context, ev *domain.Event) ports.Outcome {
	_, outcome := s.upsertFromPayload(ctx, ev.Subscription)
	return outcome
}

// HandleSubscriptionDeleted marks the subscription canceled and revokes the
// enterprise grant. The final recurring amount says nothing about whether the
// grant was made (the plan may have been downgraded since), so revocation is
// unconditional; revoking an absent grant is a no-op. The per-product
// subscription grant and the issued credential are left for the downstream
// validity check against current_period_end.
func (s *SubscriptionService) HandleSubscriptionDeleted(ctx context.Context, ev *domain.Event) ports.Outcome {
	p := ev.Subscription
	sub, err := s.subRepo.GetBySubscriptionID(ctx, p.SubscriptionID)
	if err != nil {
		return ports.Internal(fmt.Errorf("loading subscription: %w", err))
	}
	if sub == nil {
		s.log.Warn().
			Str("subscription_id", p.SubscriptionID).
			Msg("deletion for unknown subscription, ignoring")
		return ports.Ignored()
	}
	if sub.IsCanceled() {
		return ports.Ignored()
	}

	sub.Status = domain.SubscriptionStatusCanceled
	sub.CancelAtPeriodEnd = false
	sub.UpdatedAt = time.Now().UTC()
	if err := s.subRepo.Upsert(ctx, sub); err != nil {
		return ports.Internal(fmt.Errorf("updating subscription: %w", err))
	}

	email, err := s.encSvc.Decrypt(sub.CustomerEmailEnc)
	if err != nil {
		return ports.Recoverable(fmt.Errorf("decrypting customer email: %w", err))
	}
	if err := s.fulfillment.RevokeAccess(ctx, email, domain.ResourceAllProducts); err != nil {
		return ports.Recoverable(fmt.Errorf("revoking enterprise access: %w", err))
	}

	s.log.Info().
		Str("subscription_id", sub.SubscriptionID).
		Msg("subscription canceled")
	return ports.Processed()
}

// HandleInvoiceSucceeded sends the renewal confirmation. The first invoice of
// a subscription duplicates checkout.session.completed and is skipped; the
// billing period itself advances via subscription.updated.
func (s *SubscriptionService) HandleInvoiceSucceeded(ctx context.Context, ev *domain.Event) ports.Outcome {
	inv := ev.Invoice
	if inv.BillingReason == domain.BillingReasonSubscriptionCreate {
		return ports.Ignored()
	}
	if inv.SubscriptionID == "" {
		return ports.Ignored()
	}

	s.fulfillment.Notify(ctx, ports.NotifySubscriptionRenewed, inv.CustomerEmail, map[string]string{
		"subscription_id": inv.SubscriptionID,
		"invoice_id":      inv.InvoiceID,
		"amount":          fmt.Sprintf("%d", inv.AmountDue),
	})
	return ports.Processed()
}

// HandleInvoiceFailed logs the failed renewal and tells the customer when the
// provider will retry. Local status is not changed here; the provider's own
// state transition arrives as subscription.updated with past_due.
func (s *SubscriptionService) HandleInvoiceFailed(ctx context.Context, ev *domain.Event) ports.Outcome {
	inv := ev.Invoice
	if inv.SubscriptionID == "" {
		return ports.Ignored()
	}

	logEv := s.log.Warn().
		Str("subscription_id", inv.SubscriptionID).
		Str("invoice_id", inv.InvoiceID).
		Int64("amount_due", inv.AmountDue)
	if inv.NextRetryAt != nil {
		logEv = logEv.Time("next_retry_at", *inv.NextRetryAt)
	}
	logEv.Msg("renewal invoice failed")

	data := map[string]string{
		"subscription_id": inv.SubscriptionID,
		"invoice_id":      inv.InvoiceID,
	}
	if inv.NextRetryAt != nil {
		data["next_retry_at"] = inv.NextRetryAt.UTC().Format(time.RFC3339)
	}
	s.fulfillment.Notify(ctx, ports.NotifyPaymentRetry, inv.CustomerEmail, data)
	return ports.Processed()
}

// upsertFromPayload creates or refreshes the subscription row from a
// lifecycle event payload.
func (s *SubscriptionService) upsertFromPayload(ctx context.Context, p *domain.SubscriptionPayload) (*domain.Subscription, ports.Outcome) {
	sub, err := s.subRepo.GetBySubscriptionID(ctx, p.SubscriptionID)
	if err != nil {
		return nil, ports.Internal(fmt.Errorf("loading subscription: %w", err))
	}

	now := time.Now().UTC()
	status := domain.ParseSubscriptionStatus(p.Status)

	if sub == nil {
		emailEnc, err := s.encSvc.Encrypt(p.CustomerEmail)
		if err != nil {
			return nil, ports.Internal(fmt.Errorf("encrypting customer email: %w", err))
		}
		sub = &domain.Subscription{
			ID:               uuid.New(),
			SubscriptionID:   p.SubscriptionID,
			CustomerEmailEnc: emailEnc,
			CreatedAt:        now,
		}
	} else if sub.IsCanceled() && status != domain.SubscriptionStatusCanceled {
		// Cancellation is terminal locally. A late-arriving update for an
		// earlier period must not resurrect the row.
		s.log.Info().
			Str("subscription_id", sub.SubscriptionID).
			Str("event_status", p.Status).
			Msg("update for canceled subscription ignored")
		return sub, ports.Ignored()
	}

	if p.PlanTier != "" {
		sub.PlanTier = p.PlanTier
	} else if sub.PlanTier == "" {
		sub.PlanTier = s.defaultTier
	}
	sub.RecurringAmount = p.RecurringAmount
	sub.Currency = p.Currency
	sub.Status = status
	sub.CurrentPeriodEnd = p.CurrentPeriodEnd
	sub.CancelAtPeriodEnd = p.CancelAtPeriodEnd
	sub.UpdatedAt = now

	if err := s.subRepo.Upsert(ctx, sub); err != nil {
		return nil, ports.Internal(fmt.Errorf("upserting subscription: %w", err))
	}
	return sub, ports.Processed()
}
