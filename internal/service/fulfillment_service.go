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

// FulfillmentService implements ports.Fulfillment. It is the only component
// writing outside the payment/subscription domain (access control, email).
// Calls have a synchronous success/failure contract but no transactional
// coupling to the state machine writes that precede them.
type FulfillmentService struct {
	grantRepo  ports.AccessGrantRepository
	credRepo   ports.CredentialRepository
	hashSvc    ports.HashService
	licenseSvc ports.LicenseService
	notifier   ports.Notifier
	log        zerolog.Logger
}

// NewFulfillmentService creates a new FulfillmentService.
func NewFulfillmentService(
	grantRepo ports.AccessGrantRepository,
	credRepo ports.CredentialRepository,
	hashSvc ports.HashService,
	licenseSvc ports.LicenseService,
	notifier ports.Notifier,
	log zerolog.Logger,
) *FulfillmentService {
	return &FulfillmentService{
		grantRepo:  grantRepo,
		credRepo:   credRepo,
		hashSvc:    hashSvc,
		licenseSvc: licenseSvc,
		notifier:   notifier,
		log:        log,
	}
}

// GrantAccess grants (subject, resource) if no active grant exists.
// Re-fulfilling an already-granted pair is a no-op, not a duplicate.
func (s *FulfillmentService) GrantAccess(ctx context.Context, subject, resource string, grantType domain.GrantType, expiry *time.Time) (bool, error) {
	now := time.Now().UTC()
	created, err := s.grantRepo.Grant(ctx, &domain.AccessGrant{
		ID:        uuid.New(),
		Subject:   subject,
		Resource:  resource,
		GrantType: grantType,
		ExpiresAt: expiry,
		Active:    true,
		CreatedAt: now,
	})
	if err != nil {
		return false, fmt.Errorf("granting access: %w", err)
	}

	if created {
		s.log.Info().
			Str("subject", subject).
			Str("resource", resource).
			Str("grant_type", string(grantType)).
			Msg("access granted")
	} else {
		s.log.Debug().
			Str("subject", subject).
			Str("resource", resource).
			Msg("access already granted, skipping")
	}
	return created, nil
}

// RevokeAccess deactivates the active grant for (subject, resource).
func (s *FulfillmentService) RevokeAccess(ctx context.Context, subject, resource string) error {
	if err := s.grantRepo.Revoke(ctx, subject, resource, time.Now().UTC()); err != nil {
		return fmt.Errorf("revoking access: %w", err)
	}
	s.log.Info().
		Str("subject", subject).
		Str("resource", resource).
		Msg("access revoked")
	return nil
}

// IssueCredential mints license material for a new subscription. Idempotent
// per subscription id: a duplicate event never regenerates the credential,
// and the plaintext key is only returned on first issuance.
func (s *FulfillmentService) IssueCredential(ctx context.Context, subject, subscriptionID, planTier string, seatLimit int) (*domain.Credential, string, bool, error) {
	existing, err := s.credRepo.GetBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		return nil, "", false, fmt.Errorf("looking up credential: %w", err)
	}
	if existing != nil {
		s.log.Debug().
			Str("subscription_id", subscriptionID).
			Msg("credential already issued, skipping")
		return existing, "", false, nil
	}

	key, fingerprint, err := s.licenseSvc.Issue(subject, planTier, seatLimit)
	if err != nil {
		return nil, "", false, fmt.Errorf("minting license key: %w", err)
	}

	secretHash, err := s.hashSvc.Hash(key)
	if err != nil {
		return nil, "", false, fmt.Errorf("hashing license key: %w", err)
	}

	cred := &domain.Credential{
		ID:             uuid.New(),
		Subject:        subject,
		SubscriptionID: subscriptionID,
		PlanTier:       planTier,
		SeatLimit:      seatLimit,
		KeyFingerprint: fingerprint,
		SecretHash:     secretHash,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.credRepo.Create(ctx, cred)
	if err != nil {
		return nil, "", false, fmt.Errorf("storing credential: %w", err)
	}
	if !created {
		// Lost an insert race against a concurrent duplicate delivery.
		// The winner's key was delivered; this one is discarded.
		stored, err := s.credRepo.GetBySubscriptionID(ctx, subscriptionID)
		if err != nil {
			return nil, "", false, fmt.Errorf("refetching credential: %w", err)
		}
		return stored, "", false, nil
	}

	s.log.Info().
		Str("subscription_id", subscriptionID).
		Str("plan_tier", planTier).
		Int("seat_limit", seatLimit).
		Str("fingerprint", fingerprint).
		Msg("credential issued")

	return cred, key, true, nil
}

// Notify is fire-and-forget: delivery failures are logged, never propagated,
// so a mailer fault cannot block the webhook acknowledgment.
func (s *FulfillmentService) Notify(ctx context.Context, kind ports.NotificationKind, recipient string, data map[string]string) {
	if recipient == "" {
		s.log.Debug().Str("kind", string(kind)).Msg("no recipient, skipping notification")
		return
	}
	err := s.notifier.Notify(ctx, ports.Notification{
		Kind:      kind,
		Recipient: recipient,
		Data:      data,
	})
	if err != nil {
		s.log.Error().Err(err).
			Str("kind", string(kind)).
			Str("recipient", recipient).
			Msg("notification delivery failed")
		return
	}
	s.log.Info().
		Str("kind", string(kind)).
		Str("recipient", recipient).
		Msg("notification enqueued")
}
