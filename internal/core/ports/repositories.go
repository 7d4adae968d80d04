package ports

import (
	"context"
	"time"

	"storefront-events/internal/core/domain"
)

// EventLedger is the idempotency ledger keyed by the provider's event id.
// Its insert-if-absent operation is the pipeline's single point of
// serialization: a concurrent duplicate delivery loses the race here.
type EventLedger interface {
	// InsertIfAbsent records the event. Returns false when the event id was
	// already present (duplicate delivery).
	InsertIfAbsent(ctx context.Context, ev *domain.PaymentEvent) (bool, error)
	Get(ctx context.Context, eventID string) (*domain.PaymentEvent, error)
	Count(ctx context.Context) (int64, error)
}

// TransactionRepository persists one-time payment state, upserted by the
// provider's payment id. Never creates a duplicate row for the same id.
type TransactionRepository interface {
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.Transaction, error)
	Upsert(ctx context.Context, t *domain.Transaction) error
	MarkFulfilled(ctx context.Context, paymentID string, at time.Time) error
	CountByStatus(ctx context.Context) (map[domain.TransactionStatus]int64, error)
}

// SubscriptionRepository persists recurring billing state, upserted by the
// provider's subscription id.
type SubscriptionRepository interface {
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
	Upsert(ctx context.Context, s *domain.Subscription) error
	CountByStatus(ctx context.Context) (map[domain.SubscriptionStatus]int64, error)
}

// FraudRepository persists manual reviews and early fraud warnings.
type FraudRepository interface {
	GetReviewByReviewID(ctx context.Context, reviewID string) (*domain.FraudReview, error)
	// GetBlockingReview returns a pending or rejected review for the payment,
	// or nil when fulfillment is not gated.
	GetBlockingReview(ctx context.Context, paymentID string) (*domain.FraudReview, error)
	UpsertReview(ctx context.Context, r *domain.FraudReview) error
	GetAlertByWarningID(ctx context.Context, warningID string) (*domain.FraudAlert, error)
	UpsertAlert(ctx context.Context, a *domain.FraudAlert) error
}

// AccessGrantRepository persists (subject, resource) access pairs.
type AccessGrantRepository interface {
	GetActive(ctx context.Context, subject, resource string) (*domain.AccessGrant, error)
	// Grant inserts the pair if no active grant exists. Returns false when the
	// pair was already actively granted (idempotent no-op).
	Grant(ctx context.Context, g *domain.AccessGrant) (bool, error)
	// Revoke deactivates the active grant for the pair. Revoking an absent or
	// already-revoked pair is a no-op.
	Revoke(ctx context.Context, subject, resource string, at time.Time) error
	CountActive(ctx context.Context) (int64, error)
}

// CredentialRepository persists issued license credentials, one per
// subscription id.
type CredentialRepository interface {
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.Credential, error)
	// Create inserts the credential if none exists for its subscription id.
	// Returns false when a credential was already issued (duplicate event).
	Create(ctx context.Context, c *domain.Credential) (bool, error)
}
