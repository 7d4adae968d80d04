package ports

import (
	"context"
	"time"

	"storefront-events/internal/core/domain"
)

// SignatureVerifier validates that an inbound payload was produced by the
// trusted provider within the timestamp tolerance window.
type SignatureVerifier interface {
	// Verify checks the signature header against the raw body. A non-nil
	// error means the request must be rejected without decoding.
	Verify(payload []byte, sigHeader string) error
	// Sign produces a header value for the payload at the given timestamp.
	// Used by outbound test fixtures and by operators replaying events.
	Sign(payload []byte, timestamp int64) string
	// SecretConfigured reports whether a signing secret is present.
	SecretConfigured() bool
}

// EventDecoder parses a verified payload into the closed event union.
type EventDecoder interface {
	// Decode returns the typed event. Unrecognized type tags yield an event
	// of type EventNoOp; payloads that fail to match their variant's shape
	// return an error.
	Decode(payload []byte) (*domain.Event, error)
}

// EncryptionService handles AES-256-GCM encryption of at-rest fields
// (raw payloads, customer email).
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// HashService hashes credential secret material at rest (Argon2id).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// LicenseService mints license keys for subscription credentials.
type LicenseService interface {
	// Issue returns the signed license key and its short fingerprint.
	Issue(subject, planTier string, seatLimit int) (key string, fingerprint string, err error)
}

// DedupeCache is the fast-path duplicate check ahead of the event ledger.
// Only the ledger is authoritative in either direction: a cache miss falls
// through to the ledger insert, and the marker is written only after that
// insert succeeds, so a ledger fault never leaves a marker for an event
// that was not recorded.
type DedupeCache interface {
	// Seen reports whether the event id has a marker.
	Seen(ctx context.Context, eventID string) (bool, error)
	// MarkSeen writes the marker with the given TTL.
	MarkSeen(ctx context.Context, eventID string, ttl time.Duration) error
}

// NotificationKind identifies an outbound customer notification template.
type NotificationKind string

const (
	NotifyPurchaseConfirmed   NotificationKind = "purchase_confirmed"
	NotifySubscriptionWelcome NotificationKind = "subscription_welcome"
	NotifySubscriptionRenewed NotificationKind = "subscription_renewed"
	NotifyPaymentRetry        NotificationKind = "payment_retry"
)

// Notification is one outbound customer email.
type Notification struct {
	Kind      NotificationKind  `json:"kind"`
	Recipient string            `json:"recipient"`
	Data      map[string]string `json:"data,omitempty"`
}

// Notifier delivers customer notifications. Implementations are
// fire-and-forget: delivery failures are logged, never surfaced to the
// webhook acknowledgment.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Alerter escalates to an operator channel. Used when fraud-warning
// processing fails: silent failure there has security impact, so alerting is
// decoupled from the HTTP response.
type Alerter interface {
	Alert(ctx context.Context, message string, fields map[string]string) error
}

// Fulfillment is the actuator granting product access, issuing credentials
// and triggering notifications. The only place the pipeline writes outside
// the payment/subscription domain.
type Fulfillment interface {
	// GrantAccess is idempotent per (subject, resource): re-fulfilling an
	// already-granted pair is a no-op. Returns true when a new grant was made.
	GrantAccess(ctx context.Context, subject, resource string, grantType domain.GrantType, expiry *time.Time) (bool, error)
	RevokeAccess(ctx context.Context, subject, resource string) error
	// IssueCredential is idempotent per subscription id. The plaintext license
	// key is only returned when a new credential was created.
	IssueCredential(ctx context.Context, subject, subscriptionID, planTier string, seatLimit int) (cred *domain.Credential, key string, created bool, err error)
	// Notify is fire-and-forget; it never blocks or fails the caller.
	Notify(ctx context.Context, kind NotificationKind, recipient string, data map[string]string)
}

// OutcomeStatus is the disposition of one processed event.
type OutcomeStatus string

const (
	OutcomeProcessed OutcomeStatus = "processed"
	OutcomeIgnored   OutcomeStatus = "ignored"
	OutcomeDuplicate OutcomeStatus = "duplicate"
	OutcomeFailed    OutcomeStatus = "failed"
)

// FailureClass distinguishes retry-safe from must-not-retry failures.
type FailureClass string

const (
	// FailureFatal: reject the request so the provider's retry applies
	// (invalid signature, malformed body).
	FailureFatal FailureClass = "fatal"
	// FailureRecoverable: acknowledged as success, logged for out-of-band
	// remediation (side-effect failure after a genuine payment success).
	FailureRecoverable FailureClass = "recoverable"
	// FailureCritical: acknowledged as success but escalated to the operator
	// channel (fraud-warning processing failure).
	FailureCritical FailureClass = "critical"
	// FailureInternal: truly unexpected fault, surfaces as HTTP 500.
	FailureInternal FailureClass = "internal"
)

// Outcome is the per-event handler result aggregated by the dispatcher into
// the single HTTP acknowledgment.
type Outcome struct {
	Status OutcomeStatus
	Class  FailureClass // set only when Status == OutcomeFailed
	Err    error        // set only when Status == OutcomeFailed
}

func Processed() Outcome { return Outcome{Status: OutcomeProcessed} }
func Ignored() Outcome   { return Outcome{Status: OutcomeIgnored} }
func Duplicate() Outcome { return Outcome{Status: OutcomeDuplicate} }

func Fatal(err error) Outcome {
	return Outcome{Status: OutcomeFailed, Class: FailureFatal, Err: err}
}

func Recoverable(err error) Outcome {
	return Outcome{Status: OutcomeFailed, Class: FailureRecoverable, Err: err}
}

func Critical(err error) Outcome {
	return Outcome{Status: OutcomeFailed, Class: FailureCritical, Err: err}
}

func Internal(err error) Outcome {
	return Outcome{Status: OutcomeFailed, Class: FailureInternal, Err: err}
}

// Dispatcher runs the full pipeline for one inbound delivery: verify,
// decode, ledger check, route, aggregate.
type Dispatcher interface {
	Dispatch(ctx context.Context, body []byte, sigHeader string) Outcome
}

// TransactionHandler processes one-time payment lifecycle events.
type TransactionHandler interface {
	HandlePaymentProcessing(ctx context.Context, ev *domain.Event) Outcome
	HandlePaymentSucceeded(ctx context.Context, ev *domain.Event) Outcome
	HandlePaymentFailed(ctx context.Context, ev *domain.Event) Outcome
	HandlePaymentCanceled(ctx context.Context, ev *domain.Event) Outcome
	HandleChargeRefunded(ctx context.Context, ev *domain.Event) Outcome
	HandleDisputeCreated(ctx context.Context, ev *domain.Event) Outcome
	HandleDisputeClosed(ctx context.Context, ev *domain.Event) Outcome
}

// TransactionFulfiller re-runs fulfillment for a transaction after an
// external gate clears, e.g. when a pending fraud review resolves in the
// customer's favor.
type TransactionFulfiller interface {
	FulfillTransaction(ctx context.Context, paymentID string) error
}

// SubscriptionHandler processes recurring billing lifecycle events.
type SubscriptionHandler interface {
	HandleCheckoutCompleted(ctx context.Context, ev *domain.Event) Outcome
	HandleSubscriptionCreated(ctx context.Context, ev *domain.Event) Outcome
	HandleSubscriptionUpdated(ctx context.Context, ev *domain.Event) Outcome
	HandleSubscriptionDeleted(ctx context.Context, ev *domain.Event) Outcome
	HandleInvoiceSucceeded(ctx context.Context, ev *domain.Event) Outcome
	HandleInvoiceFailed(ctx context.Context, ev *domain.Event) Outcome
}

// FraudHandler processes review and early-fraud-warning events.
type FraudHandler interface {
	HandleReviewOpened(ctx context.Context, ev *domain.Event) Outcome
	HandleReviewClosed(ctx context.Context, ev *domain.Event) Outcome
	HandleFraudWarning(ctx context.Context, ev *domain.Event) Outcome
}

// PipelineStats aggregates counters for the operator stats endpoint.
type PipelineStats struct {
	EventsSeen            int64                               `json:"events_seen"`
	TransactionsByStatus  map[domain.TransactionStatus]int64  `json:"transactions_by_status"`
	SubscriptionsByStatus map[domain.SubscriptionStatus]int64 `json:"subscriptions_by_status"`
	ActiveGrants          int64                               `json:"active_grants"`
}

// StatsService reports pipeline state for operators.
type StatsService interface {
	GetPipelineStats(ctx context.Context) (*PipelineStats, error)
}
