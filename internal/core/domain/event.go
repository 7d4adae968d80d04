package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a provider notification variant.
type EventType string

const (
	EventPaymentSucceeded    EventType = "payment_intent.succeeded"
	EventPaymentProcessing   EventType = "payment_intent.processing"
	EventPaymentFailed       EventType = "payment_intent.payment_failed"
	EventPaymentCanceled     EventType = "payment_intent.canceled"
	EventReviewOpened        EventType = "review.opened"
	EventReviewClosed        EventType = "review.closed"
	EventFraudWarning        EventType = "radar.early_fraud_warning.created"
	EventChargeRefunded      EventType = "charge.refunded"
	EventDisputeCreated      EventType = "charge.dispute.created"
	EventDisputeClosed       EventType = "charge.dispute.closed"
	EventCheckoutCompleted   EventType = "checkout.session.completed"
	EventSubscriptionCreated EventType = "customer.subscription.created"
	EventSubscriptionUpdated EventType = "customer.subscription.updated"
	EventSubscriptionDeleted EventType = "customer.subscription.deleted"
	EventInvoiceSucceeded    EventType = "invoice.payment_succeeded"
	EventInvoiceFailed       EventType = "invoice.payment_failed"

	// EventNoOp is the decode result for type tags outside the handled set.
	// Such events are acknowledged and otherwise ignored.
	EventNoOp EventType = "noop"
)

// HandledEventTypes returns the closed set of event types the pipeline acts on.
func HandledEventTypes() []EventType {
	return []EventType{
		EventPaymentSucceeded,
		EventPaymentProcessing,
		EventPaymentFailed,
		EventPaymentCanceled,
		EventReviewOpened,
		EventReviewClosed,
		EventFraudWarning,
		EventChargeRefunded,
		EventDisputeCreated,
		EventDisputeClosed,
		EventCheckoutCompleted,
		EventSubscriptionCreated,
		EventSubscriptionUpdated,
		EventSubscriptionDeleted,
		EventInvoiceSucceeded,
		EventInvoiceFailed,
	}
}

// PaymentEvent is the immutable ledger record of one inbound delivery.
// The raw payload is stored AES-encrypted at rest.
type PaymentEvent struct {
	ID             uuid.UUID `json:"id"`
	EventID        string    `json:"event_id"` // provider-assigned, unique
	Type           EventType `json:"type"`
	PayloadEnc     string    `json:"-"`
	SignatureValid bool      `json:"signature_valid"`
	ReceivedAt     time.Time `json:"received_at"`
}

// Event is a verified, decoded notification. Exactly one payload pointer is
// non-nil for the variant the Type tag selects; all are nil for EventNoOp.
type Event struct {
	ID        string
	Type      EventType
	CreatedAt time.Time

	Payment      *PaymentPayload
	Review       *ReviewPayload
	Fraud        *FraudPayload
	Charge       *ChargePayload
	Dispute      *DisputePayload
	Checkout     *CheckoutPayload
	Subscription *SubscriptionPayload
	Invoice      *InvoicePayload
}

// PaymentPayload carries payment-intent lifecycle details.
type PaymentPayload struct {
	PaymentID     string
	CustomerEmail string
	Amount        int64
	Currency      string
	RiskLevel     string
	PaymentMethod string
	ProductID     string
	FailureReason string
}

// ReviewPayload carries manual fraud review details.
type ReviewPayload struct {
	ReviewID     string
	PaymentID    string
	Reason       string
	ClosedReason string
}

// Approved reports whether a closed review resolved in the customer's favor.
func (p *ReviewPayload) Approved() bool {
	return p.ClosedReason == "approved"
}

// FraudPayload carries an early fraud warning.
type FraudPayload struct {
	WarningID string
	ChargeID  string
	PaymentID string
	FraudType string
}

// ChargePayload carries charge refund details.
type ChargePayload struct {
	ChargeID  string
	PaymentID string
	Amount    int64
	Refunded  bool
}

// DisputePayload carries dispute lifecycle details.
type DisputePayload struct {
	DisputeID string
	ChargeID  string
	PaymentID string
	Status    string // "won", "lost", or an open state
	Reason    string
}

// CheckoutPayload carries a completed checkout session.
type CheckoutPayload struct {
	SessionID      string
	Mode           string // "payment" or "subscription"
	SubscriptionID string
	CustomerEmail  string
	ProductID      string
	PlanTier       string
	SeatLimit      int
	AmountTotal    int64
}

// SubscriptionPayload carries recurring billing lifecycle details.
type SubscriptionPayload struct {
	SubscriptionID    string
	CustomerEmail     string
	PlanTier          string
	RecurringAmount   int64
	Currency          string
	Status            string
	CurrentPeriodEnd  time.Time
	CancelAtPeriodEnd bool
}

// InvoicePayload carries a renewal invoice outcome.
type InvoicePayload struct {
	InvoiceID      string
	SubscriptionID string
	CustomerEmail  string
	AmountDue      int64
	BillingReason  string
	NextRetryAt    *time.Time
}

// BillingReasonSubscriptionCreate marks the first invoice of a subscription,
// which duplicates checkout.session.completed and is skipped.
const BillingReasonSubscriptionCreate = "subscription_create"
