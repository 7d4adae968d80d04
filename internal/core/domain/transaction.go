package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the lifecycle state of a one-time payment.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusProcessing TransactionStatus = "PROCESSING"
	TransactionStatusSucceeded  TransactionStatus = "SUCCEEDED"
	TransactionStatusFailed     TransactionStatus = "FAILED"
	TransactionStatusCanceled   TransactionStatus = "CANCELED"
	TransactionStatusRefunded   TransactionStatus = "REFUNDED"
	TransactionStatusDisputed   TransactionStatus = "DISPUTED"
)

// transitionGraph holds the directed edges along which a transaction status
// may move. Anything not listed is a forbidden (stale or backward) move.
var transitionGraph = map[TransactionStatus][]TransactionStatus{
	TransactionStatusPending: {
		TransactionStatusProcessing,
		TransactionStatusSucceeded,
		TransactionStatusFailed,
		TransactionStatusCanceled,
	},
	TransactionStatusProcessing: {
		TransactionStatusSucceeded,
		TransactionStatusFailed,
		TransactionStatusCanceled,
	},
	TransactionStatusSucceeded: {
		TransactionStatusRefunded,
		TransactionStatusDisputed,
	},
}

// CanTransitionTo reports whether moving from s to next follows the graph.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range transitionGraph[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transaction represents one attempted payment, upserted by the provider's
// payment id. Status only ever moves forward along the transition graph, so
// a late-arriving stale event is a safe no-op rather than a regression.
type Transaction struct {
	ID               uuid.UUID         `json:"id"`
	PaymentID        string            `json:"payment_id"` // provider-assigned, unique
	CustomerEmailEnc string            `json:"-"` // AES-256; the email is never stored in clear
	Amount           int64             `json:"amount"` // smallest currency unit
	Currency         string            `json:"currency"`
	Status           TransactionStatus `json:"status"`
	RiskLevel        string            `json:"risk_level,omitempty"`
	PaymentMethod    string            `json:"payment_method,omitempty"`
	ProductID        string            `json:"product_id,omitempty"`
	FailureReason    *string           `json:"failure_reason,omitempty"`
	FulfilledAt      *time.Time        `json:"fulfilled_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// IsTerminal returns true if no further transition is possible.
func (t *Transaction) IsTerminal() bool {
	return len(transitionGraph[t.Status]) == 0
}

// IsFulfilled returns true once access has been granted for this payment.
func (t *Transaction) IsFulfilled() bool {
	return t.FulfilledAt != nil
}
