package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatus represents the state of a manual fraud review.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"
	ReviewStatusApproved ReviewStatus = "APPROVED"
	ReviewStatusRejected ReviewStatus = "REJECTED"
)

// FraudReview gates fulfillment for a payment until an operator decision.
// Independent of transaction status: a succeeded payment can still be blocked.
type FraudReview struct {
	ID        uuid.UUID    `json:"id"`
	ReviewID  string       `json:"review_id"` // provider-assigned, unique
	PaymentID string       `json:"payment_id"`
	Reason    string       `json:"reason"`
	Status    ReviewStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Blocks reports whether the review currently withholds fulfillment.
func (r *FraudReview) Blocks() bool {
	return r.Status == ReviewStatusPending || r.Status == ReviewStatusRejected
}

// AlertStatus represents the state of an early fraud warning.
type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "ACTIVE"
	AlertStatusResolved AlertStatus = "RESOLVED"
)

// AlertSeverity ranks fraud alerts. Early fraud warnings are always critical.
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "CRITICAL"
)

// FraudAlert records an early fraud warning from the provider. It triggers
// immediate access revocation for the referenced charge regardless of any
// review state or completed fulfillment.
type FraudAlert struct {
	ID        uuid.UUID     `json:"id"`
	WarningID string        `json:"warning_id"` // provider-assigned, unique
	ChargeID  string        `json:"charge_id"`
	PaymentID string        `json:"payment_id"`
	FraudType string        `json:"fraud_type"`
	Severity  AlertSeverity `json:"severity"`
	Status    AlertStatus   `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
