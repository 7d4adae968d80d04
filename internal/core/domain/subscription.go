package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the recurring billing lifecycle state.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "ACTIVE"
	SubscriptionStatusPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionStatusCanceled SubscriptionStatus = "CANCELED"
)

// Subscription tracks one recurring billing relationship, upserted by the
// provider's subscription id. Canceled is terminal; rows are retained for audit.
type Subscription struct {
	ID                uuid.UUID          `json:"id"`
	SubscriptionID    string             `json:"subscription_id"` // provider-assigned, unique
	CustomerEmailEnc  string             `json:"-"` // AES-256; the email is never stored in clear
	PlanTier          string             `json:"plan_tier"`
	RecurringAmount   int64              `json:"recurring_amount"` // smallest currency unit, per period
	Currency          string             `json:"currency"`
	Status            SubscriptionStatus `json:"status"`
	CurrentPeriodEnd  time.Time          `json:"current_period_end"`
	CancelAtPeriodEnd bool               `json:"cancel_at_period_end"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// IsCanceled returns true for the terminal state.
func (s *Subscription) IsCanceled() bool {
	return s.Status == SubscriptionStatusCanceled
}

// ParseSubscriptionStatus maps a provider status string to the local lifecycle.
// Unknown provider states collapse to ACTIVE; past_due and canceled map directly.
func ParseSubscriptionStatus(provider string) SubscriptionStatus {
	switch provider {
	case "past_due", "unpaid":
		return SubscriptionStatusPastDue
	case "canceled":
		return SubscriptionStatusCanceled
	default:
		return SubscriptionStatusActive
	}
}
