package domain

import (
	"time"

	"github.com/google/uuid"
)

// GrantType classifies why a subject holds access to a resource.
type GrantType string

const (
	GrantTypePurchased    GrantType = "PURCHASED"
	GrantTypeSubscription GrantType = "SUBSCRIPTION"
	GrantTypeEnterprise   GrantType = "ENTERPRISE"
)

// ResourceAllProducts is the resource granted by the elevated-tier
// classification: access across the whole catalog rather than one product.
const ResourceAllProducts = "*"

// AccessGrant ties a subject (customer identity) to a resource. At most one
// active grant exists per (subject, resource); re-granting is a no-op.
// Revocation deactivates the row, it never deletes it.
type AccessGrant struct {
	ID        uuid.UUID  `json:"id"`
	Subject   string     `json:"subject"`
	Resource  string     `json:"resource"`
	GrantType GrantType  `json:"grant_type"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Credential is the license material issued once per new subscription.
// Only the argon2id hash and a short fingerprint of the license key are kept;
// the plaintext key is delivered a single time in the welcome notification.
type Credential struct {
	ID             uuid.UUID `json:"id"`
	Subject        string    `json:"subject"`
	SubscriptionID string    `json:"subscription_id"` // unique, one credential per subscription
	PlanTier       string    `json:"plan_tier"`
	SeatLimit      int       `json:"seat_limit"`
	KeyFingerprint string    `json:"key_fingerprint"`
	SecretHash     string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
