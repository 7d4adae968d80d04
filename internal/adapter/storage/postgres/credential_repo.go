package postgres

import (
	"context"
	"errors"
	"fmt"

	"storefront-events/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// CredentialRepo implements ports.CredentialRepository. The unique constraint
// on subscription_id guarantees exactly one credential per subscription even
// under concurrent duplicate deliveries.
type CredentialRepo struct {
	pool Pool
}

// NewCredentialRepo creates a new CredentialRepo.
func NewCredentialRepo(pool Pool) *CredentialRepo {
	return &CredentialRepo{pool: pool}
}

// GetBySubscriptionID fetches the issued credential, or nil.
func (r *CredentialRepo) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.Credential, error) {
	query := `SELECT id, subject, subscription_id, plan_tier, seat_limit, key_fingerprint, secret_hash, created_at
		FROM credentials WHERE subscription_id = $1`

	c := &domain.Credential{}
	err := r.pool.QueryRow(ctx, query, subscriptionID).Scan(
		&c.ID, &c.Subject, &c.SubscriptionID, &c.PlanTier, &c.SeatLimit,
		&c.KeyFingerprint, &c.SecretHash, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credential: %w", err)
	}
	return c, nil
}

// Create inserts the credential unless one exists for the subscription id.
// Returns false when the insert lost to an existing row.
func (r *CredentialRepo) Create(ctx context.Context, c *domain.Credential) (bool, error) {
	query := `INSERT INTO credentials (id, subject, subscription_id, plan_tier, seat_limit, key_fingerprint, secret_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (subscription_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		c.ID, c.Subject, c.SubscriptionID, c.PlanTier, c.SeatLimit,
		c.KeyFingerprint, c.SecretHash, c.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert credential: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
