package postgres

import (
	"context"
	"errors"
	"fmt"

	"storefront-events/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SubscriptionRepo implements ports.SubscriptionRepository.
type SubscriptionRepo struct {
	pool Pool
}

// NewSubscriptionRepo creates a new SubscriptionRepo.
func NewSubscriptionRepo(pool Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// GetBySubscriptionID fetches a subscription by the provider's id.
func (r *SubscriptionRepo) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	query := `SELECT id, subscription_id, customer_email_enc, plan_tier,
		recurring_amount, currency, status, current_period_end, cancel_at_period_end, created_at, updated_at
		FROM subscriptions WHERE subscription_id = $1`

	s := &domain.Subscription{}
	err := r.pool.QueryRow(ctx, query, subscriptionID).Scan(
		&s.ID, &s.SubscriptionID, &s.CustomerEmailEnc, &s.PlanTier,
		&s.RecurringAmount, &s.Currency, &s.Status, &s.CurrentPeriodEnd,
		&s.CancelAtPeriodEnd, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return s, nil
}

// Upsert inserts or updates the subscription keyed by subscription id.
func (r *SubscriptionRepo) Upsert(ctx context.Context, s *domain.Subscription) error {
	query := `INSERT INTO subscriptions (id, subscription_id, customer_email_enc, plan_tier,
		recurring_amount, currency, status, current_period_end, cancel_at_period_end, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (subscription_id) DO UPDATE SET
			plan_tier = EXCLUDED.plan_tier,
			recurring_amount = EXCLUDED.recurring_amount,
			currency = EXCLUDED.currency,
			status = EXCLUDED.status,
			current_period_end = EXCLUDED.current_period_end,
			cancel_at_period_end = EXCLUDED.cancel_at_period_end,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.SubscriptionID, s.CustomerEmailEnc, s.PlanTier,
		s.RecurringAmount, s.Currency, s.Status, s.CurrentPeriodEnd,
		s.CancelAtPeriodEnd, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}
	return nil
}

// CountByStatus returns subscription counts grouped by status.
func (r *SubscriptionRepo) CountByStatus(ctx context.Context) (map[domain.SubscriptionStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM subscriptions GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count subscriptions: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.SubscriptionStatus]int64)
	for rows.Next() {
		var status domain.SubscriptionStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan subscription count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscription counts: %w", err)
	}
	return counts, nil
}
