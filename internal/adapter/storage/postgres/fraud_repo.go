package postgres

import (
	"context"
	"errors"
	"fmt"

	"storefront-events/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// FraudRepo implements ports.FraudRepository over the fraud_reviews and
// fraud_alerts tables.
type FraudRepo struct {
	pool Pool
}

// NewFraudRepo creates a new FraudRepo.
func NewFraudRepo(pool Pool) *FraudRepo {
	return &FraudRepo{pool: pool}
}

// GetReviewByReviewID fetches a review by the provider's review id.
func (r *FraudRepo) GetReviewByReviewID(ctx context.Context, reviewID string) (*domain.FraudReview, error) {
	query := `SELECT id, review_id, payment_id, reason, status, created_at, updated_at
		FROM fraud_reviews WHERE review_id = $1`

	return r.scanReview(r.pool.QueryRow(ctx, query, reviewID))
}

// GetBlockingReview returns a pending or rejected review for the payment, or
// nil when fulfillment is not gated.
func (r *FraudRepo) GetBlockingReview(ctx context.Context, paymentID string) (*domain.FraudReview, error) {
	query := `SELECT id, review_id, payment_id, reason, status, created_at, updated_at
		FROM fraud_reviews WHERE payment_id = $1 AND status IN ('PENDING', 'REJECTED')
		ORDER BY created_at DESC LIMIT 1`

	return r.scanReview(r.pool.QueryRow(ctx, query, paymentID))
}

// UpsertReview inserts or updates the review keyed by review id.
func (r *FraudRepo) UpsertReview(ctx context.Context, rev *domain.FraudReview) error {
	query := `INSERT INTO fraud_reviews (id, review_id, payment_id, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (review_id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		rev.ID, rev.ReviewID, rev.PaymentID, rev.Reason, rev.Status, rev.CreatedAt, rev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert fraud review: %w", err)
	}
	return nil
}

// GetAlertByWarningID fetches an alert by the provider's warning id.
func (r *FraudRepo) GetAlertByWarningID(ctx context.Context, warningID string) (*domain.FraudAlert, error) {
	query := `SELECT id, warning_id, charge_id, payment_id, fraud_type, severity, status, created_at, updated_at
		FROM fraud_alerts WHERE warning_id = $1`

	a := &domain.FraudAlert{}
	err := r.pool.QueryRow(ctx, query, warningID).Scan(
		&a.ID, &a.WarningID, &a.ChargeID, &a.PaymentID, &a.FraudType,
		&a.Severity, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fraud alert: %w", err)
	}
	return a, nil
}

// UpsertAlert inserts or updates the alert keyed by warning id.
func (r *FraudRepo) UpsertAlert(ctx context.Context, a *domain.FraudAlert) error {
	query := `INSERT INTO fraud_alerts (id, warning_id, charge_id, payment_id, fraud_type, severity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (warning_id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.WarningID, a.ChargeID, a.PaymentID, a.FraudType,
		a.Severity, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert fraud alert: %w", err)
	}
	return nil
}

func (r *FraudRepo) scanReview(row pgx.Row) (*domain.FraudReview, error) {
	rev := &domain.FraudReview{}
	err := row.Scan(
		&rev.ID, &rev.ReviewID, &rev.PaymentID, &rev.Reason, &rev.Status,
		&rev.CreatedAt, &rev.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan fraud review: %w", err)
	}
	return rev, nil
}
