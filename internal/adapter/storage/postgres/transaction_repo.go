package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-events/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// GetByPaymentID fetches a transaction by the provider's payment id.
func (r *TransactionRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Transaction, error) {
	query := `SELECT id, payment_id, customer_email_enc, amount, currency,
		status, risk_level, payment_method, product_id, failure_reason, fulfilled_at, created_at, updated_at
		FROM transactions WHERE payment_id = $1`

	t := &domain.Transaction{}
	err := r.pool.QueryRow(ctx, query, paymentID).Scan(
		&t.ID, &t.PaymentID, &t.CustomerEmailEnc, &t.Amount, &t.Currency,
		&t.Status, &t.RiskLevel, &t.PaymentMethod, &t.ProductID, &t.FailureReason,
		&t.FulfilledAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// Upsert inserts or updates the transaction keyed by payment id. The unique
// constraint guarantees one row per payment regardless of delivery order.
func (r *TransactionRepo) Upsert(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, payment_id, customer_email_enc, amount, currency,
		status, risk_level, payment_method, product_id, failure_reason, fulfilled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (payment_id) DO UPDATE SET
			status = EXCLUDED.status,
			risk_level = EXCLUDED.risk_level,
			payment_method = EXCLUDED.payment_method,
			failure_reason = EXCLUDED.failure_reason,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.PaymentID, t.CustomerEmailEnc, t.Amount, t.Currency,
		t.Status, t.RiskLevel, t.PaymentMethod, t.ProductID, t.FailureReason,
		t.FulfilledAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert transaction: %w", err)
	}
	return nil
}

// MarkFulfilled stamps the fulfillment time, once.
func (r *TransactionRepo) MarkFulfilled(ctx context.Context, paymentID string, at time.Time) error {
	query := `UPDATE transactions SET fulfilled_at = $1, updated_at = $1
		WHERE payment_id = $2 AND fulfilled_at IS NULL`

	_, err := r.pool.Exec(ctx, query, at, paymentID)
	if err != nil {
		return fmt.Errorf("mark transaction fulfilled: %w", err)
	}
	return nil
}

// CountByStatus returns transaction counts grouped by status.
func (r *TransactionRepo) CountByStatus(ctx context.Context) (map[domain.TransactionStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM transactions GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.TransactionStatus]int64)
	for rows.Next() {
		var status domain.TransactionStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan transaction count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction counts: %w", err)
	}
	return counts, nil
}
