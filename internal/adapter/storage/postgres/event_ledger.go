package postgres

import (
	"context"
	"errors"
	"fmt"

	"storefront-events/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventLedgerRepo implements ports.EventLedger. The unique constraint on
// event_id plus ON CONFLICT DO NOTHING makes the insert the single point of
// serialization for duplicate deliveries.
type EventLedgerRepo struct {
	pool Pool
}

// NewEventLedgerRepo creates a new EventLedgerRepo.
func NewEventLedgerRepo(pool Pool) *EventLedgerRepo {
	return &EventLedgerRepo{pool: pool}
}

// InsertIfAbsent records the event. Returns false when the event id was
// already present.
func (r *EventLedgerRepo) InsertIfAbsent(ctx context.Context, ev *domain.PaymentEvent) (bool, error) {
	query := `INSERT INTO payment_events (id, event_id, event_type, payload_enc, signature_valid, received_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		ev.ID, ev.EventID, ev.Type, ev.PayloadEnc, ev.SignatureValid, ev.ReceivedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert payment event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Get fetches a ledger record by the provider's event id.
func (r *EventLedgerRepo) Get(ctx context.Context, eventID string) (*domain.PaymentEvent, error) {
	query := `SELECT id, event_id, event_type, payload_enc, signature_valid, received_at
		FROM payment_events WHERE event_id = $1`

	ev := &domain.PaymentEvent{}
	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&ev.ID, &ev.EventID, &ev.Type, &ev.PayloadEnc, &ev.SignatureValid, &ev.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment event: %w", err)
	}
	return ev, nil
}

// Count returns the total number of recorded events.
func (r *EventLedgerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payment_events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count payment events: %w", err)
	}
	return count, nil
}
