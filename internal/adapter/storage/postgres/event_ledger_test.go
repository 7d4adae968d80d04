package postgres

import (
	"context"
	"testing"
	"time"

	"storefront-events/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *domain.PaymentEvent {
	return &domain.PaymentEvent{
		ID:             uuid.New(),
		EventID:        "evt_1",
		Type:           domain.EventPaymentSucceeded,
		PayloadEnc:     "enc_payload",
		SignatureValid: true,
		ReceivedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestEventLedgerRepo_InsertIfAbsent_New(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventLedgerRepo(mock)
	ev := testEvent()

	mock.ExpectExec("INSERT INTO payment_events").
		WithArgs(ev.ID, ev.EventID, ev.Type, ev.PayloadEnc, ev.SignatureValid, ev.ReceivedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	inserted, err := repo.InsertIfAbsent(context.Background(), ev)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventLedgerRepo_InsertIfAbsent_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventLedgerRepo(mock)
	ev := testEvent()

	// ON CONFLICT DO NOTHING: zero rows affected signals the duplicate.
	mock.ExpectExec("INSERT INTO payment_events").
		WithArgs(ev.ID, ev.EventID, ev.Type, ev.PayloadEnc, ev.SignatureValid, ev.ReceivedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	inserted, err := repo.InsertIfAbsent(context.Background(), ev)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventLedgerRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventLedgerRepo(mock)
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM payment_events WHERE event_id").
		WithArgs("evt_2").
		WillReturnRows(pgxmock.NewRows([]string{"id", "event_id", "event_type", "payload_enc", "signature_valid", "received_at"}).
			AddRow(id, "evt_2", domain.EventChargeRefunded, "enc", true, now))

	ev, err := repo.Get(context.Background(), "evt_2")
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, domain.EventChargeRefunded, ev.Type)
	assert.Equal(t, "enc", ev.PayloadEnc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventLedgerRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventLedgerRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payment_events WHERE event_id").
		WithArgs("evt_missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "event_id", "event_type", "payload_enc", "signature_valid", "received_at"}))

	ev, err := repo.Get(context.Background(), "evt_missing")
	assert.NoError(t, err)
	assert.Nil(t, ev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventLedgerRepo_Count(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventLedgerRepo(mock)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(17)))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(17), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
