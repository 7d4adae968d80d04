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

func TestFraudRepo_GetBlockingReview(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM fraud_reviews WHERE payment_id").
		WithArgs("pi_1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "review_id", "payment_id", "reason", "status", "created_at", "updated_at",
		}).AddRow(id, "prv_1", "pi_1", "rule", domain.ReviewStatusPending, now, now))

	rev, err := repo.GetBlockingReview(context.Background(), "pi_1")
	require.NoError(t, err)
	require.NotNil(t, rev)
	assert.Equal(t, "prv_1", rev.ReviewID)
	assert.Equal(t, domain.ReviewStatusPending, rev.Status)
	assert.True(t, rev.Blocks())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudRepo_GetBlockingReview_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM fraud_reviews WHERE payment_id").
		WithArgs("pi_clear").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "review_id", "payment_id", "reason", "status", "created_at", "updated_at",
		}))

	rev, err := repo.GetBlockingReview(context.Background(), "pi_clear")
	assert.NoError(t, err)
	assert.Nil(t, rev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudRepo_UpsertReview(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	rev := &domain.FraudReview{
		ID:        uuid.New(),
		ReviewID:  "prv_1",
		PaymentID: "pi_1",
		Reason:    "rule",
		Status:    domain.ReviewStatusApproved,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO fraud_reviews").
		WithArgs(rev.ID, rev.ReviewID, rev.PaymentID, rev.Reason, rev.Status, rev.CreatedAt, rev.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.UpsertReview(context.Background(), rev)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudRepo_GetAlertByWarningID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM fraud_alerts WHERE warning_id").
		WithArgs("issfr_1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "warning_id", "charge_id", "payment_id", "fraud_type", "severity", "status", "created_at", "updated_at",
		}).AddRow(id, "issfr_1", "ch_1", "pi_1", "made_with_stolen_card",
			domain.AlertSeverityCritical, domain.AlertStatusActive, now, now))

	a, err := repo.GetAlertByWarningID(context.Background(), "issfr_1")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "ch_1", a.ChargeID)
	assert.Equal(t, domain.AlertStatusActive, a.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudRepo_UpsertAlert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := &domain.FraudAlert{
		ID:        uuid.New(),
		WarningID: "issfr_1",
		ChargeID:  "ch_1",
		PaymentID: "pi_1",
		FraudType: "made_with_stolen_card",
		Severity:  domain.AlertSeverityCritical,
		Status:    domain.AlertStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO fraud_alerts").
		WithArgs(a.ID, a.WarningID, a.ChargeID, a.PaymentID, a.FraudType,
			a.Severity, a.Status, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.UpsertAlert(context.Background(), a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
