package service

import (
	"context"
	"errors"
	"testing"

	"storefront-events/internal/core/domain"
	"storefront-events/internal/core/ports"
	"storefront-events/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fraudTestDeps struct {
	svc         *FraudService
	fraudRepo   *mocks.MockFraudRepository
	txRepo      *mocks.MockTransactionRepository
	fulfiller   *mocks.MockTransactionFulfiller
	fulfillment *mocks.MockFulfillment
	encSvc      *mocks.MockEncryptionService
	ctrl        *gomock.Controller
}

func setupFraudService(t *testing.T) *fraudTestDeps {
	ctrl := gomock.NewController(t)
	d := &fraudTestDeps{
		fraudRepo:   mocks.NewMockFraudRepository(ctrl),
		txRepo:      mocks.NewMockTransactionRepository(ctrl),
		fulfiller:   mocks.NewMockTransactionFulfiller(ctrl),
		fulfillment: mocks.NewMockFulfillment(ctrl),
		encSvc:      mocks.NewMockEncryptionService(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewFraudService(d.fraudRepo, d.txRepo, d.fulfiller, d.fulfillment, d.encSvc, zerolog.Nop())
	return d
}

func reviewEvent(typ domain.EventType, p domain.ReviewPayload) *domain.Event {
	return &domain.Event{ID: "evt_rev", Type: typ, Review: &p}
}

// ==================== HandleReviewOpened Tests ====================

func TestFraudService_ReviewOpened_RecordsPendingReview(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := reviewEvent(domain.EventReviewOpened, domain.ReviewPayload{
		ReviewID:  "prv_1",
		PaymentID: "pi_1",
		Reason:    "rule",
	})

	d.fraudRepo.EXPECT().GetReviewByReviewID(ctx, "prv_1").Return(nil, nil)
	d.fraudRepo.EXPECT().UpsertReview(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.FraudReview) error {
			assert.Equal(t, domain.ReviewStatusPending, r.Status)
			assert.Equal(t, "pi_1", r.PaymentID)
			return nil
		})

	outcome := d.svc.HandleReviewOpened(ctx, ev)
	assert.Equal(t, ports.OutcomeProcessed, outcome.Status)
}

func TestFraudService_ReviewOpened_DuplicateIgnored(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := reviewEvent(domain.EventReviewOpened, domain.ReviewPayload{ReviewID: "prv_2"})

	d.fraudRepo.EXPECT().GetReviewByReviewID(ctx, "prv_2").Return(&domain.FraudReview{
		ReviewID: "prv_2",
		Status:   domain.ReviewStatusPending,
	}, nil)

	outcome := d.svc.HandleReviewOpened(ctx, ev)
	assert.Equal(t, ports.OutcomeIgnored, outcome.Status)
}

// ==================== HandleReviewClosed Tests ====================

func TestFraudService_ReviewClosed_ApprovedReleasesFulfillment(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := reviewEvent(domain.EventReviewClosed, domain.ReviewPayload{
		ReviewID:     "prv_3",
		PaymentID:    "pi_3",
		ClosedReason: "approved",
	})

	d.fraudRepo.EXPECT().GetReviewByReviewID(ctx, "prv_3").Return(&domain.FraudReview{
		ID:        uuid.New(),
		ReviewID:  "prv_3",
		PaymentID: "pi_3",
		Status:    domain.ReviewStatusPending,
	}, nil)
	d.fraudRepo.EXPECT().UpsertReview(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.FraudReview) error {
			assert.Equal(t, domain.ReviewStatusApproved, r.Status)
			return nil
		})
	d.fulfiller.EXPECT().FulfillTransaction(ctx, "pi_3").Return(nil)

	outcome := d.svc.HandleReviewClosed(ctx, ev)
	assert.Equal(t, ports.OutcomeProcessed, outcome.Status)
}

func TestFraudService_ReviewClosed_RejectedCancelsAndRevokes(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := reviewEvent(domain.EventReviewClosed, domain.ReviewPayload{
		ReviewID:     "prv_4",
		PaymentID:    "pi_4",
		ClosedReason: "refunded_as_fraud",
	})

	d.fraudRepo.EXPECT().GetReviewByReviewID(ctx, "prv_4").Return(&domain.FraudReview{
		ID:        uuid.New(),
		ReviewID:  "prv_4",
		PaymentID: "pi_4",
		Status:    domain.ReviewStatusPending,
	}, nil)
	d.fraudRepo.EXPECT().UpsertReview(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.FraudReview) error {
			assert.Equal(t, domain.ReviewStatusRejected, r.Status)
			return nil
		})
	d.txRepo.EXPECT().GetByPaymentID(ctx, "pi_4").Return(&domain.Transaction{
		PaymentID:        "pi_4",
		CustomerEmailEnc: "enc_bad",
		ProductID:        "prod_basic",
		Status:           domain.TransactionStatusProcessing,
	}, nil)
	d.encSvc.EXPECT().Decrypt("enc_bad").Return("bad@example.com", nil)
	d.txRepo.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *domain.Transaction) error {
			assert.Equal(t, domain.TransactionStatusCanceled, txn.Status)
			return nil
		})
	d.fulfillment.EXPECT().RevokeAccess(ctx, "bad@example.com", "prod_basic").Return(nil)

	outcome := d.svc.HandleReviewClosed(ctx, ev)
	assert.Equal(t, ports.OutcomeProcessed, outcome.Status)
}

func TestFraudService_ReviewClosed_RejectedSucceededKeepsStatus(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := reviewEvent(domain.EventReviewClosed, domain.ReviewPayload{
		ReviewID:     "prv_5",
		PaymentID:    "pi_5",
		ClosedReason: "disputed",
	})

	d.fraudRepo.EXPECT().GetReviewByReviewID(ctx, "prv_5").Return(&domain.FraudReview{
		ID:        uuid.New(),
		ReviewID:  "prv_5",
		PaymentID: "pi_5",
		Status:    domain.ReviewStatusPending,
	}, nil)
	d.fraudRepo.EXPECT().UpsertReview(ctx, gomock.Any()).Return(nil)
	// Succeeded cannot move to canceled; access is still revoked.
	d.txRepo.EXPECT().GetByPaymentID(ctx, "pi_5").Return(&domain.Transaction{
		PaymentID:        "pi_5",
		CustomerEmailEnc: "enc_bad",
		ProductID:        "prod_basic",
		Status:           domain.TransactionStatusSucceeded,
	}, nil)
	d.encSvc.EXPECT().Decrypt("enc_bad").Return("bad@example.com", nil)
	d.fulfillment.EXPECT().RevokeAccess(ctx, "bad@example.com", "prod_basic").Return(nil)

	outcome := d.svc.HandleReviewClosed(ctx, ev)
	assert.Equal(t, ports.OutcomeProcessed, outcome.Status)
}

func TestFraudService_ReviewClosed_WithoutOpeningEvent(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := reviewEvent(domain.EventReviewClosed, domain.ReviewPayload{
		ReviewID:     "prv_6",
		PaymentID:    "pi_6",
		ClosedReason: "approved",
	})

	// The opening delivery never arrived; closure creates the row directly.
	d.fraudRepo.EXPECT().GetReviewByReviewID(ctx, "prv_6").Return(nil, nil)
	d.fraudRepo.EXPECT().UpsertReview(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.FraudReview) error {
			assert.Equal(t, domain.ReviewStatusApproved, r.Status)
			assert.Equal(t, "pi_6", r.PaymentID)
			return nil
		})
	d.fulfiller.EXPECT().FulfillTransaction(ctx, "pi_6").Return(nil)

	outcome := d.svc.HandleReviewClosed(ctx, ev)
	assert.Equal(t, ports.OutcomeProcessed, outcome.Status)
}

func TestFraudService_ReviewClosed_AlreadyResolvedIgnored(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := reviewEvent(domain.EventReviewClosed, domain.ReviewPayload{
		ReviewID:     "prv_7",
		ClosedReason: "approved",
	})

	d.fraudRepo.EXPECT().GetReviewByReviewID(ctx, "prv_7").Return(&domain.FraudReview{
		ReviewID: "prv_7",
		Status:   domain.ReviewStatusApproved,
	}, nil)

	outcome := d.svc.HandleReviewClosed(ctx, ev)
	assert.Equal(t, ports.OutcomeIgnored, outcome.Status)
}

// ==================== HandleFraudWarning Tests ====================

func TestFraudService_FraudWarning_RevokesImmediately(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := &domain.Event{
		ID:   "evt_fw",
		Type: domain.EventFraudWarning,
		Fraud: &domain.FraudPayload{
			WarningID: "issfr_1",
			ChargeID:  "ch_1",
			PaymentID: "pi_7",
			FraudType: "card_never_received",
		},
	}

	d.fraudRepo.EXPECT().GetAlertByWarningID(ctx, "issfr_1").Return(nil, nil)
	d.fraudRepo.EXPECT().UpsertAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.FraudAlert) error {
			assert.Equal(t, domain.AlertSeverityCritical, a.Severity)
			assert.Equal(t, domain.AlertStatusActive, a.Status)
			return nil
		})
	d.txRepo.EXPECT().GetByPaymentID(ctx, "pi_7").Return(&domain.Transaction{
		PaymentID:        "pi_7",
		CustomerEmailEnc: "enc_sus",
		ProductID:        "prod_basic",
		Status:           domain.TransactionStatusSucceeded,
	}, nil)
	d.encSvc.EXPECT().Decrypt("enc_sus").Return("sus@example.com", nil)
	d.fulfillment.EXPECT().RevokeAccess(ctx, "sus@example.com", "prod_basic").Return(nil)

	outcome := d.svc.HandleFraudWarning(ctx, ev)
	assert.Equal(t, ports.OutcomeProcessed, outcome.Status)
}

func TestFraudService_FraudWarning_StoreFailureIsCritical(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := &domain.Event{
		ID:    "evt_fw2",
		Type:  domain.EventFraudWarning,
		Fraud: &domain.FraudPayload{WarningID: "issfr_2", ChargeID: "ch_2"},
	}

	d.fraudRepo.EXPECT().GetAlertByWarningID(ctx, "issfr_2").Return(nil, nil)
	d.fraudRepo.EXPECT().UpsertAlert(ctx, gomock.Any()).Return(errors.New("db down"))

	outcome := d.svc.HandleFraudWarning(ctx, ev)
	require.Equal(t, ports.OutcomeFailed, outcome.Status)
	assert.Equal(t, ports.FailureCritical, outcome.Class)
}

func TestFraudService_FraudWarning_NoPaymentReferenceIsCritical(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := &domain.Event{
		ID:   "evt_fw4",
		Type: domain.EventFraudWarning,
		Fraud: &domain.FraudPayload{
			WarningID: "issfr_4",
			ChargeID:  "ch_4",
			FraudType: "fraudulent",
		},
	}

	// The alert is recorded, but without a payment reference there is no
	// grant to revoke. That must escalate, not pass silently.
	d.fraudRepo.EXPECT().GetAlertByWarningID(ctx, "issfr_4").Return(nil, nil)
	d.fraudRepo.EXPECT().UpsertAlert(ctx, gomock.Any()).Return(nil)

	outcome := d.svc.HandleFraudWarning(ctx, ev)
	require.Equal(t, ports.OutcomeFailed, outcome.Status)
	assert.Equal(t, ports.FailureCritical, outcome.Class)
	assert.ErrorContains(t, outcome.Err, "no payment reference")
}

func TestFraudService_FraudWarning_UnknownTransactionIsCritical(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := &domain.Event{
		ID:   "evt_fw5",
		Type: domain.EventFraudWarning,
		Fraud: &domain.FraudPayload{
			WarningID: "issfr_5",
			ChargeID:  "ch_5",
			PaymentID: "pi_unknown",
		},
	}

	d.fraudRepo.EXPECT().GetAlertByWarningID(ctx, "issfr_5").Return(nil, nil)
	d.fraudRepo.EXPECT().UpsertAlert(ctx, gomock.Any()).Return(nil)
	d.txRepo.EXPECT().GetByPaymentID(ctx, "pi_unknown").Return(nil, nil)

	outcome := d.svc.HandleFraudWarning(ctx, ev)
	require.Equal(t, ports.OutcomeFailed, outcome.Status)
	assert.Equal(t, ports.FailureCritical, outcome.Class)
	assert.ErrorContains(t, outcome.Err, "access not revoked")
}

func TestFraudService_FraudWarning_DuplicateIgnored(t *testing.T) {
	d := setupFraudService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := &domain.Event{
		ID:    "evt_fw3",
		Type:  domain.EventFraudWarning,
		Fraud: &domain.FraudPayload{WarningID: "issfr_3"},
	}

	d.fraudRepo.EXPECT().GetAlertByWarningID(ctx, "issfr_3").Return(&domain.FraudAlert{
		WarningID: "issfr_3",
	}, nil)

	outcome := d.svc.HandleFraudWarning(ctx, ev)
	assert.Equal(t, ports.OutcomeIgnored, outcome.Status)
}
