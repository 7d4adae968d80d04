package service

import (
	"context"
	"fmt"
	"time"

	"storefront-events/internal/core/domain"
	"storefront-events/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FraudService implements ports.FraudHandler: manual review gating and
// early fraud warnings.
type FraudService struct {
	fraudRepo   ports.FraudRepository
	txRepo      ports.TransactionRepository
	fulfiller   ports.TransactionFulfiller
	fulfillment ports.Fulfillment
	encSvc      ports.EncryptionService
	log         zerolog.Logger
}

// NewFraudService creates a new FraudService.
func NewFraudService(
	fraudRepo ports.FraudRepository,
	txRepo ports.TransactionRepository,
	fulfiller ports.TransactionFulfiller,
	fulfillment ports.Fulfillment,
	encSvc ports.EncryptionService,
	log zerolog.Logger,
) *FraudService {
	return &FraudService{
		fraudRepo:   fraudRepo,
		txRepo:      txRepo,
		fulfiller:   fulfiller,
		fulfillment: fulfillment,
		encSvc:      encSvc,
		log:         log,
	}
}

// HandleReviewOpened records a pending review for the payment. The review row
// is what the fulfillment gate consults, so this must land before any grant.
func (s *FraudService) HandleReviewOpened(ctx context.Context, ev *domain.Event) ports.Outcome {
	p := ev.Review
	existing, err := s.fraudRepo.GetReviewByReviewID(ctx, p.ReviewID)
	if err != nil {
		return ports.Internal(fmt.Errorf("loading review: %w", err))
	}
	if existing != nil {
		return ports.Ignored()
	}

	now := time.Now().UTC()
	review := &domain.FraudReview{
		ID:        uuid.New(),
		ReviewID:  p.ReviewID,
		PaymentID: p.PaymentID,
		Reason:    p.Reason,
		Status:    domain.ReviewStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.fraudRepo.UpsertReview(ctx, review); err != nil {
		return ports.Internal(fmt.Errorf("storing review: %w", err))
	}

	s.log.Warn().
		Str("review_id", p.ReviewID).
		Str("payment_id", p.PaymentID).
		Str("reason", p.Reason).
		Msg("fraud review opened, fulfillment gated")
	return ports.Processed()
}

// HandleReviewClosed resolves the review. An approval releases any deferred
// fulfillment; a rejection cancels the transaction where the state graph
// allows and always revokes access.
func (s *FraudService) HandleReviewClosed(ctx context.Context, ev *domain.Event) ports.Outcome {
	p := ev.Review
	review, err := s.fraudRepo.GetReviewByReviewID(ctx, p.ReviewID)
	if err != nil {
		return ports.Internal(fmt.Errorf("loading review: %w", err))
	}

	now := time.Now().UTC()
	if review == nil {
		// Closure can arrive without the opening event having been delivered.
		review = &domain.FraudReview{
			ID:        uuid.New(),
			ReviewID:  p.ReviewID,
			PaymentID: p.PaymentID,
			Reason:    p.Reason,
			CreatedAt: now,
		}
	} else if review.Status != domain.ReviewStatusPending {
		return ports.Ignored()
	}

	if p.Approved() {
		review.Status = domain.ReviewStatusApproved
	} else {
		review.Status = domain.ReviewStatusRejected
	}
	review.UpdatedAt = now
	if err := s.fraudRepo.UpsertReview(ctx, review); err != nil {
		return ports.Internal(fmt.Errorf("storing review: %w", err))
	}

	if review.Status == domain.ReviewStatusApproved {
		// Release fulfillment that HandlePaymentSucceeded withheld while the
		// review was pending.
		if err := s.fulfiller.FulfillTransaction(ctx, review.PaymentID); err != nil {
			s.log.Error().Err(err).
				Str("payment_id", review.PaymentID).
				Msg("deferred fulfillment failed after review approval")
			return ports.Recoverable(err)
		}
		s.log.Info().
			Str("review_id", review.ReviewID).
			Str("payment_id", review.PaymentID).
			Msg("review approved")
		return ports.Processed()
	}

	if err := s.cancelAndRevoke(ctx, review.PaymentID); err != nil {
		return ports.Recoverable(err)
	}
	s.log.Warn().
		Str("review_id", review.ReviewID).
		Str("payment_id", review.PaymentID).
		Str("closed_reason", p.ClosedReason).
		Msg("review rejected, access revoked")
	return ports.Processed()
}

// HandleFraudWarning records a critical alert and revokes access immediately,
// regardless of review state or completed fulfillment. A failure here is
// escalated: the customer may be actively exploiting the access.
func (s *FraudService) HandleFraudWarning(ctx context.Context, ev *domain.Event) ports.Outcome {
	p := ev.Fraud
	existing, err := s.fraudRepo.GetAlertByWarningID(ctx, p.WarningID)
	if err != nil {
		return ports.Critical(fmt.Errorf("loading fraud alert: %w", err))
	}
	if existing != nil {
		return ports.Ignored()
	}

	now := time.Now().UTC()
	alert := &domain.FraudAlert{
		ID:        uuid.New(),
		WarningID: p.WarningID,
		ChargeID:  p.ChargeID,
		PaymentID: p.PaymentID,
		FraudType: p.FraudType,
		Severity:  domain.AlertSeverityCritical,
		Status:    domain.AlertStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.fraudRepo.UpsertAlert(ctx, alert); err != nil {
		return ports.Critical(fmt.Errorf("storing fraud alert: %w", err))
	}

	if p.PaymentID == "" {
		// The warning referenced only a charge. The alert is on record but
		// access cannot be revoked, which must reach an operator.
		return ports.Critical(fmt.Errorf("fraud warning %s carries no payment reference, access not revoked", p.WarningID))
	}
	if err := s.revokeForPayment(ctx, p.PaymentID); err != nil {
		return ports.Critical(fmt.Errorf("revoking access for fraud warning: %w", err))
	}

	s.log.Warn().
		Str("warning_id", p.WarningID).
		Str("charge_id", p.ChargeID).
		Str("payment_id", p.PaymentID).
		Str("fraud_type", p.FraudType).
		Msg("early fraud warning, access revoked")
	return ports.Processed()
}

// cancelAndRevoke applies a rejected review: the transaction moves to
// canceled where the monotonic graph allows it and the grant is revoked
// either way. A payment already refunded or disputed keeps its status.
func (s *FraudService) cancelAndRevoke(ctx context.Context, paymentID string) error {
	txn, err := s.txRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("loading transaction: %w", err)
	}
	if txn == nil {
		return nil
	}

	if txn.Status.CanTransitionTo(domain.TransactionStatusCanceled) {
		txn.Status = domain.TransactionStatusCanceled
		txn.UpdatedAt = time.Now().UTC()
		if err := s.txRepo.Upsert(ctx, txn); err != nil {
			return fmt.Errorf("canceling transaction: %w", err)
		}
	}

	if txn.CustomerEmailEnc != "" && txn.ProductID != "" {
		email, err := s.encSvc.Decrypt(txn.CustomerEmailEnc)
		if err != nil {
			return fmt.Errorf("decrypting customer email: %w", err)
		}
		return s.fulfillment.RevokeAccess(ctx, email, txn.ProductID)
	}
	return nil
}

// revokeForPayment revokes the grant tied to a payment. An unresolvable
// target is an error, not a skip: the caller escalates it.
func (s *FraudService) revokeForPayment(ctx context.Context, paymentID string) error {
	txn, err := s.txRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("loading transaction: %w", err)
	}
	if txn == nil {
		return fmt.Errorf("no transaction recorded for payment %s, access not revoked", paymentID)
	}
	if txn.CustomerEmailEnc == "" || txn.ProductID == "" {
		return fmt.Errorf("no grant target recorded for payment %s, access not revoked", paymentID)
	}
	email, err := s.encSvc.Decrypt(txn.CustomerEmailEnc)
	if err != nil {
		return fmt.Errorf("decrypting customer email: %w", err)
	}
	return s.fulfillment.RevokeAccess(ctx, email, txn.ProductID)
}
