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

// TransactionService implements ports.TransactionHandler: the one-time
// payment state machine. Pure transition decisions live on the domain type;
// this service applies them and drives the fulfillment actuator.
type TransactionService struct {
	txRepo      ports.TransactionRepository
	fraudRepo   ports.FraudRepository
	fulfillment ports.Fulfillment
	encSvc      ports.EncryptionService
	log         zerolog.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txRepo ports.TransactionRepository,
	fraudRepo ports.FraudRepository,
	fulfillment ports.Fulfillment,
	encSvc ports.EncryptionService,
	log zerolog.Logger,
) *TransactionService {
	return &TransactionService{
		txRepo:      txRepo,
		fraudRepo:   fraudRepo,
		fulfillment: fulfillment,
		encSvc:      encSvc,
		log:         log,
	}
}

// HandlePaymentProcessing records the delayed-settlement acceptance state.
// This event exists for payment rails whose funds clear days after initial
// acceptance; it must never grant access.
func (s *TransactionService) HandlePaymentProcessing(ctx context.Context, ev *domain.Event) ports.Outcome {
	_, outcome := s.applyPaymentStatus(ctx, ev.Payment, domain.TransactionStatusProcessing)
	return outcome
}

// HandlePaymentSucceeded transitions the transaction to succeeded. This is
// the only event permitted to trigger fulfillment, and fulfillment is gated
// on the fraud review state, not just payment status.
func (s *TransactionService) HandlePaymentSucceeded(ctx context.Context, ev *domain.Event) ports.Outcome {
	txn, outcome := s.applyPaymentStatus(ctx, ev.Payment, domain.TransactionStatusSucceeded)
	if outcome.Status != ports.OutcomeProcessed {
		return outcome
	}

	if err := s.FulfillTransaction(ctx, txn.PaymentID); err != nil {
		// The customer has been charged: acknowledge the delivery and leave
		// the fault for out-of-band remediation rather than invite a retry
		// storm that would not fix a downstream fault.
		s.log.Error().Err(err).
			Str("payment_id", txn.PaymentID).
			Msg("fulfillment failed after successful payment")
		return ports.Recoverable(err)
	}
	return ports.Processed()
}

// HandlePaymentFailed records the failure reason. No access change.
func (s *TransactionService) HandlePaymentFailed(ctx context.Context, ev *domain.Event) ports.Outcome {
	_, outcome := s.applyPaymentStatus(ctx, ev.Payment, domain.TransactionStatusFailed)
	return outcome
}

// HandlePaymentCanceled records cancellation. No access change.
func (s *TransactionService) HandlePaymentCanceled(ctx context.Context, ev *domain.Event) ports.Outcome {
	_, outcome := s.applyPaymentStatus(ctx, ev.Payment, domain.TransactionStatusCanceled)
	return outcome
}

// HandleChargeRefunded moves a succeeded transaction to refunded and revokes
// the access the charge paid for.
func (s *TransactionService) HandleChargeRefunded(ctx context.Context, ev *domain.Event) ports.Outcome {
	charge := ev.Charge
	txn, err := s.txRepo.GetByPaymentID(ctx, charge.PaymentID)
	if err != nil {
		return ports.Internal(fmt.Errorf("loading transaction: %w", err))
	}
	if txn == nil {
		s.log.Warn().
			Str("payment_id", charge.PaymentID).
			Str("charge_id", charge.ChargeID).
			Msg("refund for unknown payment, ignoring")
		return ports.Ignored()
	}

	if !txn.Status.CanTransitionTo(domain.TransactionStatusRefunded) {
		s.log.Info().
			Str("payment_id", txn.PaymentID).
			Str("status", string(txn.Status)).
			Msg("refund event does not advance status, ignoring")
		return ports.Ignored()
	}

	txn.Status = domain.TransactionStatusRefunded
	txn.UpdatedAt = time.Now().UTC()
	if err := s.txRepo.Upsert(ctx, txn); err != nil {
		return ports.Internal(fmt.Errorf("updating transaction: %w", err))
	}

	if err := s.revokeForTransaction(ctx, txn); err != nil {
		return ports.Recoverable(err)
	}
	return ports.Processed()
}

// HandleDisputeCreated marks a succeeded transaction as disputed.
func (s *TransactionService) HandleDisputeCreated(ctx context.Context, ev *domain.Event) ports.Outcome {
	dispute := ev.Dispute
	txn, err := s.txRepo.GetByPaymentID(ctx, dispute.PaymentID)
	if err != nil {
		return ports.Internal(fmt.Errorf("loading transaction: %w", err))
	}
	if txn == nil {
		s.log.Warn().
			Str("payment_id", dispute.PaymentID).
			Msg("dispute for unknown payment, ignoring")
		return ports.Ignored()
	}

	if !txn.Status.CanTransitionTo(domain.TransactionStatusDisputed) {
		return ports.Ignored()
	}

	txn.Status = domain.TransactionStatusDisputed
	txn.UpdatedAt = time.Now().UTC()
	if err := s.txRepo.Upsert(ctx, txn); err != nil {
		return ports.Internal(fmt.Errorf("updating transaction: %w", err))
	}

	s.log.Warn().
		Str("payment_id", txn.PaymentID).
		Str("dispute_id", dispute.DisputeID).
		Str("reason", dispute.Reason).
		Msg("dispute opened")
	return ports.Processed()
}

// HandleDisputeClosed applies the dispute outcome. A lost dispute revokes
// access permanently. A won dispute does NOT automatically restore access
// revoked in the meantime; restoration is an explicit operator action.
func (s *TransactionService) HandleDisputeClosed(ctx context.Context, ev *domain.Event) ports.Outcome {
	dispute := ev.Dispute
	txn, err := s.txRepo.GetByPaymentID(ctx, dispute.PaymentID)
	if err != nil {
		return ports.Internal(fmt.Errorf("loading transaction: %w", err))
	}
	if txn == nil {
		return ports.Ignored()
	}

	switch dispute.Status {
	case "lost":
		if err := s.revokeForTransaction(ctx, txn); err != nil {
			return ports.Recoverable(err)
		}
		s.log.Warn().
			Str("payment_id", txn.PaymentID).
			Str("dispute_id", dispute.DisputeID).
			Msg("dispute lost, access revoked")
	case "won":
		s.log.Info().
			Str("payment_id", txn.PaymentID).
			Str("dispute_id", dispute.DisputeID).
			Msg("dispute won; any prior revocation requires operator restoration")
	default:
		return ports.Ignored()
	}
	return ports.Processed()
}

// FulfillTransaction grants access for a succeeded, not-yet-fulfilled
// transaction, unless a fraud review gates it. Also invoked by the fraud
// gate when a pending review resolves in the customer's favor.
func (s *TransactionService) FulfillTransaction(ctx context.Context, paymentID string) error {
	txn, err := s.txRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("loading transaction: %w", err)
	}
	if txn == nil {
		return fmt.Errorf("transaction not found: %s", paymentID)
	}
	if txn.Status != domain.TransactionStatusSucceeded {
		s.log.Debug().
			Str("payment_id", paymentID).
			Str("status", string(txn.Status)).
			Msg("transaction not in succeeded state, skipping fulfillment")
		return nil
	}
	if txn.IsFulfilled() {
		return nil
	}

	review, err := s.fraudRepo.GetBlockingReview(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("checking fraud gate: %w", err)
	}
	if review != nil {
		s.log.Warn().
			Str("payment_id", paymentID).
			Str("review_id", review.ReviewID).
			Str("review_status", string(review.Status)).
			Msg("fulfillment withheld pending fraud review")
		return nil
	}

	email, err := s.encSvc.Decrypt(txn.CustomerEmailEnc)
	if err != nil {
		return fmt.Errorf("decrypting customer email: %w", err)
	}

	if _, err := s.fulfillment.GrantAccess(ctx, email, txn.ProductID, domain.GrantTypePurchased, nil); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.txRepo.MarkFulfilled(ctx, paymentID, now); err != nil {
		return fmt.Errorf("marking fulfilled: %w", err)
	}

	s.fulfillment.Notify(ctx, ports.NotifyPurchaseConfirmed, email, map[string]string{
		"payment_id": txn.PaymentID,
		"product_id": txn.ProductID,
		"amount":     fmt.Sprintf("%d", txn.Amount),
		"currency":   txn.Currency,
	})
	return nil
}

// applyPaymentStatus upserts the transaction for a payment event, enforcing
// the monotonic transition graph. Returns the stored transaction and the
// outcome: Ignored when the event is stale for the current status.
func (s *TransactionService) applyPaymentStatus(ctx context.Context, p *domain.PaymentPayload, target domain.TransactionStatus) (*domain.Transaction, ports.Outcome) {
	txn, err := s.txRepo.GetByPaymentID(ctx, p.PaymentID)
	if err != nil {
		return nil, ports.Internal(fmt.Errorf("loading transaction: %w", err))
	}

	now := time.Now().UTC()
	if txn == nil {
		emailEnc, err := s.encSvc.Encrypt(p.CustomerEmail)
		if err != nil {
			return nil, ports.Internal(fmt.Errorf("encrypting customer email: %w", err))
		}
		txn = &domain.Transaction{
			ID:               uuid.New(),
			PaymentID:        p.PaymentID,
			CustomerEmailEnc: emailEnc,
			Amount:           p.Amount,
			Currency:         p.Currency,
			Status:           target,
			ProductID:        p.ProductID,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	} else {
		if txn.Status == target {
			return txn, ports.Ignored()
		}
		if !txn.Status.CanTransitionTo(target) {
			// Out-of-order replay of a stale event: status only moves
			// forward along the graph, never backward.
			s.log.Info().
				Str("payment_id", p.PaymentID).
				Str("current", string(txn.Status)).
				Str("event_target", string(target)).
				Msg("stale transition ignored")
			return txn, ports.Ignored()
		}
		txn.Status = target
		txn.UpdatedAt = now
	}

	switch target {
	case domain.TransactionStatusSucceeded:
		// Risk level and payment method are captured for audit.
		txn.RiskLevel = p.RiskLevel
		txn.PaymentMethod = p.PaymentMethod
	case domain.TransactionStatusFailed:
		if p.FailureReason != "" {
			reason := p.FailureReason
			txn.FailureReason = &reason
		}
	}

	if err := s.txRepo.Upsert(ctx, txn); err != nil {
		return nil, ports.Internal(fmt.Errorf("upserting transaction: %w", err))
	}
	return txn, ports.Processed()
}

// revokeForTransaction deactivates the grant the transaction paid for.
func (s *TransactionService) revokeForTransaction(ctx context.Context, txn *domain.Transaction) error {
	if txn.CustomerEmailEnc == "" || txn.ProductID == "" {
		s.log.Warn().
			Str("payment_id", txn.PaymentID).
			Msg("no subject or resource recorded, nothing to revoke")
		return nil
	}
	email, err := s.encSvc.Decrypt(txn.CustomerEmailEnc)
	if err != nil {
		return fmt.Errorf("decrypting customer email: %w", err)
	}
	return s.fulfillment.RevokeAccess(ctx, email, txn.ProductID)
}
