package service

import (
	"encoding/json"
	"fmt"
	"time"

	"storefront-events/internal/core/domain"
	"storefront-events/pkg/apperror"
)

// JSONEventDecoder implements ports.EventDecoder.
//
// The provider envelope is {"id","type","created","data":{"object":{...}}}.
// Each handled type tag maps to exactly one typed payload; a payload that
// fails to match its variant's required shape is a fatal decode error, while
// a type tag outside the handled set decodes to a NoOp event.
type JSONEventDecoder struct{}

// NewJSONEventDecoder creates a new decoder.
func NewJSONEventDecoder() *JSONEventDecoder {
	return &JSONEventDecoder{}
}

type eventEnvelope struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type paymentObject struct {
	ID            string `json:"id"`
	CustomerEmail string `json:"customer_email"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	RiskLevel     string `json:"risk_level"`
	PaymentMethod string `json:"payment_method_type"`
	ProductID     string `json:"product_id"`
	FailureReason string `json:"failure_reason"`
}

type reviewObject struct {
	ID            string `json:"id"`
	PaymentIntent string `json:"payment_intent"`
	Reason        string `json:"reason"`
	ClosedReason  string `json:"closed_reason"`
}

type fraudObject struct {
	ID            string `json:"id"`
	Charge        string `json:"charge"`
	PaymentIntent string `json:"payment_intent"`
	FraudType     string `json:"fraud_type"`
}

type chargeObject struct {
	ID            string `json:"id"`
	PaymentIntent string `json:"payment_intent"`
	Amount        int64  `json:"amount"`
	Refunded      bool   `json:"refunded"`
}

type disputeObject struct {
	ID            string `json:"id"`
	Charge        string `json:"charge"`
	PaymentIntent string `json:"payment_intent"`
	Status        string `json:"status"`
	Reason        string `json:"reason"`
}

type checkoutObject struct {
	ID            string `json:"id"`
	Mode          string `json:"mode"`
	Subscription  string `json:"subscription"`
	CustomerEmail string `json:"customer_email"`
	AmountTotal   int64  `json:"amount_total"`
	Metadata      struct {
		ProductID string `json:"product_id"`
		PlanTier  string `json:"plan_tier"`
		SeatLimit int    `json:"seat_limit,string"`
	} `json:"metadata"`
}

type subscriptionObject struct {
	ID                string `json:"id"`
	CustomerEmail     string `json:"customer_email"`
	PlanTier          string `json:"plan_tier"`
	RecurringAmount   int64  `json:"recurring_amount"`
	Currency          string `json:"currency"`
	Status            string `json:"status"`
	CurrentPeriodEnd  int64  `json:"current_period_end"`
	CancelAtPeriodEnd bool   `json:"cancel_at_period_end"`
}

type invoiceObject struct {
	ID                 string `json:"id"`
	Subscription       string `json:"subscription"`
	CustomerEmail      string `json:"customer_email"`
	AmountDue          int64  `json:"amount_due"`
	BillingReason      string `json:"billing_reason"`
	NextPaymentAttempt int64  `json:"next_payment_attempt"`
}

// Decode parses a verified payload into the closed event union.
func (d *JSONEventDecoder) Decode(payload []byte) (*domain.Event, error) {
	var env eventEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, apperror.ErrMalformedPayload(err)
	}
	if env.ID == "" || env.Type == "" {
		return nil, apperror.ErrMalformedPayload(fmt.Errorf("missing event id or type"))
	}

	ev := &domain.Event{
		ID:        env.ID,
		Type:      domain.EventType(env.Type),
		CreatedAt: time.Unix(env.Created, 0).UTC(),
	}

	switch ev.Type {
	case domain.EventPaymentSucceeded, domain.EventPaymentProcessing,
		domain.EventPaymentFailed, domain.EventPaymentCanceled:
		var obj paymentObject
		if err := unmarshalObject(env, &obj); err != nil {
			return nil, apperror.ErrInvalidEventShape(env.Type, err)
		}
		if obj.ID == "" {
			return nil, apperror.ErrInvalidEventShape(env.Type, fmt.Errorf("missing payment id"))
		}
		ev.Payment = &domain.PaymentPayload{
			PaymentID:     obj.ID,
			CustomerEmail: obj.CustomerEmail,
			Amount:        obj.Amount,
			Currency:      obj.Currency,
			RiskLevel:     obj.RiskLevel,
			PaymentMethod: obj.PaymentMethod,
			ProductID:     obj.ProductID,
			FailureReason: obj.FailureReason,
		}

	case domain.EventReviewOpened, domain.EventReviewClosed:
		var obj reviewObject
		if err := unmarshalObject(env, &obj); err != nil {
			return nil, apperror.ErrInvalidEventShape(env.Type, err)
		}
		if obj.ID == "" || obj.PaymentIntent == "" {
			return nil, apperror.ErrInvalidEventShape(env.Type, fmt.Errorf("missing review or payment id"))
		}
		ev.Review = &domain.ReviewPayload{
			ReviewID:     obj.ID,
			PaymentID:    obj.PaymentIntent,
			Reason:       obj.Reason,
			ClosedReason: obj.ClosedReason,
		}

	case domain.EventFraudWarning:
		var obj fraudObject
		if err := unmarshalObject(env, &obj); err != nil {
			return nil, apperror.ErrInvalidEventShape(env.Type, err)
		}
		if obj.ID == "" || obj.Charge == "" {
			return nil, apperror.ErrInvalidEventShape(env.Type, fmt.Errorf("missing warning or charge id"))
		}
		ev.Fraud = &domain.FraudPayload{
			WarningID: obj.ID,
			ChargeID:  obj.Charge,
			PaymentID: obj.PaymentIntent,
			FraudType: obj.FraudType,
		}

	case domain.EventChargeRefunded:
		var obj chargeObject
		if err := unmarshalObject(env, &obj); err != nil {
			return nil, apperror.ErrInvalidEventShape(env.Type, err)
		}
		if obj.ID == "" || obj.PaymentIntent == "" {
			return nil, apperror.ErrInvalidEventShape(env.Type, fmt.Errorf("missing charge or payment id"))
		}
		ev.Charge = &domain.ChargePayload{
			ChargeID:  obj.ID,
			PaymentID: obj.PaymentIntent,
			Amount:    obj.Amount,
			Refunded:  obj.Refunded,
		}

	case domain.EventDisputeCreated, domain.EventDisputeClosed:
		var obj disputeObject
		if err := unmarshalObject(env, &obj); err != nil {
			return nil, apperror.ErrInvalidEventShape(env.Type, err)
		}
		if obj.ID == "" || obj.PaymentIntent == "" {
			return nil, apperror.ErrInvalidEventShape(env.Type, fmt.Errorf("missing dispute or payment id"))
		}
		ev.Dispute = &domain.DisputePayload{
			DisputeID: obj.ID,
			ChargeID:  obj.Charge,
			PaymentID: obj.PaymentIntent,
			Status:    obj.Status,
			Reason:    obj.Reason,
		}

	case domain.EventCheckoutCompleted:
		var obj checkoutObject
		if err := unmarshalObject(env, &obj); err != nil {
			return nil, apperror.ErrInvalidEventShape(env.Type, err)
		}
		if obj.ID == "" || obj.Mode == "" {
			return nil, apperror.ErrInvalidEventShape(env.Type, fmt.Errorf("missing session id or mode"))
		}
		ev.Checkout = &domain.CheckoutPayload{
			SessionID:      obj.ID,
			Mode:           obj.Mode,
			SubscriptionID: obj.Subscription,
			CustomerEmail:  obj.CustomerEmail,
			ProductID:      obj.Metadata.ProductID,
			PlanTier:       obj.Metadata.PlanTier,
			SeatLimit:      obj.Metadata.SeatLimit,
			AmountTotal:    obj.AmountTotal,
		}

	case domain.EventSubscriptionCreated, domain.EventSubscriptionUpdated,
		domain.EventSubscriptionDeleted:
		var obj subscriptionObject
		if err := unmarshalObject(env, &obj); err != nil {
			return nil, apperror.ErrInvalidEventShape(env.Type, err)
		}
		if obj.ID == "" {
			return nil, apperror.ErrInvalidEventShape(env.Type, fmt.Errorf("missing subscription id"))
		}
		ev.Subscription = &domain.SubscriptionPayload{
			SubscriptionID:    obj.ID,
			CustomerEmail:     obj.CustomerEmail,
			PlanTier:          obj.PlanTier,
			RecurringAmount:   obj.RecurringAmount,
			Currency:          obj.Currency,
			Status:            obj.Status,
			CurrentPeriodEnd:  time.Unix(obj.CurrentPeriodEnd, 0).UTC(),
			CancelAtPeriodEnd: obj.CancelAtPeriodEnd,
		}

	case domain.EventInvoiceSucceeded, domain.EventInvoiceFailed:
		var obj invoiceObject
		if err := unmarshalObject(env, &obj); err != nil {
			return nil, apperror.ErrInvalidEventShape(env.Type, err)
		}
		if obj.ID == "" || obj.Subscription == "" {
			return nil, apperror.ErrInvalidEventShape(env.Type, fmt.Errorf("missing invoice or subscription id"))
		}
		inv := &domain.InvoicePayload{
			InvoiceID:      obj.ID,
			SubscriptionID: obj.Subscription,
			CustomerEmail:  obj.CustomerEmail,
			AmountDue:      obj.AmountDue,
			BillingReason:  obj.BillingReason,
		}
		if obj.NextPaymentAttempt > 0 {
			t := time.Unix(obj.NextPaymentAttempt, 0).UTC()
			inv.NextRetryAt = &t
		}
		ev.Invoice = inv

	default:
		// Accepted-and-ignored: unknown types are acknowledged without action.
		ev.Type = domain.EventNoOp
	}

	return ev, nil
}

func unmarshalObject(env eventEnvelope, out any) error {
	if len(env.Data.Object) == 0 {
		return fmt.Errorf("missing data.object")
	}
	return json.Unmarshal(env.Data.Object, out)
}
