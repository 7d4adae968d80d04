package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    TransactionStatus
		to      TransactionStatus
		allowed bool
	}{
		{TransactionStatusPending, TransactionStatusProcessing, true},
		{TransactionStatusPending, TransactionStatusSucceeded, true},
		{TransactionStatusPending, TransactionStatusFailed, true},
		{TransactionStatusPending, TransactionStatusCanceled, true},
		{TransactionStatusPending, TransactionStatusRefunded, false},
		{TransactionStatusProcessing, TransactionStatusSucceeded, true},
		{TransactionStatusProcessing, TransactionStatusFailed, true},
		{TransactionStatusProcessing, TransactionStatusCanceled, true},
		{TransactionStatusProcessing, TransactionStatusPending, false},
		{TransactionStatusSucceeded, TransactionStatusRefunded, true},
		{TransactionStatusSucceeded, TransactionStatusDisputed, true},
		{TransactionStatusSucceeded, TransactionStatusProcessing, false},
		{TransactionStatusSucceeded, TransactionStatusFailed, false},
		{TransactionStatusSucceeded, TransactionStatusCanceled, false},
		{TransactionStatusFailed, TransactionStatusSucceeded, false},
		{TransactionStatusCanceled, TransactionStatusSucceeded, false},
		{TransactionStatusRefunded, TransactionStatusDisputed, false},
		{TransactionStatusDisputed, TransactionStatusRefunded, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestTransaction_IsTerminal(t *testing.T) {
	assert.False(t, (&Transaction{Status: TransactionStatusPending}).IsTerminal())
	assert.False(t, (&Transaction{Status: TransactionStatusSucceeded}).IsTerminal())
	assert.True(t, (&Transaction{Status: TransactionStatusFailed}).IsTerminal())
	assert.True(t, (&Transaction{Status: TransactionStatusRefunded}).IsTerminal())
	assert.True(t, (&Transaction{Status: TransactionStatusDisputed}).IsTerminal())
}

func TestParseSubscriptionStatus(t *testing.T) {
	assert.Equal(t, SubscriptionStatusActive, ParseSubscriptionStatus("active"))
	assert.Equal(t, SubscriptionStatusActive, ParseSubscriptionStatus("trialing"))
	assert.Equal(t, SubscriptionStatusPastDue, ParseSubscriptionStatus("past_due"))
	assert.Equal(t, SubscriptionStatusPastDue, ParseSubscriptionStatus("unpaid"))
	assert.Equal(t, SubscriptionStatusCanceled, ParseSubscriptionStatus("canceled"))
}

func TestFraudReview_Blocks(t *testing.T) {
	assert.True(t, (&FraudReview{Status: ReviewStatusPending}).Blocks())
	assert.True(t, (&FraudReview{Status: ReviewStatusRejected}).Blocks())
	assert.False(t, (&FraudReview{Status: ReviewStatusApproved}).Blocks())
}
