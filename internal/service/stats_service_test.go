package service

import (
	"context"
	"errors"
	"testing"

	"storefront-events/internal/core/domain"
	"storefront-events/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPipelineStatsService_Aggregates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockEventLedger(ctrl)
	txRepo := mocks.NewMockTransactionRepository(ctrl)
	subRepo := mocks.NewMockSubscriptionRepository(ctrl)
	grantRepo := mocks.NewMockAccessGrantRepository(ctrl)
	svc := NewPipelineStatsService(ledger, txRepo, subRepo, grantRepo, zerolog.Nop())

	ctx := context.Background()
	ledger.EXPECT().Count(ctx).Return(int64(42), nil)
	txRepo.EXPECT().CountByStatus(ctx).Return(map[domain.TransactionStatus]int64{
		domain.TransactionStatusSucceeded: 30,
		domain.TransactionStatusFailed:    5,
	}, nil)
	subRepo.EXPECT().CountByStatus(ctx).Return(map[domain.SubscriptionStatus]int64{
		domain.SubscriptionStatusActive: 7,
	}, nil)
	grantRepo.EXPECT().CountActive(ctx).Return(int64(33), nil)

	stats, err := svc.GetPipelineStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.EventsSeen)
	assert.Equal(t, int64(30), stats.TransactionsByStatus[domain.TransactionStatusSucceeded])
	assert.Equal(t, int64(7), stats.SubscriptionsByStatus[domain.SubscriptionStatusActive])
	assert.Equal(t, int64(33), stats.ActiveGrants)
}

func TestPipelineStatsService_LedgerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockEventLedger(ctrl)
	txRepo := mocks.NewMockTransactionRepository(ctrl)
	subRepo := mocks.NewMockSubscriptionRepository(ctrl)
	grantRepo := mocks.NewMockAccessGrantRepository(ctrl)
	svc := NewPipelineStatsService(ledger, txRepo, subRepo, grantRepo, zerolog.Nop())

	ctx := context.Background()
	ledger.EXPECT().Count(ctx).Return(int64(0), errors.New("db down"))

	_, err := svc.GetPipelineStats(ctx)
	require.Error(t, err)
}
