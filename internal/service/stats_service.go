package service

import (
	"context"
	"fmt"

	"storefront-events/internal/core/ports"

	"github.com/rs/zerolog"
)

// PipelineStatsService implements ports.StatsService by aggregating counters
// from the ledger and entity repositories.
type PipelineStatsService struct {
	ledger    ports.EventLedger
	txRepo    ports.TransactionRepository
	subRepo   ports.SubscriptionRepository
	grantRepo ports.AccessGrantRepository
	log       zerolog.Logger
}

// NewPipelineStatsService creates a new PipelineStatsService.
func NewPipelineStatsService(
	ledger ports.EventLedger,
	txRepo ports.TransactionRepository,
	subRepo ports.SubscriptionRepository,
	grantRepo ports.AccessGrantRepository,
	log zerolog.Logger,
) *PipelineStatsService {
	return &PipelineStatsService{
		ledger:    ledger,
		txRepo:    txRepo,
		subRepo:   subRepo,
		grantRepo: grantRepo,
		log:       log,
	}
}

// GetPipelineStats returns current counters for the operator endpoint.
func (s *PipelineStatsService) GetPipelineStats(ctx context.Context) (*ports.PipelineStats, error) {
	events, err := s.ledger.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting events: %w", err)
	}
	txByStatus, err := s.txRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting transactions: %w", err)
	}
	subByStatus, err := s.subRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting subscriptions: %w", err)
	}
	grants, err := s.grantRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting grants: %w", err)
	}

	return &ports.PipelineStats{
		EventsSeen:            events,
		TransactionsByStatus:  txByStatus,
		SubscriptionsByStatus: subByStatus,
		ActiveGrants:          grants,
	}, nil
}
