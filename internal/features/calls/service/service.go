package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/core/metrics"
	"carrier-sales/internal/features/calls/domain"
	"carrier-sales/internal/features/calls/ports"
	carrierdomain "carrier-sales/internal/features/carriers/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CallServiceImpl implements ports.CallService.
type CallServiceImpl struct {
	calls        ports.CallRepository
	interactions ports.InteractionRepository
	now          func() time.Time
	newID        func(prefix string) string
}

// NewCallService creates a new CallServiceImpl.
func NewCallService(calls ports.CallRepository, interactions ports.InteractionRepository) *CallServiceImpl {
	return &CallServiceImpl{
		calls:        calls,
		interactions: interactions,
		now:          time.Now,
		newID:        newID,
	}
}

// LogCall records the outcome of an inbound carrier call.
func (s *CallServiceImpl) LogCall(ctx context.Context, call domain.Call) (*domain.CallReceipt, error) {
	if err := call.Normalize(); err != nil {
		return nil, err
	}

	call.ID = s.newID("CALL-")
	call.CreatedAt = s.now().UTC()

	if err := s.calls.Insert(ctx, &call); err != nil {
		return nil, fmt.Errorf("service: failed to save call: %w", err)
	}

	metrics.CallsLogged.WithLabelValues(string(call.Outcome)).Inc()
	logger.Get().Info("Call logged",
		zap.String("id", call.ID),
		zap.String("call_id", call.CallID),
		zap.String("outcome", string(call.Outcome)),
		zap.String("sentiment", string(call.Sentiment)),
	)

	return &domain.CallReceipt{
		ID:        call.ID,
		CallID:    call.CallID,
		Outcome:   call.Outcome,
		Sentiment: call.Sentiment,
		CreatedAt: call.CreatedAt,
	}, nil
}

// LogInteraction records a touchpoint with a carrier.
func (s *CallServiceImpl) LogInteraction(ctx context.Context, interaction domain.Interaction) (*domain.Interaction, error) {
	if err := interaction.Normalize(); err != nil {
		return nil, err
	}

	interaction.ID = s.newID("CI-")
	interaction.CreatedAt = s.now().UTC()

	if err := s.interactions.Insert(ctx, &interaction); err != nil {
		return nil, fmt.Errorf("service: failed to save interaction: %w", err)
	}
	return &interaction, nil
}

// History returns every interaction recorded for a carrier.
func (s *CallServiceImpl) History(ctx context.Context, mcNumber string) (*domain.InteractionHistory, error) {
	mc := carrierdomain.NormalizeMC(mcNumber)
	if mc == "" {
		return nil, fmt.Errorf("%w: mc_number must contain digits", domain.ErrInvalidInteraction)
	}

	interactions, err := s.interactions.ListByMC(ctx, mc)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list interactions: %w", err)
	}

	return &domain.InteractionHistory{
		MCNumber:          mc,
		TotalInteractions: len(interactions),
		Interactions:      interactions,
	}, nil
}

func newID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
