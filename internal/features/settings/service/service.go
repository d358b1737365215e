package service

import (
	"context"
	"fmt"

	"carrier-sales/internal/features/settings/domain"
	"carrier-sales/internal/features/settings/ports"
)

// SettingsServiceImpl implements ports.SettingsService.
type SettingsServiceImpl struct {
	repo ports.SettingsRepository
}

// NewSettingsService creates a new SettingsServiceImpl.
func NewSettingsService(repo ports.SettingsRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		repo: repo,
	}
}

// GetNegotiationSettings returns stored settings overlaid on the defaults.
func (s *SettingsServiceImpl) GetNegotiationSettings(ctx context.Context) (domain.NegotiationSettings, error) {
	values, err := s.repo.GetAll(ctx)
	if err != nil {
		return domain.NegotiationSettings{}, fmt.Errorf("service: failed to get settings: %w", err)
	}
	return domain.FromValues(values), nil
}

// UpdateNegotiationSettings stores the provided fields and returns the resulting settings.
func (s *SettingsServiceImpl) UpdateNegotiationSettings(ctx context.Context, update domain.Update) (domain.NegotiationSettings, error) {
	values, err := update.Values()
	if err != nil {
		return domain.NegotiationSettings{}, err
	}

	if len(values) > 0 {
		if err := s.repo.UpsertAll(ctx, values); err != nil {
			return domain.NegotiationSettings{}, fmt.Errorf("service: failed to save settings: %w", err)
		}
	}

	return s.GetNegotiationSettings(ctx)
}
