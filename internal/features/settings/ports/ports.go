package ports

import (
	"context"

	"carrier-sales/internal/features/settings/domain"
)

// SettingsService defines the primary port for negotiation settings.
type SettingsService interface {
	GetNegotiationSettings(ctx context.Context) (domain.NegotiationSettings, error)
	UpdateNegotiationSettings(ctx context.Context, update domain.Update) (domain.NegotiationSettings, error)
}

// SettingsRepository defines the secondary port for the flat key/value settings store.
type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]domain.Value, error)
	UpsertAll(ctx context.Context, values map[string]domain.Value) error
}
