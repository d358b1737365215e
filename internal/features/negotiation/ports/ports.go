package ports

import (
	"context"

	loaddomain "carrier-sales/internal/features/loads/domain"
	"carrier-sales/internal/features/negotiation/domain"
	setdomain "carrier-sales/internal/features/settings/domain"
)

// NegotiationService defines the primary port for judging asks and logging offers.
type NegotiationService interface {
	Analyze(ctx context.Context, loadID string, asking domain.Asking) (*domain.Analysis, error)
	LogOffer(ctx context.Context, req domain.OfferRequest) (*domain.Offer, error)
}

// LoadReader reads a single load. Get returns nil, nil when the id is unknown.
type LoadReader interface {
	Get(ctx context.Context, id string) (*loaddomain.Load, error)
}

// OfferRepository defines the secondary port for offer storage.
type OfferRepository interface {
	Insert(ctx context.Context, offer *domain.Offer) error
}

// SettingsProvider supplies the current margin settings.
type SettingsProvider interface {
	GetNegotiationSettings(ctx context.Context) (setdomain.NegotiationSettings, error)
}
