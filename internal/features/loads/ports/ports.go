package ports

import (
	"context"

	"carrier-sales/internal/features/loads/domain"
	locdomain "carrier-sales/internal/features/locations/domain"
	setdomain "carrier-sales/internal/features/settings/domain"
)

// LoadService defines the primary port for load search and scheduling.
type LoadService interface {
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error)
	SearchLane(ctx context.Context, origin, destination string) (*domain.SearchResult, error)
	GetLoad(ctx context.Context, id string) (*domain.Load, error)
	Reschedule(ctx context.Context, req domain.RescheduleRequest) (*domain.RescheduleResult, error)
}

// LoadRepository defines the secondary port for load storage.
// Get returns nil, nil when the id is unknown.
type LoadRepository interface {
	ListAvailable(ctx context.Context) ([]domain.Load, error)
	Get(ctx context.Context, id string) (*domain.Load, error)
}

// LocationResolver turns carrier-supplied text into a city, state or region.
type LocationResolver interface {
	Resolve(ctx context.Context, text string) (locdomain.ResolvedLocation, error)
}

// PlaceDirectory maps a load's display name to its state and region.
type PlaceDirectory interface {
	Lookup(name string) (locdomain.Place, bool)
}

// SettingsProvider supplies the current margin settings.
type SettingsProvider interface {
	GetNegotiationSettings(ctx context.Context) (setdomain.NegotiationSettings, error)
}
