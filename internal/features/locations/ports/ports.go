package ports

import (
	"context"

	"carrier-sales/internal/features/locations/domain"
)

// Scorer rates the similarity of two strings on a 0-100 scale.
type Scorer func(query, candidate string) float64

// Geocoder resolves free text to a city through an external service.
// Implementations return domain.ErrNoGeocodeResult when the service has no answer.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*domain.City, error)
}

// LocationResolver turns free text into a city, state or region.
type LocationResolver interface {
	Resolve(ctx context.Context, text string) (domain.ResolvedLocation, error)
}
