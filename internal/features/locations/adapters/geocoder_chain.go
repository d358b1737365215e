package adapters

import (
	"context"
	"errors"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/features/locations/domain"
	"carrier-sales/internal/features/locations/ports"

	"go.uber.org/zap"
)

// GeocoderChain asks each geocoder in order and returns the first answer.
type GeocoderChain struct {
	geocoders []ports.Geocoder
}

// NewGeocoderChain creates a chain over the given geocoders.
func NewGeocoderChain(geocoders ...ports.Geocoder) *GeocoderChain {
	return &GeocoderChain{geocoders: geocoders}
}

// Geocode returns the first successful lookup. When every geocoder fails the
// last transport error is returned, or ErrNoGeocodeResult if none errored.
func (c *GeocoderChain) Geocode(ctx context.Context, query string) (*domain.City, error) {
	var lastErr error
	for i, g := range c.geocoders {
		city, err := g.Geocode(ctx, query)
		if err == nil {
			return city, nil
		}
		if errors.Is(err, domain.ErrNoGeocodeResult) {
			continue
		}
		logger.Named("geocoder").Debug("Geocoder failed, trying next",
			zap.Int("position", i),
			zap.String("query", query),
			zap.Error(err),
		)
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, domain.ErrNoGeocodeResult
}
