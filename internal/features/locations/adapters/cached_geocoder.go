package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"carrier-sales/internal/core/cache"
	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/core/metrics"
	"carrier-sales/internal/features/locations/domain"
	"carrier-sales/internal/features/locations/ports"

	"go.uber.org/zap"
)

const geocodeKeyPrefix = "geocode:"

// cachedCity is the stored form of a geocoded city. domain.City marshals to the
// response shape, which carries the name as "label".
type cachedCity struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// CachedGeocoder remembers successful lookups of the wrapped geocoder.
// Concurrent misses for the same query may both call through; the last write wins.
type CachedGeocoder struct {
	next  ports.Geocoder
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedGeocoder wraps next with a cache whose entries live for ttl.
func NewCachedGeocoder(next ports.Geocoder, c cache.Cache, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

// Geocode serves query from the cache, falling through to the wrapped geocoder on a miss.
func (g *CachedGeocoder) Geocode(ctx context.Context, query string) (*domain.City, error) {
	key := geocodeKeyPrefix + query

	data, err := g.cache.Get(ctx, key)
	switch {
	case err == nil:
		var entry cachedCity
		if jsonErr := json.Unmarshal(data, &entry); jsonErr == nil && entry.Name != "" {
			metrics.GeocodeLookups.WithLabelValues("hit").Inc()
			return &domain.City{Name: entry.Name, Lat: entry.Lat, Lng: entry.Lng}, nil
		}
		logger.Named("geocoder").Warn("Discarding corrupt geocode cache entry", zap.String("query", query))
	case !errors.Is(err, cache.ErrKeyNotFound):
		logger.Named("geocoder").Warn("Geocode cache unavailable", zap.String("query", query), zap.Error(err))
	}

	city, err := g.next.Geocode(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrNoGeocodeResult) {
			metrics.GeocodeLookups.WithLabelValues("not_found").Inc()
		} else {
			metrics.GeocodeLookups.WithLabelValues("error").Inc()
		}
		return nil, err
	}
	metrics.GeocodeLookups.WithLabelValues("miss").Inc()

	if payload, err := json.Marshal(cachedCity{Name: city.Name, Lat: city.Lat, Lng: city.Lng}); err == nil {
		if err := g.cache.Set(ctx, key, payload, g.ttl); err != nil {
			logger.Named("geocoder").Warn("Failed to cache geocode result", zap.String("query", query), zap.Error(err))
		}
	}

	return city, nil
}
