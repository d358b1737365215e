package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carrier-sales/internal/core/cache"
	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/features/carriers/domain"
	"carrier-sales/internal/features/carriers/ports"

	"go.uber.org/zap"
)

// CachedRegistry remembers lookups of the wrapped registry per MC number and mode.
// Mode keeps live and demo answers for the same MC apart.
type CachedRegistry struct {
	next  ports.CarrierRegistry
	cache cache.Cache
	ttl   time.Duration
	mode  string
}

// NewCachedRegistry wraps next with a cache whose entries live for ttl.
func NewCachedRegistry(next ports.CarrierRegistry, c cache.Cache, ttl time.Duration, mode string) *CachedRegistry {
	return &CachedRegistry{
		next:  next,
		cache: c,
		ttl:   ttl,
		mode:  mode,
	}
}

func (r *CachedRegistry) key(mc string) string {
	return fmt.Sprintf("fmcsa:%s:%s", r.mode, mc)
}

// Lookup implements ports.CarrierRegistry.
func (r *CachedRegistry) Lookup(ctx context.Context, mc string) (*domain.Carrier, error) {
	key := r.key(mc)

	data, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var carrier domain.Carrier
		if jsonErr := json.Unmarshal(data, &carrier); jsonErr == nil {
			logger.Named("fmcsa").Debug("Carrier cache hit", zap.String("mc_number", mc))
			return &carrier, nil
		}
		logger.Named("fmcsa").Warn("Discarding corrupt carrier cache entry", zap.String("mc_number", mc))
	case !errors.Is(err, cache.ErrKeyNotFound):
		logger.Named("fmcsa").Warn("Carrier cache unavailable", zap.String("mc_number", mc), zap.Error(err))
	}

	carrier, err := r.next.Lookup(ctx, mc)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(carrier); err == nil {
		if err := r.cache.Set(ctx, key, payload, r.ttl); err != nil {
			logger.Named("fmcsa").Warn("Failed to cache carrier", zap.String("mc_number", mc), zap.Error(err))
		}
	}

	return carrier, nil
}
