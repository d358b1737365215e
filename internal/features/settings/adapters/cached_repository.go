package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carrier-sales/internal/core/cache"
	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/features/settings/domain"
	"carrier-sales/internal/features/settings/ports"

	"go.uber.org/zap"
)

const settingsCacheKey = "settings:negotiation"

// CachedSettingsRepository keeps a snapshot of the settings table in the cache.
// Writes go to the underlying repository and drop the snapshot.
type CachedSettingsRepository struct {
	next  ports.SettingsRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedSettingsRepository creates a new CachedSettingsRepository.
func NewCachedSettingsRepository(next ports.SettingsRepository, c cache.Cache, ttl time.Duration) *CachedSettingsRepository {
	return &CachedSettingsRepository{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

// GetAll serves the snapshot when present, otherwise reads through and stores it.
func (r *CachedSettingsRepository) GetAll(ctx context.Context) (map[string]domain.Value, error) {
	data, err := r.cache.Get(ctx, settingsCacheKey)
	if err == nil {
		var values map[string]domain.Value
		if err := json.Unmarshal(data, &values); err == nil {
			return values, nil
		}
		logger.Named("settings").Warn("Discarding unreadable settings snapshot")
	} else if !errors.Is(err, cache.ErrKeyNotFound) {
		logger.Named("settings").Warn("Settings cache unavailable", zap.Error(err))
	}

	values, err := r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := r.cache.Set(ctx, settingsCacheKey, data, r.ttl); err != nil {
		logger.Named("settings").Warn("Failed to cache settings", zap.Error(err))
	}

	return values, nil
}

// UpsertAll writes through and invalidates the snapshot.
func (r *CachedSettingsRepository) UpsertAll(ctx context.Context, values map[string]domain.Value) error {
	if err := r.next.UpsertAll(ctx, values); err != nil {
		return err
	}

	if err := r.cache.Delete(ctx, settingsCacheKey); err != nil {
		logger.Named("settings").Warn("Failed to invalidate settings cache", zap.Error(err))
	}
	return nil
}
