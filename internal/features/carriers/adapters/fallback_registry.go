package adapters

import (
	"context"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/features/carriers/domain"
	"carrier-sales/internal/features/carriers/ports"

	"go.uber.org/zap"
)

// FallbackRegistry asks primary first and answers from fallback when primary
// fails or does not know the carrier.
type FallbackRegistry struct {
	primary  ports.CarrierRegistry
	fallback ports.CarrierRegistry
}

// NewFallbackRegistry creates a FallbackRegistry.
func NewFallbackRegistry(primary, fallback ports.CarrierRegistry) *FallbackRegistry {
	return &FallbackRegistry{
		primary:  primary,
		fallback: fallback,
	}
}

// Lookup implements ports.CarrierRegistry.
func (r *FallbackRegistry) Lookup(ctx context.Context, mc string) (*domain.Carrier, error) {
	carrier, err := r.primary.Lookup(ctx, mc)
	if err == nil && carrier != nil && carrier.Status != domain.StatusNotFound {
		return carrier, nil
	}
	if err != nil {
		logger.Named("fmcsa").Warn("Carrier registry unavailable, using fallback",
			zap.String("mc_number", mc),
			zap.Error(err),
		)
	}
	return r.fallback.Lookup(ctx, mc)
}
