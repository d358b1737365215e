package ports

import (
	"context"

	"carrier-sales/internal/features/carriers/domain"
)

// CarrierService defines the primary port for carrier eligibility checks.
type CarrierService interface {
	Verify(ctx context.Context, mcNumber string) (*domain.Verification, error)
}

// CarrierRegistry looks up a carrier by its normalized MC number.
// A registry that does not know the number returns domain.Unknown rather than an error.
type CarrierRegistry interface {
	Lookup(ctx context.Context, mc string) (*domain.Carrier, error)
}
