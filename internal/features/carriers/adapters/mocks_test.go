package adapters

import (
	"context"

	"carrier-sales/internal/features/carriers/domain"

	"github.com/stretchr/testify/mock"
)

// MockCarrierRegistry is a mock implementation of ports.CarrierRegistry.
type MockCarrierRegistry struct {
	mock.Mock
}

func (m *MockCarrierRegistry) Lookup(ctx context.Context, mc string) (*domain.Carrier, error) {
	args := m.Called(ctx, mc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Carrier), args.Error(1)
}
