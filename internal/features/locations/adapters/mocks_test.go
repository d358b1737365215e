package adapters

import (
	"context"

	"carrier-sales/internal/features/locations/domain"

	"github.com/stretchr/testify/mock"
)

// MockGeocoder is a mock implementation of ports.Geocoder.
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (*domain.City, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}
