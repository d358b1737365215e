package service

import (
	"context"
	"fmt"
	"time"

	"carrier-sales/internal/features/loads/domain"
	locdomain "carrier-sales/internal/features/locations/domain"
	setdomain "carrier-sales/internal/features/settings/domain"

	"github.com/stretchr/testify/mock"
)

// MockLoadRepository is a mock implementation of ports.LoadRepository
type MockLoadRepository struct {
	mock.Mock
}

func (m *MockLoadRepository) ListAvailable(ctx context.Context) ([]domain.Load, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Load), args.Error(1)
}

func (m *MockLoadRepository) Get(ctx context.Context, id string) (*domain.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Load), args.Error(1)
}

// stubResolver resolves from a fixed table.
type stubResolver map[string]locdomain.ResolvedLocation

func (r stubResolver) Resolve(_ context.Context, text string) (locdomain.ResolvedLocation, error) {
	if loc, ok := r[text]; ok {
		return loc, nil
	}
	return nil, fmt.Errorf("%w: '%s'", locdomain.ErrUnresolvedLocation, text)
}

type stubSettings struct {
	settings setdomain.NegotiationSettings
	err      error
}

func (s stubSettings) GetNegotiationSettings(context.Context) (setdomain.NegotiationSettings, error) {
	return s.settings, s.err
}

var (
	dallas = locdomain.City{Name: "Dallas, TX", Lat: 32.7767, Lng: -96.7970}
	// fixedNow is the clock used by every service test.
	fixedNow = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
)

var testResolver = stubResolver{
	"Dallas":        dallas,
	"Houston":       locdomain.City{Name: "Houston, TX", Lat: 29.7604, Lng: -95.3698},
	"Texas":         locdomain.State{Abbreviation: "TX"},
	"South Central": locdomain.Region{Name: locdomain.RegionSouthCentral},
	"Oklahoma":      locdomain.State{Abbreviation: "OK"},
}

// newLoad returns a dry van load picking up near Dallas and delivering to Houston.
func newLoad(id string) domain.Load {
	return domain.Load{
		ID:               id,
		Origin:           "Dallas, TX",
		OriginLat:        32.85,
		OriginLng:        -96.85,
		Destination:      "Houston, TX",
		DestLat:          29.7604,
		DestLng:          -95.3698,
		PickupDateTime:   time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		DeliveryDateTime: time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
		EquipmentType:    domain.EquipmentDryVan,
		LoadboardRate:    2000,
		Weight:           40000,
		Miles:            500,
		CommodityType:    "Paper goods",
		Status:           domain.StatusAvailable,
	}
}

func withOrigin(l domain.Load, name string, lat, lng float64) domain.Load {
	l.Origin, l.OriginLat, l.OriginLng = name, lat, lng
	return l
}

func newTestService(repo *MockLoadRepository) *LoadServiceImpl {
	svc := NewLoadService(
		repo,
		testResolver,
		locdomain.DefaultGazetteer(),
		stubSettings{settings: setdomain.Defaults()},
		domain.DefaultMatchPolicy(),
		75,
	)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func ids(loads []domain.SearchResultLoad) []string {
	out := make([]string, len(loads))
	for i, l := range loads {
		out[i] = l.ID
	}
	return out
}

func altIDs(loads []domain.AlternativeLoad) []string {
	out := make([]string, len(loads))
	for i, l := range loads {
		out[i] = l.ID
	}
	return out
}
