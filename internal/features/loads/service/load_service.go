package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/core/metrics"
	"carrier-sales/internal/features/loads/domain"
	"carrier-sales/internal/features/loads/ports"
	locdomain "carrier-sales/internal/features/locations/domain"
	setdomain "carrier-sales/internal/features/settings/domain"

	"go.uber.org/zap"
)

var (
	// ErrLoadNotFound is returned when no load has the requested id.
	ErrLoadNotFound = errors.New("load not found")
	// ErrInvalidSearch is returned when a search lacks its required inputs.
	ErrInvalidSearch = errors.New("invalid search request")
	// ErrInvalidReschedule is returned when a reschedule request is malformed.
	ErrInvalidReschedule = errors.New("invalid reschedule request")
)

// LoadServiceImpl implements ports.LoadService.
type LoadServiceImpl struct {
	repo          ports.LoadRepository
	resolver      ports.LocationResolver
	places        ports.PlaceDirectory
	settings      ports.SettingsProvider
	policy        domain.MatchPolicy
	defaultRadius int
	now           func() time.Time
}

// NewLoadService creates a new LoadServiceImpl.
func NewLoadService(
	repo ports.LoadRepository,
	resolver ports.LocationResolver,
	places ports.PlaceDirectory,
	settings ports.SettingsProvider,
	policy domain.MatchPolicy,
	defaultRadius int,
) *LoadServiceImpl {
	return &LoadServiceImpl{
		repo:          repo,
		resolver:      resolver,
		places:        places,
		settings:      settings,
		policy:        policy,
		defaultRadius: defaultRadius,
		now:           time.Now,
	}
}

// Search ranks available loads against the carrier's capabilities and, when
// strict matches are scarce, adds near misses with explanations.
func (s *LoadServiceImpl) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error) {
	if strings.TrimSpace(q.Origin) == "" || strings.TrimSpace(q.Equipment) == "" {
		return nil, fmt.Errorf("%w: origin and equipment_type are required", ErrInvalidSearch)
	}
	if q.RadiusMiles > domain.MaxRadiusMiles {
		return nil, fmt.Errorf("%w: radius_miles must not exceed %d", ErrInvalidSearch, domain.MaxRadiusMiles)
	}
	if q.PickupWindowHours > domain.MaxWindowHours {
		return nil, fmt.Errorf("%w: pickup_window_hours must not exceed %d", ErrInvalidSearch, domain.MaxWindowHours)
	}

	radius := q.RadiusMiles
	if radius <= 0 {
		radius = s.defaultRadius
	}

	originLoc, err := s.resolver.Resolve(ctx, q.Origin)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}

	var destLoc locdomain.ResolvedLocation
	if strings.TrimSpace(q.Destination) != "" {
		destLoc, err = s.resolver.Resolve(ctx, q.Destination)
		if err != nil {
			return nil, fmt.Errorf("destination: %w", err)
		}
	}

	settings, loads, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	c := criteria{
		equipment:         domain.NormalizeEquipment(q.Equipment),
		origin:            originLoc,
		destination:       destLoc,
		radius:            radius,
		pickupDate:        q.PickupDateTime,
		pickupText:        q.PickupDateTimeText,
		pickupWindowHours: q.PickupWindowHours,
		maxDistanceMiles:  q.MaxDistanceMiles,
		maxWeight:         q.MaxWeight,
		now:               s.now().UTC(),
	}
	altOriginCap := s.policy.AltOriginCap(radius)
	altDestCap := s.policy.AltDestCap(radius)

	matches := []domain.SearchResultLoad{}
	var candidates []candidate

	for _, load := range loads {
		if load.Status == domain.StatusBooked {
			continue
		}

		ev := s.evaluate(load, c)
		if ev.strict() {
			matches = append(matches, price(load, ev.originDist, ev.destDist, settings))
			continue
		}

		if !s.withinCap(originLoc, load.Origin, load.OriginLat, load.OriginLng, altOriginCap) {
			continue
		}
		if !s.withinCap(destLoc, load.Destination, load.DestLat, load.DestLng, altDestCap) {
			continue
		}

		diffs := ev.differences(load, c)
		if len(diffs) == 0 {
			continue
		}

		candidates = append(candidates, candidate{
			alt: domain.AlternativeLoad{
				SearchResultLoad: price(load, ev.originDist, ev.destDist, settings),
				Differences:      diffs,
			},
			equipmentMismatch: !ev.equipmentOK,
		})
	}

	slices.SortStableFunc(matches, compareResults)

	alternatives := []domain.AlternativeLoad{}
	if len(matches) < s.policy.ExactThreshold {
		slices.SortStableFunc(candidates, func(a, b candidate) int {
			return cmp.Or(
				compareBool(a.equipmentMismatch, b.equipmentMismatch),
				compareResults(a.alt.SearchResultLoad, b.alt.SearchResultLoad),
			)
		})

		slots := max(s.policy.TotalCap-len(matches), 0)
		for _, cand := range candidates[:min(slots, len(candidates))] {
			alternatives = append(alternatives, cand.alt)
		}
	}

	metrics.LoadSearches.WithLabelValues("search").Inc()
	metrics.LoadSearchResults.WithLabelValues("strict").Observe(float64(len(matches)))
	metrics.LoadSearchResults.WithLabelValues("alternative").Observe(float64(len(alternatives)))

	logger.Get().Debug("Load search completed",
		zap.String("origin", originLoc.Label()),
		zap.String("equipment", string(c.equipment)),
		zap.Int("radius_miles", radius),
		zap.Int("matches", len(matches)),
		zap.Int("alternatives", len(alternatives)),
	)

	return &domain.SearchResult{
		Loads:               matches,
		AlternativeLoads:    alternatives,
		OriginResolved:      originLoc,
		DestinationResolved: destLoc,
		RadiusMiles:         radius,
		TotalFound:          len(matches),
		TotalAlternatives:   len(alternatives),
	}, nil
}

// SearchLane returns every available load running between two places within the
// default radius, ranked like a strict search. No other filter applies.
func (s *LoadServiceImpl) SearchLane(ctx context.Context, origin, destination string) (*domain.SearchResult, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", ErrInvalidSearch)
	}

	originLoc, err := s.resolver.Resolve(ctx, origin)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	destLoc, err := s.resolver.Resolve(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	settings, loads, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	radius := s.defaultRadius
	matches := []domain.SearchResultLoad{}
	for _, load := range loads {
		if load.Status == domain.StatusBooked {
			continue
		}

		originOK, originDist := s.originCheck(load, originLoc, radius)
		destOK, destDist := s.destinationCheck(load, destLoc, radius)
		if !originOK || !destOK {
			continue
		}
		matches = append(matches, price(load, originDist, destDist, settings))
	}

	slices.SortStableFunc(matches, compareResults)

	metrics.LoadSearches.WithLabelValues("lane").Inc()
	metrics.LoadSearchResults.WithLabelValues("strict").Observe(float64(len(matches)))

	return &domain.SearchResult{
		Loads:               matches,
		AlternativeLoads:    []domain.AlternativeLoad{},
		OriginResolved:      originLoc,
		DestinationResolved: destLoc,
		RadiusMiles:         radius,
		TotalFound:          len(matches),
	}, nil
}

// GetLoad returns a load by id or ErrLoadNotFound.
func (s *LoadServiceImpl) GetLoad(ctx context.Context, id string) (*domain.Load, error) {
	load, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get load: %w", err)
	}
	if load == nil {
		return nil, ErrLoadNotFound
	}
	return load, nil
}

// snapshot reads the settings and the available loads for one request.
func (s *LoadServiceImpl) snapshot(ctx context.Context) (setdomain.NegotiationSettings, []domain.Load, error) {
	settings, err := s.settings.GetNegotiationSettings(ctx)
	if err != nil {
		return setdomain.NegotiationSettings{}, nil, fmt.Errorf("service: failed to get settings: %w", err)
	}

	loads, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return setdomain.NegotiationSettings{}, nil, fmt.Errorf("service: failed to list loads: %w", err)
	}
	return settings, loads, nil
}

type candidate struct {
	alt               domain.AlternativeLoad
	equipmentMismatch bool
}

// compareResults orders by least empty miles, then highest pay, then shortest haul.
func compareResults(a, b domain.SearchResultLoad) int {
	return cmp.Or(
		cmp.Compare(a.DeadheadMiles, b.DeadheadMiles),
		cmp.Compare(a.DeadendMiles, b.DeadendMiles),
		cmp.Compare(b.LoadboardRate, a.LoadboardRate),
		cmp.Compare(a.Miles, b.Miles),
	)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
