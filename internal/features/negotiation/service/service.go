package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carrier-sales/internal/core/geo"
	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/core/metrics"
	loaddomain "carrier-sales/internal/features/loads/domain"
	"carrier-sales/internal/features/negotiation/domain"
	"carrier-sales/internal/features/negotiation/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrLoadNotFound is returned when no load has the requested id.
	ErrLoadNotFound = errors.New("load not found")
	// ErrAlreadyBooked is returned when the load is no longer available.
	ErrAlreadyBooked = errors.New("load already booked")
	// ErrInvalidAskingSet is returned when an analysis names no asking field.
	ErrInvalidAskingSet = errors.New("at least one of rate, pickup_datetime, pickup_window_hours or radius_miles is required")
)

// NegotiationServiceImpl implements ports.NegotiationService.
type NegotiationServiceImpl struct {
	loads      ports.LoadReader
	offers     ports.OfferRepository
	settings   ports.SettingsProvider
	policy     domain.Policy
	floorPct   float64
	now        func() time.Time
	newOfferID func() string
}

// NewNegotiationService creates a new NegotiationServiceImpl.
// floorPct scales a posted rate into the floor reported with logged offers.
func NewNegotiationService(
	loads ports.LoadReader,
	offers ports.OfferRepository,
	settings ports.SettingsProvider,
	policy domain.Policy,
	floorPct float64,
) *NegotiationServiceImpl {
	return &NegotiationServiceImpl{
		loads:      loads,
		offers:     offers,
		settings:   settings,
		policy:     policy,
		floorPct:   floorPct,
		now:        time.Now,
		newOfferID: newOfferID,
	}
}

// Analyze judges a carrier's ask against a load.
func (s *NegotiationServiceImpl) Analyze(ctx context.Context, loadID string, asking domain.Asking) (*domain.Analysis, error) {
	if asking.Empty() {
		return nil, ErrInvalidAskingSet
	}

	load, err := s.getLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}
	if load.Status == loaddomain.StatusBooked {
		return nil, ErrAlreadyBooked
	}

	settings, err := s.settings.GetNegotiationSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get settings: %w", err)
	}

	ev := evaluate(*load, asking, s.policy, s.now())
	verdict, reason, counters := aggregate(ev.fields)

	analysis := &domain.Analysis{
		LoadID:        load.ID,
		Verdict:       verdict,
		Reason:        reason,
		CounterOffers: counters,
		PostedRate:    load.LoadboardRate,
		RateFloor:     geo.Round(load.LoadboardRate*(1-settings.TargetMargin), 2),
		RateCeiling:   geo.Round(load.LoadboardRate*s.policy.RateCeilingPct, 2),
		Fields:        ev.fields,
	}
	if verdict == domain.VerdictCounter {
		analysis.CounterRate = ev.counterRate
	}

	metrics.NegotiationVerdicts.WithLabelValues(string(verdict)).Inc()
	logger.Get().Info("Offer analyzed",
		zap.String("load_id", load.ID),
		zap.String("verdict", string(verdict)),
		zap.Int("fields", len(ev.fields)),
	)

	return analysis, nil
}

// LogOffer records an offer made during a call with the load's rate band.
func (s *NegotiationServiceImpl) LogOffer(ctx context.Context, req domain.OfferRequest) (*domain.Offer, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	load, err := s.getLoad(ctx, req.LoadID)
	if err != nil {
		return nil, err
	}

	posted := load.LoadboardRate
	diff := geo.Round(req.OfferAmount-posted, 2)
	diffPct := 0.0
	if posted > 0 {
		diffPct = geo.Round(diff/posted*100, 2)
	}

	offer := &domain.Offer{
		ID:                s.newOfferID(),
		CallID:            req.CallID,
		LoadID:            req.LoadID,
		MCNumber:          req.MCNumber,
		OfferAmount:       req.OfferAmount,
		OfferType:         req.OfferType,
		RoundNumber:       req.RoundNumber,
		Status:            req.Status,
		Notes:             req.Notes,
		OriginalRate:      posted,
		RateDifference:    diff,
		RateDifferencePct: diffPct,
		CreatedAt:         s.now().UTC(),
		RateFloor:         geo.Round(posted*s.floorPct, 2),
		RateCeiling:       geo.Round(posted*s.policy.RateCeilingPct, 2),
	}

	if err := s.offers.Insert(ctx, offer); err != nil {
		return nil, fmt.Errorf("service: failed to save offer: %w", err)
	}

	return offer, nil
}

func (s *NegotiationServiceImpl) getLoad(ctx context.Context, id string) (*loaddomain.Load, error) {
	load, err := s.loads.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get load: %w", err)
	}
	if load == nil {
		return nil, ErrLoadNotFound
	}
	return load, nil
}

func newOfferID() string {
	return "OFF-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
