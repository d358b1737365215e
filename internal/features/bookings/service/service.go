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
	"carrier-sales/internal/features/bookings/domain"
	"carrier-sales/internal/features/bookings/ports"
	loaddomain "carrier-sales/internal/features/loads/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrLoadNotFound is returned when no load has the requested id.
	ErrLoadNotFound = errors.New("load not found")
	// ErrAlreadyBooked is returned when the load is no longer available.
	ErrAlreadyBooked = errors.New("load already booked")
	// ErrBookingNotFound is returned when a load has never been booked.
	ErrBookingNotFound = errors.New("booking not found")
)

// BookingServiceImpl implements ports.BookingService.
type BookingServiceImpl struct {
	loads    ports.LoadReader
	bookings ports.BookingRepository
	settings ports.SettingsProvider
	now      func() time.Time
	newID    func() string
}

// NewBookingService creates a new BookingServiceImpl.
func NewBookingService(loads ports.LoadReader, bookings ports.BookingRepository, settings ports.SettingsProvider) *BookingServiceImpl {
	return &BookingServiceImpl{
		loads:    loads,
		bookings: bookings,
		settings: settings,
		now:      time.Now,
		newID:    newBookingID,
	}
}

// Book assigns an available load to a carrier. Without an agreed rate the
// carrier gets the floor implied by the target margin.
func (s *BookingServiceImpl) Book(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	load, err := s.loads.Get(ctx, req.LoadID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get load: %w", err)
	}
	if load == nil {
		return nil, ErrLoadNotFound
	}
	if load.Status == loaddomain.StatusBooked {
		return nil, ErrAlreadyBooked
	}

	rate := 0.0
	if req.AgreedRate != nil {
		rate = *req.AgreedRate
	} else {
		settings, err := s.settings.GetNegotiationSettings(ctx)
		if err != nil {
			return nil, fmt.Errorf("service: failed to get settings: %w", err)
		}
		rate = geo.Round(load.LoadboardRate*(1-settings.TargetMargin), 2)
	}

	pickup := load.PickupDateTime.UTC()
	if req.AgreedPickupDateTime != nil {
		pickup = req.AgreedPickupDateTime.UTC()
	}

	booking := &domain.Booking{
		ID:                   s.newID(),
		LoadID:               load.ID,
		MCNumber:             req.MCNumber,
		CarrierName:          req.CarrierName,
		AgreedRate:           rate,
		AgreedPickupDateTime: pickup,
		CallID:               req.CallID,
		CreatedAt:            s.now().UTC(),
	}

	if err := s.bookings.Book(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrLoadTaken) {
			return nil, ErrAlreadyBooked
		}
		return nil, fmt.Errorf("service: failed to save booking: %w", err)
	}

	metrics.BookingsCreated.Inc()
	logger.Get().Info("Load booked",
		zap.String("booking_id", booking.ID),
		zap.String("load_id", booking.LoadID),
		zap.String("mc_number", booking.MCNumber),
		zap.Float64("agreed_rate", booking.AgreedRate),
	)

	return booking, nil
}

// List returns one page of bookings in the period with KPIs over the whole period.
func (s *BookingServiceImpl) List(ctx context.Context, q domain.ListQuery) (*domain.BookingPage, error) {
	if err := q.Normalize(); err != nil {
		return nil, err
	}

	since := q.Period.Since(s.now())

	items, err := s.bookings.List(ctx, since, q.PageSize, (q.Page-1)*q.PageSize)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bookings: %w", err)
	}
	stats, err := s.bookings.Stats(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("service: failed to aggregate bookings: %w", err)
	}

	for i := range items {
		enrich(&items[i])
	}

	return &domain.BookingPage{
		Items:            items,
		Total:            stats.Total,
		Page:             q.Page,
		PageSize:         q.PageSize,
		Period:           q.Period,
		KPITotalBookings: stats.Total,
		KPITotalRevenue:  geo.Round(stats.Revenue, 2),
		KPIAvgMargin:     round1(stats.AvgMargin),
		KPIAvgRounds:     round1(stats.AvgRounds),
	}, nil
}

// GetByLoad returns the booking recorded for a load.
func (s *BookingServiceImpl) GetByLoad(ctx context.Context, loadID string) (*domain.BookingSummary, error) {
	b, err := s.bookings.GetByLoad(ctx, strings.TrimSpace(loadID))
	if err != nil {
		return nil, fmt.Errorf("service: failed to get booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	enrich(b)
	return b, nil
}

func enrich(b *domain.BookingSummary) {
	b.BookedAt = b.CreatedAt
	if b.LoadboardRate == nil || *b.LoadboardRate <= 0 {
		return
	}
	m := geo.Round((*b.LoadboardRate-b.AgreedRate) / *b.LoadboardRate * 100, 1)
	b.Margin = &m
}

func round1(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := geo.Round(*v, 1)
	return &r
}

func newBookingID() string {
	return "BK-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
