package ports

import (
	"context"
	"time"

	"carrier-sales/internal/features/bookings/domain"
	loaddomain "carrier-sales/internal/features/loads/domain"
	setdomain "carrier-sales/internal/features/settings/domain"
)

// BookingService defines the primary port for booking loads and reporting on bookings.
type BookingService interface {
	Book(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)
	List(ctx context.Context, q domain.ListQuery) (*domain.BookingPage, error)
	GetByLoad(ctx context.Context, loadID string) (*domain.BookingSummary, error)
}

// BookingRepository defines the secondary port for booking storage.
// Book marks the load booked and stores the booking atomically, returning
// domain.ErrLoadTaken when the load is already booked. GetByLoad returns nil, nil
// when the load has no booking. A nil since means no lower bound.
type BookingRepository interface {
	Book(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context, since *time.Time, limit, offset int) ([]domain.BookingSummary, error)
	Stats(ctx context.Context, since *time.Time) (domain.BookingStats, error)
	GetByLoad(ctx context.Context, loadID string) (*domain.BookingSummary, error)
}

// LoadReader reads a single load. Get returns nil, nil when the id is unknown.
type LoadReader interface {
	Get(ctx context.Context, id string) (*loaddomain.Load, error)
}

// SettingsProvider supplies the current margin settings.
type SettingsProvider interface {
	GetNegotiationSettings(ctx context.Context) (setdomain.NegotiationSettings, error)
}
