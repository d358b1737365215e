package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"carrier-sales/internal/core/geo"
	"carrier-sales/internal/features/loads/domain"
)

const rescheduleLayout = "2006-01-02T15:04:05"

// Reschedule approves a pickup move when it stays within the tolerance.
func (s *LoadServiceImpl) Reschedule(ctx context.Context, req domain.RescheduleRequest) (*domain.RescheduleResult, error) {
	if strings.TrimSpace(req.LoadID) == "" {
		return nil, fmt.Errorf("%w: load_id is required", ErrInvalidReschedule)
	}
	if (req.NewPickupDateTime == nil) == (req.NewPickupWindowHours == nil) {
		return nil, fmt.Errorf("%w: exactly one of new_pickup_datetime and new_pickup_window is required", ErrInvalidReschedule)
	}
	if req.NewPickupWindowHours != nil {
		switch w := *req.NewPickupWindowHours; {
		case w < 0:
			return nil, fmt.Errorf("%w: new_pickup_window must not be negative", ErrInvalidReschedule)
		case w > domain.MaxWindowHours:
			return nil, fmt.Errorf("%w: new_pickup_window must not exceed %d hours", ErrInvalidReschedule, domain.MaxWindowHours)
		}
	}

	load, err := s.GetLoad(ctx, req.LoadID)
	if err != nil {
		return nil, err
	}

	current := load.PickupDateTime.UTC()
	var requested time.Time
	if req.NewPickupDateTime != nil {
		requested = req.NewPickupDateTime.UTC()
	} else {
		requested = s.now().UTC().Add(time.Duration(*req.NewPickupWindowHours * float64(time.Hour)))
	}

	diff := requested.Sub(current)
	diffHours := geo.Round(math.Abs(diff.Hours()), 1)
	direction := "earlier"
	if diff > 0 {
		direction = "later"
	}

	tolerance := s.policy.RescheduleToleranceHours
	approved := diffHours <= tolerance

	var reason string
	if approved {
		reason = fmt.Sprintf("Approved - %.1fh %s is within the %.1fh tolerance", diffHours, direction, tolerance)
	} else {
		reason = fmt.Sprintf("Denied - %.1fh %s exceeds the %.1fh tolerance", diffHours, direction, tolerance)
	}

	return &domain.RescheduleResult{
		LoadID:                  load.ID,
		Approved:                approved,
		CurrentPickupDateTime:   current.Format(rescheduleLayout),
		RequestedPickupDateTime: requested.Format(rescheduleLayout),
		DifferenceHours:         diffHours,
		Reason:                  reason,
	}, nil
}
