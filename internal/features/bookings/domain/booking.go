package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	carrierdomain "carrier-sales/internal/features/carriers/domain"
)

var (
	// ErrInvalidBooking is returned when a booking request fails validation.
	ErrInvalidBooking = errors.New("invalid booking")
	// ErrInvalidQuery is returned for an unusable page, page size or period.
	ErrInvalidQuery = errors.New("invalid booking query")
	// ErrLoadTaken is returned by storage when the load was booked concurrently.
	ErrLoadTaken = errors.New("load is no longer available")
)

// BookingRequest is a carrier agreeing to haul a load.
// Omitted rate and pickup fall back to the load's floor rate and posted pickup.
type BookingRequest struct {
	LoadID               string
	MCNumber             string
	CarrierName          string
	AgreedRate           *float64
	AgreedPickupDateTime *time.Time
	CallID               *string
}

// Normalize trims the request and checks required fields.
func (r *BookingRequest) Normalize() error {
	r.LoadID = strings.TrimSpace(r.LoadID)
	r.MCNumber = carrierdomain.NormalizeMC(r.MCNumber)
	r.CarrierName = strings.TrimSpace(r.CarrierName)
	if r.CallID != nil {
		id := strings.TrimSpace(*r.CallID)
		if id == "" {
			r.CallID = nil
		} else {
			r.CallID = &id
		}
	}

	switch {
	case r.LoadID == "":
		return fmt.Errorf("%w: load_id is required", ErrInvalidBooking)
	case r.MCNumber == "":
		return fmt.Errorf("%w: mc_number is required", ErrInvalidBooking)
	case r.AgreedRate != nil && *r.AgreedRate <= 0:
		return fmt.Errorf("%w: agreed_rate must be positive", ErrInvalidBooking)
	}
	return nil
}

// Booking is a confirmed load assignment.
type Booking struct {
	ID                   string    `json:"id"`
	LoadID               string    `json:"load_id"`
	MCNumber             string    `json:"mc_number"`
	CarrierName          string    `json:"carrier_name"`
	AgreedRate           float64   `json:"agreed_rate"`
	AgreedPickupDateTime time.Time `json:"agreed_pickup_datetime"`
	CallID               *string   `json:"call_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// BookingSummary is a booking joined with its lane and the call that produced it.
type BookingSummary struct {
	Booking
	LaneOrigin        string   `json:"lane_origin"`
	LaneDestination   string   `json:"lane_destination"`
	EquipmentType     string   `json:"equipment_type"`
	LoadboardRate     *float64 `json:"loadboard_rate"`
	NegotiationRounds *int     `json:"negotiation_rounds"`
	Sentiment         *string  `json:"sentiment"`
	// Margin is the percentage kept below the posted rate, one decimal.
	Margin   *float64  `json:"margin"`
	BookedAt time.Time `json:"booked_at"`
}

// BookingStats are the aggregates over every booking in a period.
type BookingStats struct {
	Total     int
	Revenue   float64
	AvgMargin *float64
	AvgRounds *float64
}

// BookingPage is one page of bookings with period-wide KPIs.
type BookingPage struct {
	Items            []BookingSummary `json:"items"`
	Total            int              `json:"total"`
	Page             int              `json:"page"`
	PageSize         int              `json:"page_size"`
	Period           Period           `json:"period"`
	KPITotalBookings int              `json:"kpi_total_bookings"`
	KPITotalRevenue  float64          `json:"kpi_total_revenue"`
	KPIAvgMargin     *float64         `json:"kpi_avg_margin"`
	KPIAvgRounds     *float64         `json:"kpi_avg_rounds"`
}

// Period selects how far back a booking listing reaches.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodLastWeek  Period = "last_week"
	PeriodLastMonth Period = "last_month"
	PeriodAllTime   Period = "all_time"
)

// ParsePeriod validates a period, defaulting to the last month.
func ParsePeriod(raw string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case "":
		return PeriodLastMonth, nil
	case PeriodToday, PeriodLastWeek, PeriodLastMonth, PeriodAllTime:
		return p, nil
	}
	return "", fmt.Errorf("%w: period must be today, last_week, last_month or all_time", ErrInvalidQuery)
}

// Since returns the start of the period in UTC, or nil for all time.
// Week and month windows include today, so they start 6 and 29 days back.
func (p Period) Since(now time.Time) *time.Time {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var since time.Time
	switch p {
	case PeriodToday:
		since = today
	case PeriodLastWeek:
		since = today.AddDate(0, 0, -6)
	case PeriodLastMonth:
		since = today.AddDate(0, 0, -29)
	default:
		return nil
	}
	return &since
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListQuery pages through bookings.
type ListQuery struct {
	Page     int
	PageSize int
	Period   Period
}

// Normalize validates the query. An empty period means the last month.
func (q *ListQuery) Normalize() error {
	if q.Period == "" {
		q.Period = PeriodLastMonth
	}

	switch {
	case q.Page < 1:
		return fmt.Errorf("%w: page must be at least 1", ErrInvalidQuery)
	case q.PageSize < 1 || q.PageSize > MaxPageSize:
		return fmt.Errorf("%w: page_size must be between 1 and %d", ErrInvalidQuery, MaxPageSize)
	}
	return nil
}
