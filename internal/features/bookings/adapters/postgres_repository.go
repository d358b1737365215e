package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carrier-sales/internal/features/bookings/domain"
)

const (
	markBookedQuery = `UPDATE loads SET status = 'booked', booked_at = $2 WHERE load_id = $1 AND status <> 'booked'`

	insertBookingQuery = `INSERT INTO booked_loads (
	booking_id, load_id, mc_number, carrier_name, agreed_rate, agreed_pickup_datetime, call_id, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	// The latest call with the booking's call_id supplies rounds and sentiment.
	summaryFrom = ` FROM booked_loads bl
LEFT JOIN loads l ON l.load_id = bl.load_id
LEFT JOIN LATERAL (
	SELECT negotiation_rounds, sentiment FROM calls
	WHERE calls.call_id = bl.call_id
	ORDER BY created_at DESC LIMIT 1
) c ON true`

	sinceFilter = ` WHERE ($1::timestamptz IS NULL OR bl.created_at >= $1::timestamptz)`
)

var (
	summaryColumns = `SELECT bl.booking_id, bl.load_id, bl.mc_number, COALESCE(bl.carrier_name, ''), bl.agreed_rate,
bl.agreed_pickup_datetime, bl.call_id, bl.created_at,
COALESCE(l.origin, ''), COALESCE(l.destination, ''), COALESCE(l.equipment_type, ''), l.loadboard_rate,
c.negotiation_rounds, c.sentiment`

	listBookingsQuery = summaryColumns + summaryFrom + sinceFilter +
		` ORDER BY bl.created_at DESC LIMIT $2 OFFSET $3`

	bookingByLoadQuery = summaryColumns + summaryFrom +
		` WHERE bl.load_id = $1 ORDER BY bl.created_at DESC LIMIT 1`

	bookingStatsQuery = `SELECT COUNT(*), COALESCE(SUM(bl.agreed_rate), 0),
AVG((l.loadboard_rate - bl.agreed_rate) / NULLIF(l.loadboard_rate, 0) * 100),
AVG(c.negotiation_rounds)` + summaryFrom + sinceFilter
)

// PostgresBookingRepository implements ports.BookingRepository on the booked_loads table.
type PostgresBookingRepository struct {
	db *sql.DB
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository.
func NewPostgresBookingRepository(db *sql.DB) *PostgresBookingRepository {
	return &PostgresBookingRepository{db: db}
}

// Book flips the load to booked and inserts the booking in one transaction.
func (r *PostgresBookingRepository) Book(ctx context.Context, b *domain.Booking) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, markBookedQuery, b.LoadID, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to mark load %s booked: %w", b.LoadID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark load %s booked: %w", b.LoadID, err)
	}
	if n == 0 {
		return domain.ErrLoadTaken
	}

	var callID sql.NullString
	if b.CallID != nil {
		callID = sql.NullString{String: *b.CallID, Valid: true}
	}
	_, err = tx.ExecContext(ctx, insertBookingQuery,
		b.ID,
		b.LoadID,
		b.MCNumber,
		b.CarrierName,
		b.AgreedRate,
		b.AgreedPickupDateTime,
		callID,
		b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking %s: %w", b.ID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking %s: %w", b.ID, err)
	}
	return nil
}

// List returns bookings created at or after since, newest first.
func (r *PostgresBookingRepository) List(ctx context.Context, since *time.Time, limit, offset int) ([]domain.BookingSummary, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsQuery, nullTime(since), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	items := []domain.BookingSummary{}
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return items, nil
}

// Stats aggregates every booking created at or after since.
func (r *PostgresBookingRepository) Stats(ctx context.Context, since *time.Time) (domain.BookingStats, error) {
	var (
		stats     domain.BookingStats
		avgMargin sql.NullFloat64
		avgRounds sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, bookingStatsQuery, nullTime(since)).
		Scan(&stats.Total, &stats.Revenue, &avgMargin, &avgRounds)
	if err != nil {
		return domain.BookingStats{}, fmt.Errorf("failed to aggregate bookings: %w", err)
	}
	if avgMargin.Valid {
		stats.AvgMargin = &avgMargin.Float64
	}
	if avgRounds.Valid {
		stats.AvgRounds = &avgRounds.Float64
	}
	return stats, nil
}

// GetByLoad returns the latest booking for a load, or nil when there is none.
func (r *PostgresBookingRepository) GetByLoad(ctx context.Context, loadID string) (*domain.BookingSummary, error) {
	s, err := scanSummary(r.db.QueryRowContext(ctx, bookingByLoadQuery, loadID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(s scanner) (domain.BookingSummary, error) {
	var (
		b         domain.BookingSummary
		callID    sql.NullString
		posted    sql.NullFloat64
		rounds    sql.NullInt64
		sentiment sql.NullString
	)
	err := s.Scan(
		&b.ID, &b.LoadID, &b.MCNumber, &b.CarrierName, &b.AgreedRate,
		&b.AgreedPickupDateTime, &callID, &b.CreatedAt,
		&b.LaneOrigin, &b.LaneDestination, &b.EquipmentType, &posted,
		&rounds, &sentiment,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BookingSummary{}, err
	}
	if err != nil {
		return domain.BookingSummary{}, fmt.Errorf("failed to scan booking: %w", err)
	}

	if callID.Valid {
		b.CallID = &callID.String
	}
	if posted.Valid {
		b.LoadboardRate = &posted.Float64
	}
	if rounds.Valid {
		n := int(rounds.Int64)
		b.NegotiationRounds = &n
	}
	if sentiment.Valid {
		b.Sentiment = &sentiment.String
	}
	return b, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
