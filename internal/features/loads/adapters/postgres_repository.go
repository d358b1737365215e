package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"carrier-sales/internal/features/loads/domain"
)

const loadColumns = `load_id, origin, origin_lat, origin_lng, destination, dest_lat, dest_lng,
pickup_datetime, delivery_datetime, equipment_type, loadboard_rate, COALESCE(notes, ''),
weight, commodity_type, COALESCE(num_of_pieces, 0), miles, COALESCE(dimensions, ''), status`

var (
	listAvailableQuery = `SELECT ` + loadColumns + ` FROM loads WHERE status = 'available'`
	getLoadQuery       = `SELECT ` + loadColumns + ` FROM loads WHERE load_id = $1`
)

// PostgresLoadRepository implements ports.LoadRepository on the loads table.
type PostgresLoadRepository struct {
	db *sql.DB
}

// NewPostgresLoadRepository creates a new PostgresLoadRepository.
func NewPostgresLoadRepository(db *sql.DB) *PostgresLoadRepository {
	return &PostgresLoadRepository{db: db}
}

// ListAvailable returns every load that is still open for booking.
func (r *PostgresLoadRepository) ListAvailable(ctx context.Context) ([]domain.Load, error) {
	rows, err := r.db.QueryContext(ctx, listAvailableQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query loads: %w", err)
	}
	defer rows.Close()

	var loads []domain.Load
	for rows.Next() {
		load, err := scanLoad(rows)
		if err != nil {
			return nil, err
		}
		loads = append(loads, load)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate loads: %w", err)
	}

	return loads, nil
}

// Get returns the load with the given id, or nil when there is none.
func (r *PostgresLoadRepository) Get(ctx context.Context, id string) (*domain.Load, error) {
	load, err := scanLoad(r.db.QueryRowContext(ctx, getLoadQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &load, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLoad(s scanner) (domain.Load, error) {
	var (
		l         domain.Load
		equipment string
		status    string
	)
	err := s.Scan(
		&l.ID, &l.Origin, &l.OriginLat, &l.OriginLng,
		&l.Destination, &l.DestLat, &l.DestLng,
		&l.PickupDateTime, &l.DeliveryDateTime,
		&equipment, &l.LoadboardRate, &l.Notes,
		&l.Weight, &l.CommodityType, &l.NumOfPieces, &l.Miles, &l.Dimensions,
		&status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Load{}, err
	}
	if err != nil {
		return domain.Load{}, fmt.Errorf("failed to scan load: %w", err)
	}

	l.EquipmentType = domain.NormalizeEquipment(equipment)
	l.Status = domain.Status(status)
	return l, nil
}
