package adapters

import (
	"context"
	"database/sql"
	"fmt"

	"carrier-sales/internal/features/calls/domain"
)

const (
	insertCallQuery = `INSERT INTO calls (
	id, call_id, mc_number, carrier_name, lane_origin, lane_destination, equipment_type, load_id,
	initial_rate, final_rate, negotiation_rounds, carrier_phone, special_requests,
	outcome, sentiment, duration_seconds, transcript, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	insertInteractionQuery = `INSERT INTO carrier_interactions (
	id, mc_number, carrier_name, call_id, call_length_seconds, outcome, load_id, notes, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	listInteractionsQuery = `SELECT id, mc_number, COALESCE(carrier_name, ''), COALESCE(call_id, ''),
call_length_seconds, COALESCE(outcome, ''), COALESCE(load_id, ''), COALESCE(notes, ''), created_at
FROM carrier_interactions WHERE mc_number = $1 ORDER BY created_at DESC`
)

// PostgresCallRepository implements ports.CallRepository on the calls table.
type PostgresCallRepository struct {
	db *sql.DB
}

// NewPostgresCallRepository creates a new PostgresCallRepository.
func NewPostgresCallRepository(db *sql.DB) *PostgresCallRepository {
	return &PostgresCallRepository{db: db}
}

// Insert stores a logged call. Empty optional text is stored as NULL.
func (r *PostgresCallRepository) Insert(ctx context.Context, c *domain.Call) error {
	_, err := r.db.ExecContext(ctx, insertCallQuery,
		c.ID,
		c.CallID,
		nullString(c.MCNumber),
		nullString(c.CarrierName),
		nullString(c.LaneOrigin),
		nullString(c.LaneDestination),
		nullString(c.EquipmentType),
		nullString(c.LoadID),
		nullFloat(c.InitialRate),
		nullFloat(c.FinalRate),
		c.NegotiationRounds,
		nullString(c.CarrierPhone),
		nullString(c.SpecialRequests),
		string(c.Outcome),
		string(c.Sentiment),
		nullInt(c.DurationSeconds),
		nullString(c.Transcript),
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert call %s: %w", c.ID, err)
	}
	return nil
}

// PostgresInteractionRepository implements ports.InteractionRepository on the carrier_interactions table.
type PostgresInteractionRepository struct {
	db *sql.DB
}

// NewPostgresInteractionRepository creates a new PostgresInteractionRepository.
func NewPostgresInteractionRepository(db *sql.DB) *PostgresInteractionRepository {
	return &PostgresInteractionRepository{db: db}
}

// Insert stores a carrier interaction.
func (r *PostgresInteractionRepository) Insert(ctx context.Context, i *domain.Interaction) error {
	_, err := r.db.ExecContext(ctx, insertInteractionQuery,
		i.ID,
		i.MCNumber,
		nullString(i.CarrierName),
		nullString(i.CallID),
		nullInt(i.CallLengthSeconds),
		nullString(i.Outcome),
		nullString(i.LoadID),
		i.Notes,
		i.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert interaction %s: %w", i.ID, err)
	}
	return nil
}

// ListByMC returns every interaction for a carrier, newest first.
func (r *PostgresInteractionRepository) ListByMC(ctx context.Context, mcNumber string) ([]domain.Interaction, error) {
	rows, err := r.db.QueryContext(ctx, listInteractionsQuery, mcNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	interactions := []domain.Interaction{}
	for rows.Next() {
		var (
			i      domain.Interaction
			length sql.NullInt64
		)
		if err := rows.Scan(&i.ID, &i.MCNumber, &i.CarrierName, &i.CallID,
			&length, &i.Outcome, &i.LoadID, &i.Notes, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		if length.Valid {
			n := int(length.Int64)
			i.CallLengthSeconds = &n
		}
		interactions = append(interactions, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interactions: %w", err)
	}
	return interactions, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
