package adapters

import (
	"context"
	"database/sql"
	"fmt"

	"carrier-sales/internal/features/negotiation/domain"
)

const insertOfferQuery = `INSERT INTO offers (
	offer_id, call_id, load_id, mc_number, offer_amount, offer_type, round_number,
	status, notes, original_rate, rate_difference, rate_difference_pct, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

// PostgresOfferRepository implements ports.OfferRepository on the offers table.
type PostgresOfferRepository struct {
	db *sql.DB
}

// NewPostgresOfferRepository creates a new PostgresOfferRepository.
func NewPostgresOfferRepository(db *sql.DB) *PostgresOfferRepository {
	return &PostgresOfferRepository{db: db}
}

// Insert stores a logged offer.
func (r *PostgresOfferRepository) Insert(ctx context.Context, offer *domain.Offer) error {
	var callID sql.NullString
	if offer.CallID != nil {
		callID = sql.NullString{String: *offer.CallID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, insertOfferQuery,
		offer.ID,
		callID,
		offer.LoadID,
		offer.MCNumber,
		offer.OfferAmount,
		string(offer.OfferType),
		offer.RoundNumber,
		string(offer.Status),
		offer.Notes,
		offer.OriginalRate,
		offer.RateDifference,
		offer.RateDifferencePct,
		offer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert offer %s: %w", offer.ID, err)
	}
	return nil
}
