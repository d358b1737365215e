package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema creates the tables the repositories read and write. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS loads (
	load_id TEXT PRIMARY KEY,
	origin TEXT NOT NULL,
	origin_lat DOUBLE PRECISION NOT NULL,
	origin_lng DOUBLE PRECISION NOT NULL,
	destination TEXT NOT NULL,
	dest_lat DOUBLE PRECISION NOT NULL,
	dest_lng DOUBLE PRECISION NOT NULL,
	pickup_datetime TIMESTAMPTZ NOT NULL,
	delivery_datetime TIMESTAMPTZ NOT NULL,
	equipment_type TEXT NOT NULL,
	loadboard_rate DOUBLE PRECISION NOT NULL,
	notes TEXT DEFAULT '',
	weight INTEGER NOT NULL,
	commodity_type TEXT NOT NULL,
	num_of_pieces INTEGER DEFAULT 0,
	miles INTEGER NOT NULL,
	dimensions TEXT DEFAULT '',
	status TEXT NOT NULL DEFAULT 'available',
	booked_at TIMESTAMPTZ
)`,
	`CREATE INDEX IF NOT EXISTS loads_status_idx ON loads (status)`,
	`CREATE TABLE IF NOT EXISTS offers (
	offer_id TEXT PRIMARY KEY,
	call_id TEXT,
	load_id TEXT NOT NULL REFERENCES loads (load_id),
	mc_number TEXT NOT NULL,
	offer_amount DOUBLE PRECISION NOT NULL,
	offer_type TEXT NOT NULL,
	round_number INTEGER NOT NULL DEFAULT 1,
	status TEXT NOT NULL DEFAULT 'pending',
	notes TEXT DEFAULT '',
	original_rate DOUBLE PRECISION,
	rate_difference DOUBLE PRECISION,
	rate_difference_pct DOUBLE PRECISION,
	created_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS booked_loads (
	booking_id TEXT PRIMARY KEY,
	load_id TEXT NOT NULL REFERENCES loads (load_id),
	mc_number TEXT NOT NULL,
	carrier_name TEXT DEFAULT '',
	agreed_rate DOUBLE PRECISION NOT NULL,
	agreed_pickup_datetime TIMESTAMPTZ NOT NULL,
	call_id TEXT,
	created_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS booked_loads_created_idx ON booked_loads (created_at)`,
	`CREATE TABLE IF NOT EXISTS calls (
	id TEXT PRIMARY KEY,
	call_id TEXT NOT NULL,
	mc_number TEXT,
	carrier_name TEXT,
	lane_origin TEXT,
	lane_destination TEXT,
	equipment_type TEXT,
	load_id TEXT,
	initial_rate DOUBLE PRECISION,
	final_rate DOUBLE PRECISION,
	negotiation_rounds INTEGER NOT NULL DEFAULT 0,
	carrier_phone TEXT,
	special_requests TEXT,
	outcome TEXT NOT NULL,
	sentiment TEXT NOT NULL,
	duration_seconds INTEGER,
	transcript TEXT,
	created_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS calls_call_id_idx ON calls (call_id)`,
	`CREATE TABLE IF NOT EXISTS carrier_interactions (
	id TEXT PRIMARY KEY,
	mc_number TEXT NOT NULL,
	carrier_name TEXT,
	call_id TEXT,
	call_length_seconds INTEGER,
	outcome TEXT,
	load_id TEXT,
	notes TEXT DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS carrier_interactions_mc_idx ON carrier_interactions (mc_number, created_at)`,
	`CREATE TABLE IF NOT EXISTS negotiation_settings (
	key TEXT PRIMARY KEY,
	value DOUBLE PRECISION,
	text_value TEXT
)`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
