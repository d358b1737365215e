package adapters

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"carrier-sales/internal/features/settings/domain"
)

const (
	selectSettingsQuery = `SELECT key, value, text_value FROM negotiation_settings`
	upsertSettingQuery  = `INSERT INTO negotiation_settings (key, value, text_value) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, text_value = EXCLUDED.text_value`
)

// PostgresSettingsRepository implements ports.SettingsRepository on the negotiation_settings table.
type PostgresSettingsRepository struct {
	db *sql.DB
}

// NewPostgresSettingsRepository creates a new PostgresSettingsRepository.
func NewPostgresSettingsRepository(db *sql.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

// GetAll reads every stored setting.
func (r *PostgresSettingsRepository) GetAll(ctx context.Context) (map[string]domain.Value, error) {
	rows, err := r.db.QueryContext(ctx, selectSettingsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]domain.Value)
	for rows.Next() {
		var (
			key    string
			number sql.NullFloat64
			text   sql.NullString
		)
		if err := rows.Scan(&key, &number, &text); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}

		var v domain.Value
		if number.Valid {
			v.Number = &number.Float64
		}
		if text.Valid {
			v.Text = &text.String
		}
		values[key] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settings: %w", err)
	}

	return values, nil
}

// UpsertAll writes the given settings in a single transaction.
func (r *PostgresSettingsRepository) UpsertAll(ctx context.Context, values map[string]domain.Value) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		v := values[key]
		var (
			number sql.NullFloat64
			text   sql.NullString
		)
		if v.Number != nil {
			number = sql.NullFloat64{Float64: *v.Number, Valid: true}
		}
		if v.Text != nil {
			text = sql.NullString{String: *v.Text, Valid: true}
		}

		if _, err := tx.ExecContext(ctx, upsertSettingQuery, key, number, text); err != nil {
			return fmt.Errorf("failed to upsert setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}
