package adapters

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"carrier-sales/internal/features/settings/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSettingsRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"key", "value", "text_value"}).
		AddRow("target_margin", 0.18, nil).
		AddRow("agent_name", nil, "John")
	mock.ExpectQuery(regexp.QuoteMeta(selectSettingsQuery)).WillReturnRows(rows)

	repo := NewPostgresSettingsRepository(db)
	values, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	require.Len(t, values, 2)
	require.NotNil(t, values["target_margin"].Number)
	assert.Equal(t, 0.18, *values["target_margin"].Number)
	assert.Nil(t, values["target_margin"].Text)
	require.NotNil(t, values["agent_name"].Text)
	assert.Equal(t, "John", *values["agent_name"].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSettingsRepository_GetAll_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectSettingsQuery)).WillReturnError(errors.New("connection reset"))

	repo := NewPostgresSettingsRepository(db)
	values, err := repo.GetAll(context.Background())
	assert.Error(t, err)
	assert.Nil(t, values)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPostgresSettingsRepository_UpsertAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertSettingQuery)).
		WithArgs("max_negotiation_rounds", 4.0, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(upsertSettingQuery)).
		WithArgs("target_margin", 0.12, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewPostgresSettingsRepository(db)
	err = repo.UpsertAll(context.Background(), map[string]domain.Value{
		domain.KeyTargetMargin:         domain.NumberValue(0.12),
		domain.KeyMaxNegotiationRounds: domain.NumberValue(4),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSettingsRepository_UpsertAll_RollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertSettingQuery)).
		WithArgs("min_margin", 0.04, nil).
		WillReturnError(errors.New("constraint violated"))
	mock.ExpectRollback()

	repo := NewPostgresSettingsRepository(db)
	err = repo.UpsertAll(context.Background(), map[string]domain.Value{
		domain.KeyMinMargin: domain.NumberValue(0.04),
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
