package adapters

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"carrier-sales/internal/features/calls/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loggedAt = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

func TestPostgresCallRepository_Insert(t *testing.T) {
	t.Run("OptionalFieldsAreNull", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		final := 1950.0
		duration := 184
		call := &domain.Call{
			ID: "CALL-1a2b3c4d", CallID: "hr-991", MCNumber: "123456", LoadID: "LD-1001",
			FinalRate: &final, NegotiationRounds: 2,
			Outcome: domain.OutcomeBooked, Sentiment: domain.SentimentPositive,
			DurationSeconds: &duration, CreatedAt: loggedAt,
		}
		mock.ExpectExec(regexp.QuoteMeta(insertCallQuery)).
			WithArgs("CALL-1a2b3c4d", "hr-991",
				sql.NullString{String: "123456", Valid: true}, sql.NullString{}, sql.NullString{}, sql.NullString{},
				sql.NullString{}, sql.NullString{String: "LD-1001", Valid: true},
				sql.NullFloat64{}, sql.NullFloat64{Float64: 1950, Valid: true}, 2,
				sql.NullString{}, sql.NullString{}, "booked", "positive",
				sql.NullInt64{Int64: 184, Valid: true}, sql.NullString{}, loggedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewPostgresCallRepository(db).Insert(context.Background(), call))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(insertCallQuery)).WillReturnError(errors.New("connection reset"))

		err = NewPostgresCallRepository(db).Insert(context.Background(), &domain.Call{ID: "CALL-x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CALL-x")
	})
}

func TestPostgresInteractionRepository(t *testing.T) {
	t.Run("Insert", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		i := &domain.Interaction{ID: "CI-1a2b3c4d", MCNumber: "123456", CallID: "hr-991", Notes: "", CreatedAt: loggedAt}
		mock.ExpectExec(regexp.QuoteMeta(insertInteractionQuery)).
			WithArgs("CI-1a2b3c4d", "123456", sql.NullString{}, sql.NullString{String: "hr-991", Valid: true},
				sql.NullInt64{}, sql.NullString{}, sql.NullString{}, "", loggedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewPostgresInteractionRepository(db).Insert(context.Background(), i))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListByMC", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		columns := []string{"id", "mc_number", "carrier_name", "call_id", "call_length_seconds", "outcome", "load_id", "notes", "created_at"}
		mock.ExpectQuery(regexp.QuoteMeta(listInteractionsQuery)).
			WithArgs("123456").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("CI-2", "123456", "Acme Freight", "hr-992", int64(240), "booked", "LD-1001", "", loggedAt.Add(time.Hour)).
				AddRow("CI-1", "123456", "", "", nil, "", "", "asked for reefer loads", loggedAt))

		got, err := NewPostgresInteractionRepository(db).ListByMC(context.Background(), "123456")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "CI-2", got[0].ID)
		require.NotNil(t, got[0].CallLengthSeconds)
		assert.Equal(t, 240, *got[0].CallLengthSeconds)
		assert.Nil(t, got[1].CallLengthSeconds)
		assert.Equal(t, "asked for reefer loads", got[1].Notes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListEmpty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(listInteractionsQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		got, err := NewPostgresInteractionRepository(db).ListByMC(context.Background(), "000000")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
