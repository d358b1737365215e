package adapters

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"carrier-sales/internal/features/bookings/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookedAt = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:                   "BK-1a2b3c4d",
		LoadID:               "LD-1001",
		MCNumber:             "123456",
		CarrierName:          "Acme Freight",
		AgreedRate:           2050,
		AgreedPickupDateTime: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		CreatedAt:            bookedAt,
	}
}

var summaryColumnNames = []string{
	"booking_id", "load_id", "mc_number", "carrier_name", "agreed_rate",
	"agreed_pickup_datetime", "call_id", "created_at",
	"origin", "destination", "equipment_type", "loadboard_rate",
	"negotiation_rounds", "sentiment",
}

func TestPostgresBookingRepository_Book(t *testing.T) {
	t.Run("Commits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		b := testBooking()
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(markBookedQuery)).
			WithArgs("LD-1001", bookedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertBookingQuery)).
			WithArgs("BK-1a2b3c4d", "LD-1001", "123456", "Acme Freight", 2050.0, b.AgreedPickupDateTime,
				sql.NullString{}, bookedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewPostgresBookingRepository(db).Book(context.Background(), b))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyBooked", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(markBookedQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err = NewPostgresBookingRepository(db).Book(context.Background(), testBooking())
		assert.ErrorIs(t, err, domain.ErrLoadTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertFailsRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		callID := "CALL-42"
		b := testBooking()
		b.CallID = &callID
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(markBookedQuery)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertBookingQuery)).
			WithArgs(b.ID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sql.NullString{String: "CALL-42", Valid: true}, sqlmock.AnyArg()).
			WillReturnError(errors.New("duplicate key"))
		mock.ExpectRollback()

		err = NewPostgresBookingRepository(db).Book(context.Background(), b)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BK-1a2b3c4d")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BeginFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		err = NewPostgresBookingRepository(db).Book(context.Background(), testBooking())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "begin transaction")
	})
}

func TestPostgresBookingRepository_List(t *testing.T) {
	t.Run("Rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		since := time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC)
		pickup := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(summaryColumnNames).
			AddRow("BK-2", "LD-1002", "654321", "", 1800.0, pickup, "CALL-7", bookedAt,
				"Atlanta, GA", "Miami, FL", "reefer", 2000.0, int64(2), "positive").
			AddRow("BK-1", "LD-1001", "123456", "Acme Freight", 2050.0, pickup, nil, bookedAt,
				"", "", "", nil, nil, nil)
		mock.ExpectQuery(regexp.QuoteMeta(listBookingsQuery)).
			WithArgs(sql.NullTime{Time: since, Valid: true}, 20, 40).
			WillReturnRows(rows)

		items, err := NewPostgresBookingRepository(db).List(context.Background(), &since, 20, 40)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "BK-2", items[0].ID)
		assert.Equal(t, "Atlanta, GA", items[0].LaneOrigin)
		require.NotNil(t, items[0].CallID)
		assert.Equal(t, "CALL-7", *items[0].CallID)
		require.NotNil(t, items[0].NegotiationRounds)
		assert.Equal(t, 2, *items[0].NegotiationRounds)
		assert.Equal(t, "positive", *items[0].Sentiment)
		assert.Equal(t, 2000.0, *items[0].LoadboardRate)

		assert.Nil(t, items[1].CallID)
		assert.Nil(t, items[1].LoadboardRate)
		assert.Nil(t, items[1].NegotiationRounds)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AllTimeIsEmptyNotNil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(listBookingsQuery)).
			WithArgs(sql.NullTime{}, 20, 0).
			WillReturnRows(sqlmock.NewRows(summaryColumnNames))

		items, err := NewPostgresBookingRepository(db).List(context.Background(), nil, 20, 0)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(listBookingsQuery)).WillReturnError(errors.New("relation does not exist"))

		_, err = NewPostgresBookingRepository(db).List(context.Background(), nil, 20, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query bookings")
	})
}

func TestPostgresBookingRepository_Stats(t *testing.T) {
	t.Run("WithBookings", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(bookingStatsQuery)).
			WithArgs(sql.NullTime{}).
			WillReturnRows(sqlmock.NewRows([]string{"count", "sum", "avg_margin", "avg_rounds"}).
				AddRow(int64(3), 6100.0, 7.4567, 1.6667))

		stats, err := NewPostgresBookingRepository(db).Stats(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 6100.0, stats.Revenue)
		require.NotNil(t, stats.AvgMargin)
		assert.InDelta(t, 7.4567, *stats.AvgMargin, 1e-9)
		require.NotNil(t, stats.AvgRounds)
	})

	t.Run("Empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(bookingStatsQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"count", "sum", "avg_margin", "avg_rounds"}).
				AddRow(int64(0), 0.0, nil, nil))

		stats, err := NewPostgresBookingRepository(db).Stats(context.Background(), nil)
		require.NoError(t, err)
		assert.Zero(t, stats.Total)
		assert.Nil(t, stats.AvgMargin)
		assert.Nil(t, stats.AvgRounds)
	})
}

func TestPostgresBookingRepository_GetByLoad(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(bookingByLoadQuery)).
			WithArgs("LD-1001").
			WillReturnRows(sqlmock.NewRows(summaryColumnNames).
				AddRow("BK-1", "LD-1001", "123456", "Acme Freight", 2050.0, bookedAt, nil, bookedAt,
					"Dallas, TX", "Houston, TX", "dry_van", 2200.0, nil, nil))

		b, err := NewPostgresBookingRepository(db).GetByLoad(context.Background(), "LD-1001")
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, "BK-1", b.ID)
		assert.Equal(t, "Dallas, TX", b.LaneOrigin)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(bookingByLoadQuery)).
			WithArgs("LD-404").
			WillReturnRows(sqlmock.NewRows(summaryColumnNames))

		b, err := NewPostgresBookingRepository(db).GetByLoad(context.Background(), "LD-404")
		assert.NoError(t, err)
		assert.Nil(t, b)
	})
}
