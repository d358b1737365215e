package adapters

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"carrier-sales/internal/features/negotiation/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOffer() *domain.Offer {
	return &domain.Offer{
		ID:                "OFF-1a2b3c4d",
		LoadID:            "LD-1001",
		MCNumber:          "123456",
		OfferAmount:       2150,
		OfferType:         domain.OfferTypeCounter,
		RoundNumber:       2,
		Status:            domain.OfferStatusPending,
		Notes:             "wants detention covered",
		OriginalRate:      2000,
		RateDifference:    150,
		RateDifferencePct: 7.5,
		CreatedAt:         time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
	}
}

func TestPostgresOfferRepository_Insert(t *testing.T) {
	t.Run("WithoutCallID", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		offer := testOffer()
		mock.ExpectExec(regexp.QuoteMeta(insertOfferQuery)).
			WithArgs("OFF-1a2b3c4d", sql.NullString{}, "LD-1001", "123456", 2150.0, "counter", 2,
				"pending", "wants detention covered", 2000.0, 150.0, 7.5, offer.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = NewPostgresOfferRepository(db).Insert(context.Background(), offer)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("WithCallID", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		offer := testOffer()
		callID := "CALL-42"
		offer.CallID = &callID
		mock.ExpectExec(regexp.QuoteMeta(insertOfferQuery)).
			WithArgs(offer.ID, sql.NullString{String: "CALL-42", Valid: true}, sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = NewPostgresOfferRepository(db).Insert(context.Background(), offer)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(insertOfferQuery)).WillReturnError(errors.New("fk violation"))

		err = NewPostgresOfferRepository(db).Insert(context.Background(), testOffer())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OFF-1a2b3c4d")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
