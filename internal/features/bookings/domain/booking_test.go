package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRequest_Normalize(t *testing.T) {
	t.Run("TrimsAndNormalizesMC", func(t *testing.T) {
		callID := "  "
		req := BookingRequest{LoadID: " LD-1001 ", MCNumber: "MC-123456", CarrierName: " Acme ", CallID: &callID}
		require.NoError(t, req.Normalize())
		assert.Equal(t, "LD-1001", req.LoadID)
		assert.Equal(t, "123456", req.MCNumber)
		assert.Equal(t, "Acme", req.CarrierName)
		assert.Nil(t, req.CallID)
	})

	negative := -5.0
	invalid := []struct {
		name string
		req  BookingRequest
	}{
		{"NoLoad", BookingRequest{MCNumber: "123456"}},
		{"NoMC", BookingRequest{LoadID: "LD-1", MCNumber: "MC-"}},
		{"NegativeRate", BookingRequest{LoadID: "LD-1", MCNumber: "123456", AgreedRate: &negative}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.req.Normalize(), ErrInvalidBooking)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodLastMonth, p)

	p, err = ParsePeriod(" Last_Week ")
	require.NoError(t, err)
	assert.Equal(t, PeriodLastWeek, p)

	_, err = ParsePeriod("yesterday")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestPeriod_Since(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.FixedZone("CST", -6*3600))
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, today, *PeriodToday.Since(now))
	assert.Equal(t, today.AddDate(0, 0, -6), *PeriodLastWeek.Since(now))
	assert.Equal(t, time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC), *PeriodLastMonth.Since(now))
	assert.Nil(t, PeriodAllTime.Since(now))
}

func TestListQuery_Normalize(t *testing.T) {
	q := ListQuery{Page: 2, PageSize: 50}
	require.NoError(t, q.Normalize())
	assert.Equal(t, PeriodLastMonth, q.Period)

	for _, bad := range []ListQuery{{Page: 0, PageSize: 20}, {Page: 1, PageSize: 0}, {Page: 1, PageSize: MaxPageSize + 1}} {
		assert.ErrorIs(t, bad.Normalize(), ErrInvalidQuery)
	}
}
