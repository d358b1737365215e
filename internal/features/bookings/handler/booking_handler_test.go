package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carrier-sales/internal/features/bookings/domain"
	"carrier-sales/internal/features/bookings/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBookingService is a mock implementation of ports.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Book(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context, q domain.ListQuery) (*domain.BookingPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingPage), args.Error(1)
}

func (m *MockBookingService) GetByLoad(ctx context.Context, loadID string) (*domain.BookingSummary, error) {
	args := m.Called(ctx, loadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingSummary), args.Error(1)
}

func setupApp(svc *MockBookingService) *fiber.App {
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Header: "X-Ray-ID"}))
	h := NewBookingHandler(svc)
	app.Post("/api/booked-loads", h.Create)
	app.Get("/api/booked-loads", h.List)
	app.Get("/api/booked-loads/:load_id", h.GetByLoad)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestBookingHandler_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(MockBookingService)
		app := setupApp(svc)

		svc.On("Book", mock.Anything, mock.MatchedBy(func(r domain.BookingRequest) bool {
			return r.LoadID == "LD-1001" && r.MCNumber == "123456" &&
				r.AgreedRate != nil && *r.AgreedRate == 1950 &&
				r.AgreedPickupDateTime != nil &&
				r.AgreedPickupDateTime.Equal(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
		})).Return(&domain.Booking{ID: "BK-1a2b3c4d", LoadID: "LD-1001", AgreedRate: 1950}, nil).Once()

		resp := postJSON(t, app, "/api/booked-loads",
			`{"load_id":"LD-1001","mc_number":"123456","agreed_rate":1950,"agreed_pickup_datetime":"2025-03-10T08:00:00Z"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var b domain.Booking
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&b))
		assert.Equal(t, "BK-1a2b3c4d", b.ID)
		svc.AssertExpectations(t)
	})

	t.Run("BadPickup", func(t *testing.T) {
		svc := new(MockBookingService)
		app := setupApp(svc)

		resp := postJSON(t, app, "/api/booked-loads", `{"load_id":"LD-1001","mc_number":"123456","agreed_pickup_datetime":"monday"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "Book", mock.Anything, mock.Anything)
	})

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"NotFound", service.ErrLoadNotFound, http.StatusNotFound, "Load LD-1001 not found"},
		{"AlreadyBooked", service.ErrAlreadyBooked, http.StatusConflict, "Load LD-1001 is already booked"},
		{"Invalid", errors.Join(domain.ErrInvalidBooking, errors.New("mc_number is required")), http.StatusBadRequest, ""},
		{"Internal", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockBookingService)
			app := setupApp(svc)
			svc.On("Book", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			resp := postJSON(t, app, "/api/booked-loads", `{"load_id":" LD-1001 ","mc_number":"123456"}`)
			assert.Equal(t, tc.status, resp.StatusCode)

			body := decodeError(t, resp)
			if tc.message != "" {
				assert.Equal(t, tc.message, body.Message)
			}
			assert.NotEmpty(t, body.RayID)
		})
	}
}

func TestBookingHandler_List(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		svc := new(MockBookingService)
		app := setupApp(svc)

		svc.On("List", mock.Anything, domain.ListQuery{Page: 1, PageSize: 20, Period: domain.PeriodLastMonth}).
			Return(&domain.BookingPage{Items: []domain.BookingSummary{}, Page: 1, PageSize: 20, Period: domain.PeriodLastMonth}, nil).Once()

		resp := get(t, app, "/api/booked-loads")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, []any{}, body["items"])
		assert.Contains(t, body, "kpi_avg_margin")
		svc.AssertExpectations(t)
	})

	t.Run("QueryParams", func(t *testing.T) {
		svc := new(MockBookingService)
		app := setupApp(svc)

		svc.On("List", mock.Anything, domain.ListQuery{Page: 3, PageSize: 50, Period: domain.PeriodToday}).
			Return(&domain.BookingPage{Page: 3, PageSize: 50, Period: domain.PeriodToday}, nil).Once()

		resp := get(t, app, "/api/booked-loads?page=3&page_size=50&period=today")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("UnknownPeriod", func(t *testing.T) {
		svc := new(MockBookingService)
		app := setupApp(svc)

		resp := get(t, app, "/api/booked-loads?period=forever")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("PageSizeOutOfRange", func(t *testing.T) {
		svc := new(MockBookingService)
		app := setupApp(svc)
		svc.On("List", mock.Anything, mock.Anything).
			Return(nil, errors.Join(domain.ErrInvalidQuery, errors.New("page_size must be between 1 and 100"))).Once()

		resp := get(t, app, "/api/booked-loads?page_size=500")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestBookingHandler_GetByLoad(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := new(MockBookingService)
		app := setupApp(svc)
		svc.On("GetByLoad", mock.Anything, "LD-1001").
			Return(&domain.BookingSummary{Booking: domain.Booking{ID: "BK-1", LoadID: "LD-1001"}}, nil).Once()

		resp := get(t, app, "/api/booked-loads/LD-1001")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockBookingService)
		app := setupApp(svc)
		svc.On("GetByLoad", mock.Anything, "LD-404").Return(nil, service.ErrBookingNotFound).Once()

		resp := get(t, app, "/api/booked-loads/LD-404")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "No booking found for load LD-404", decodeError(t, resp).Message)
	})
}
