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

	"carrier-sales/internal/features/negotiation/domain"
	"carrier-sales/internal/features/negotiation/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNegotiationService is a mock implementation of ports.NegotiationService
type MockNegotiationService struct {
	mock.Mock
}

func (m *MockNegotiationService) Analyze(ctx context.Context, loadID string, asking domain.Asking) (*domain.Analysis, error) {
	args := m.Called(ctx, loadID, asking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analysis), args.Error(1)
}

func (m *MockNegotiationService) LogOffer(ctx context.Context, req domain.OfferRequest) (*domain.Offer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func setupApp(svc *MockNegotiationService) *fiber.App {
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Header: "X-Ray-ID"}))
	h := NewNegotiationHandler(svc)
	app.Post("/api/offers/analyze", h.Analyze)
	app.Post("/api/offers", h.LogOffer)
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

func TestNegotiationHandler_Analyze(t *testing.T) {
	t.Run("Counter", func(t *testing.T) {
		svc := new(MockNegotiationService)
		app := setupApp(svc)

		counter := 2060.0
		svc.On("Analyze", mock.Anything, "LD-1001", mock.MatchedBy(func(a domain.Asking) bool {
			return a.Rate != nil && *a.Rate == 2300 && a.PickupDateTime != nil &&
				a.PickupDateTime.Equal(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)) && a.RadiusMiles == nil
		})).Return(&domain.Analysis{
			LoadID:        "LD-1001",
			Verdict:       domain.VerdictCounter,
			CounterOffers: []string{"Asking rate $2300.00 is above what we can pay; we can offer $2060.00"},
			CounterRate:   &counter,
			PostedRate:    2000,
			RateCeiling:   2060,
		}, nil).Once()

		resp := postJSON(t, app, "/api/offers/analyze",
			`{"load_id":"LD-1001","rate":2300,"pickup_datetime":"2025-03-10T08:00:00Z"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "counter", body["verdict"])
		assert.Equal(t, 2060.0, body["counter_rate"])
		assert.NotContains(t, body, "reason")
		svc.AssertExpectations(t)
	})

	statusCases := []struct {
		name   string
		err    error
		status int
	}{
		{"NoAskingFields", service.ErrInvalidAskingSet, http.StatusBadRequest},
		{"NotFound", service.ErrLoadNotFound, http.StatusNotFound},
		{"AlreadyBooked", service.ErrAlreadyBooked, http.StatusConflict},
		{"Internal", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range statusCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockNegotiationService)
			app := setupApp(svc)
			svc.On("Analyze", mock.Anything, "LD-1001", mock.Anything).Return(nil, tc.err).Once()

			resp := postJSON(t, app, "/api/offers/analyze", `{"load_id":"LD-1001"}`)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.RayID)
		})
	}

	t.Run("MissingLoadID", func(t *testing.T) {
		svc := new(MockNegotiationService)
		app := setupApp(svc)

		resp := postJSON(t, app, "/api/offers/analyze", `{"rate":2000}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BadPickup", func(t *testing.T) {
		svc := new(MockNegotiationService)
		app := setupApp(svc)

		resp := postJSON(t, app, "/api/offers/analyze", `{"load_id":"LD-1001","pickup_datetime":"tomorrow"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestNegotiationHandler_LogOffer(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(MockNegotiationService)
		app := setupApp(svc)

		svc.On("LogOffer", mock.Anything, mock.MatchedBy(func(r domain.OfferRequest) bool {
			return r.LoadID == "LD-1001" && r.OfferType == domain.OfferTypeInitial && r.OfferAmount == 1950
		})).Return(&domain.Offer{ID: "OFF-1a2b3c4d", LoadID: "LD-1001", OfferAmount: 1950}, nil).Once()

		resp := postJSON(t, app, "/api/offers",
			`{"load_id":"LD-1001","mc_number":"123456","offer_amount":1950,"offer_type":"initial"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var offer domain.Offer
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&offer))
		assert.Equal(t, "OFF-1a2b3c4d", offer.ID)
		svc.AssertExpectations(t)
	})

	t.Run("Invalid", func(t *testing.T) {
		svc := new(MockNegotiationService)
		app := setupApp(svc)
		svc.On("LogOffer", mock.Anything, mock.Anything).
			Return(nil, errors.Join(domain.ErrInvalidOffer, errors.New("offer_amount must be positive"))).Once()

		resp := postJSON(t, app, "/api/offers", `{"load_id":"LD-1001"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockNegotiationService)
		app := setupApp(svc)
		svc.On("LogOffer", mock.Anything, mock.Anything).Return(nil, service.ErrLoadNotFound).Once()

		resp := postJSON(t, app, "/api/offers", `{"load_id":"LD-404"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
