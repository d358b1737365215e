package handler

import (
	"errors"
	"net/http"
	"strings"

	"carrier-sales/internal/core/logger"
	loaddomain "carrier-sales/internal/features/loads/domain"
	"carrier-sales/internal/features/negotiation/domain"
	"carrier-sales/internal/features/negotiation/ports"
	"carrier-sales/internal/features/negotiation/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NegotiationHandler handles HTTP requests for offer analysis and logging.
type NegotiationHandler struct {
	service ports.NegotiationService
}

// NewNegotiationHandler creates a new NegotiationHandler.
func NewNegotiationHandler(service ports.NegotiationService) *NegotiationHandler {
	return &NegotiationHandler{
		service: service,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// AnalyzeRequest is a carrier's ask on a load. Omitted fields are not judged.
type AnalyzeRequest struct {
	LoadID            string   `json:"load_id" example:"LD-1001"`
	Rate              *float64 `json:"rate,omitempty" example:"2300"`
	PickupDateTime    string   `json:"pickup_datetime,omitempty" example:"2025-03-10T08:00:00Z"`
	PickupWindowHours *float64 `json:"pickup_window_hours,omitempty" example:"24"`
	RadiusMiles       *int     `json:"radius_miles,omitempty" example:"500"`
}

// Analyze handles POST /api/offers/analyze.
// @Summary Analyze a carrier's ask
// @Description Judges rate, pickup time, pickup window and haul distance independently and returns accept, counter or reject.
// @Tags Offers
// @Accept json
// @Produce json
// @Param ask body AnalyzeRequest true "Carrier ask"
// @Success 200 {object} domain.Analysis
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/offers/analyze [post]
func (h *NegotiationHandler) Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.LoadID) == "" {
		return respondError(c, http.StatusBadRequest, "load_id is required")
	}

	asking := domain.Asking{
		Rate:              req.Rate,
		PickupWindowHours: req.PickupWindowHours,
		RadiusMiles:       req.RadiusMiles,
	}
	if req.PickupDateTime != "" {
		t, err := loaddomain.ParseTimestamp(req.PickupDateTime)
		if err != nil {
			return respondError(c, http.StatusBadRequest, "Invalid pickup_datetime")
		}
		asking.PickupDateTime = &t
	}

	analysis, err := h.service.Analyze(c.UserContext(), strings.TrimSpace(req.LoadID), asking)
	if err != nil {
		return h.handleError(c, "Offer analysis failed", err)
	}

	return c.Status(http.StatusOK).JSON(analysis)
}

// LogOffer handles POST /api/offers.
// @Summary Log an offer
// @Description Records an offer made during a call along with its difference from the posted rate.
// @Tags Offers
// @Accept json
// @Produce json
// @Param offer body domain.OfferRequest true "Offer"
// @Success 201 {object} domain.Offer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/offers [post]
func (h *NegotiationHandler) LogOffer(c *fiber.Ctx) error {
	var req domain.OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	offer, err := h.service.LogOffer(c.UserContext(), req)
	if err != nil {
		return h.handleError(c, "Failed to log offer", err)
	}

	return c.Status(http.StatusCreated).JSON(offer)
}

func (h *NegotiationHandler) handleError(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidAskingSet), errors.Is(err, domain.ErrInvalidOffer):
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrLoadNotFound):
		return respondError(c, http.StatusNotFound, "Load not found")
	case errors.Is(err, service.ErrAlreadyBooked):
		return respondError(c, http.StatusConflict, "Load is already booked")
	}

	rayID, _ := c.Locals("requestid").(string)
	logger.WithRayID(rayID).Error(msg, zap.Error(err))
	return respondError(c, http.StatusInternalServerError, "Internal server error")
}

func respondError(c *fiber.Ctx, status int, message string) error {
	rayID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID,
	})
}
