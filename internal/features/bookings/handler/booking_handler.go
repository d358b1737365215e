package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/features/bookings/domain"
	"carrier-sales/internal/features/bookings/ports"
	"carrier-sales/internal/features/bookings/service"
	loaddomain "carrier-sales/internal/features/loads/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BookingHandler handles HTTP requests for booked loads.
type BookingHandler struct {
	service ports.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{
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

// CreateBookingRequest confirms a load for a carrier.
type CreateBookingRequest struct {
	LoadID               string   `json:"load_id" example:"LD-1001"`
	MCNumber             string   `json:"mc_number" example:"123456"`
	CarrierName          string   `json:"carrier_name,omitempty" example:"Acme Freight"`
	AgreedRate           *float64 `json:"agreed_rate,omitempty" example:"1950"`
	AgreedPickupDateTime string   `json:"agreed_pickup_datetime,omitempty" example:"2025-03-10T08:00:00Z"`
	CallID               *string  `json:"call_id,omitempty" example:"call-8842"`
}

// Create handles POST /api/booked-loads.
// @Summary Book a load
// @Description Marks an available load as booked for a carrier. Without an agreed rate the floor rate is used.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking"
// @Success 201 {object} domain.Booking
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/booked-loads [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	booking := domain.BookingRequest{
		LoadID:      req.LoadID,
		MCNumber:    req.MCNumber,
		CarrierName: req.CarrierName,
		AgreedRate:  req.AgreedRate,
		CallID:      req.CallID,
	}
	if req.AgreedPickupDateTime != "" {
		t, err := loaddomain.ParseTimestamp(req.AgreedPickupDateTime)
		if err != nil {
			return respondError(c, http.StatusBadRequest, "Invalid agreed_pickup_datetime")
		}
		booking.AgreedPickupDateTime = &t
	}

	loadID := strings.TrimSpace(req.LoadID)
	created, err := h.service.Book(c.UserContext(), booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBooking):
			return respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrLoadNotFound):
			return respondError(c, http.StatusNotFound, fmt.Sprintf("Load %s not found", loadID))
		case errors.Is(err, service.ErrAlreadyBooked):
			return respondError(c, http.StatusConflict, fmt.Sprintf("Load %s is already booked", loadID))
		}
		return internalError(c, "Failed to book load", err)
	}

	return c.Status(http.StatusCreated).JSON(created)
}

// List handles GET /api/booked-loads.
// @Summary List booked loads
// @Description Returns one page of bookings in the period, newest first, with KPIs over the whole period.
// @Tags Bookings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (max 100)" default(20)
// @Param period query string false "today, last_week, last_month or all_time" default(last_month)
// @Success 200 {object} domain.BookingPage
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/booked-loads [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	period, err := domain.ParsePeriod(c.Query("period"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	page, err := h.service.List(c.UserContext(), domain.ListQuery{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", domain.DefaultPageSize),
		Period:   period,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		return internalError(c, "Failed to list bookings", err)
	}

	return c.Status(http.StatusOK).JSON(page)
}

// GetByLoad handles GET /api/booked-loads/:load_id.
// @Summary Get the booking for a load
// @Tags Bookings
// @Produce json
// @Param load_id path string true "Load ID"
// @Success 200 {object} domain.BookingSummary
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/booked-loads/{load_id} [get]
func (h *BookingHandler) GetByLoad(c *fiber.Ctx) error {
	loadID := c.Params("load_id")

	booking, err := h.service.GetByLoad(c.UserContext(), loadID)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return respondError(c, http.StatusNotFound, fmt.Sprintf("No booking found for load %s", loadID))
		}
		return internalError(c, "Failed to get booking", err)
	}

	return c.Status(http.StatusOK).JSON(booking)
}

func internalError(c *fiber.Ctx, msg string, err error) error {
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
