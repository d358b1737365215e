package handler

import (
	"net/http"
	"strings"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/features/carriers/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CarrierHandler handles HTTP requests for carrier verification.
type CarrierHandler struct {
	service ports.CarrierService
}

// NewCarrierHandler creates a new CarrierHandler.
func NewCarrierHandler(service ports.CarrierService) *CarrierHandler {
	return &CarrierHandler{
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

// VerifyRequest carries the MC number as the carrier said it.
type VerifyRequest struct {
	MCNumber string `json:"mc_number" example:"MC-123456"`
}

// Verify handles POST /api/carriers/verify.
// @Summary Verify carrier eligibility
// @Description Looks the carrier up by MC number and checks operating status, authority, insurance and registration.
// @Tags Carriers
// @Accept json
// @Produce json
// @Param carrier body VerifyRequest true "MC number in any spoken or written form"
// @Success 200 {object} domain.Verification
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/carriers/verify [post]
func (h *CarrierHandler) Verify(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.MCNumber) == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "mc_number is required",
			RayID:   rayID,
		})
	}

	result, err := h.service.Verify(c.UserContext(), req.MCNumber)
	if err != nil {
		logger.WithRayID(rayID).Error("Carrier verification failed",
			zap.String("mc_number", req.MCNumber),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: "Carrier registry unavailable",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(result)
}
