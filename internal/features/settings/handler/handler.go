package handler

import (
	"errors"
	"net/http"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/features/settings/domain"
	"carrier-sales/internal/features/settings/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SettingsHandler handles HTTP requests for negotiation settings.
type SettingsHandler struct {
	service ports.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{
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

// GetNegotiationSettings handles GET /api/settings/negotiation.
// @Summary Get negotiation settings
// @Description Returns the margin settings used to price loads and judge offers.
// @Tags Settings
// @Produce json
// @Success 200 {object} domain.NegotiationSettings
// @Failure 500 {object} ErrorResponse
// @Router /api/settings/negotiation [get]
func (h *SettingsHandler) GetNegotiationSettings(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	settings, err := h.service.GetNegotiationSettings(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to get negotiation settings", zap.String("ray_id", rayID), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(settings)
}

// UpdateNegotiationSettings handles PUT /api/settings/negotiation.
// @Summary Update negotiation settings
// @Description Changes only the fields present in the body.
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body domain.Update true "Fields to change"
// @Success 200 {object} domain.NegotiationSettings
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/settings/negotiation [put]
func (h *SettingsHandler) UpdateNegotiationSettings(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	violations, err := validateUpdate(c.Body())
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}
	if violations != "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: violations,
			RayID:   rayID,
		})
	}

	var req domain.Update
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	settings, err := h.service.UpdateNegotiationSettings(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSettings) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID,
			})
		}
		logger.Get().Error("Failed to update negotiation settings", zap.String("ray_id", rayID), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID,
		})
	}

	logger.Get().Info("Negotiation settings updated",
		zap.Float64("target_margin", settings.TargetMargin),
		zap.Float64("min_margin", settings.MinMargin),
		zap.Float64("max_bump_above_loadboard", settings.MaxBumpAboveLoadboard),
		zap.Int("max_negotiation_rounds", settings.MaxNegotiationRounds),
	)

	return c.Status(http.StatusOK).JSON(settings)
}
