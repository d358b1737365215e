package handler

import (
	"errors"
	"net/http"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/features/loads/domain"
	"carrier-sales/internal/features/loads/ports"
	"carrier-sales/internal/features/loads/service"
	locdomain "carrier-sales/internal/features/locations/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoadHandler handles HTTP requests for load search and scheduling.
type LoadHandler struct {
	service ports.LoadService
}

// NewLoadHandler creates a new LoadHandler.
func NewLoadHandler(service ports.LoadService) *LoadHandler {
	return &LoadHandler{
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

// SearchRequest is the body of a load search.
type SearchRequest struct {
	Origin            string `json:"origin" example:"Dallas, TX"`
	EquipmentType     string `json:"equipment_type" example:"dry_van"`
	Destination       string `json:"destination,omitempty" example:"Houston"`
	PickupDateTime    string `json:"pickup_datetime,omitempty" example:"2025-03-10T08:00:00Z"`
	RadiusMiles       int    `json:"radius_miles,omitempty" example:"75"`
	PickupWindowHours int    `json:"pickup_window_hours,omitempty" example:"24"`
	MaxDistanceMiles  *int   `json:"max_distance_miles,omitempty"`
	MaxWeight         *int   `json:"max_weight,omitempty"`
}

// LaneSearchRequest is the body of a lane search.
type LaneSearchRequest struct {
	Origin      string `json:"origin" example:"Chicago"`
	Destination string `json:"destination" example:"Atlanta"`
}

// RescheduleRequest is the body of a pickup reschedule check.
type RescheduleRequest struct {
	LoadID            string   `json:"load_id" example:"LD-1001"`
	NewPickupDateTime string   `json:"new_pickup_datetime,omitempty" example:"2025-03-10T13:30:00Z"`
	NewPickupWindow   *float64 `json:"new_pickup_window,omitempty" example:"4"`
}

// Search handles POST /api/loads/search.
// @Summary Search loads for a carrier
// @Description Ranks available loads against the carrier's equipment, lane and limits. Near misses are returned with explanations when fewer than three loads match.
// @Tags Loads
// @Accept json
// @Produce json
// @Param search body SearchRequest true "Carrier capabilities"
// @Success 200 {object} domain.SearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/loads/search [post]
func (h *LoadHandler) Search(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	query := domain.SearchQuery{
		Origin:            req.Origin,
		Equipment:         req.EquipmentType,
		Destination:       req.Destination,
		RadiusMiles:       req.RadiusMiles,
		PickupWindowHours: req.PickupWindowHours,
		MaxDistanceMiles:  req.MaxDistanceMiles,
		MaxWeight:         req.MaxWeight,
	}
	if req.PickupDateTime != "" {
		t, err := domain.ParseTimestamp(req.PickupDateTime)
		if err != nil {
			return respondError(c, http.StatusBadRequest, "Invalid pickup_datetime")
		}
		query.PickupDateTime = &t
		query.PickupDateTimeText = req.PickupDateTime
	}

	result, err := h.service.Search(c.UserContext(), query)
	if err != nil {
		return h.handleError(c, "Load search failed", err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// SearchLane handles POST /api/loads/search/lane.
// @Summary Search loads on a lane
// @Description Returns loads running between two places within the default radius. No alternatives are suggested.
// @Tags Loads
// @Accept json
// @Produce json
// @Param lane body LaneSearchRequest true "Lane"
// @Success 200 {object} domain.SearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/loads/search/lane [post]
func (h *LoadHandler) SearchLane(c *fiber.Ctx) error {
	var req LaneSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.service.SearchLane(c.UserContext(), req.Origin, req.Destination)
	if err != nil {
		return h.handleError(c, "Lane search failed", err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// GetLoad handles GET /api/loads/:id.
// @Summary Get a load
// @Tags Loads
// @Produce json
// @Param id path string true "Load ID"
// @Success 200 {object} domain.Load
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/loads/{id} [get]
func (h *LoadHandler) GetLoad(c *fiber.Ctx) error {
	load, err := h.service.GetLoad(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.handleError(c, "Failed to get load", err)
	}

	return c.Status(http.StatusOK).JSON(load)
}

// Reschedule handles POST /api/loads/reschedule.
// @Summary Check a pickup reschedule
// @Description Approves moving the pickup when the change stays within six hours.
// @Tags Loads
// @Accept json
// @Produce json
// @Param reschedule body RescheduleRequest true "Requested pickup"
// @Success 200 {object} domain.RescheduleResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/loads/reschedule [post]
func (h *LoadHandler) Reschedule(c *fiber.Ctx) error {
	var req RescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	rr := domain.RescheduleRequest{
		LoadID:               req.LoadID,
		NewPickupWindowHours: req.NewPickupWindow,
	}
	if req.NewPickupDateTime != "" {
		t, err := domain.ParseTimestamp(req.NewPickupDateTime)
		if err != nil {
			return respondError(c, http.StatusBadRequest, "Invalid new_pickup_datetime")
		}
		rr.NewPickupDateTime = &t
	}

	result, err := h.service.Reschedule(c.UserContext(), rr)
	if err != nil {
		return h.handleError(c, "Reschedule check failed", err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

func (h *LoadHandler) handleError(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidSearch), errors.Is(err, service.ErrInvalidReschedule):
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, locdomain.ErrUnresolvedLocation):
		return respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrLoadNotFound):
		return respondError(c, http.StatusNotFound, "Load not found")
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
