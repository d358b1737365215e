package handler

import (
	"errors"
	"net/http"

	"carrier-sales/internal/core/logger"
	"carrier-sales/internal/features/calls/domain"
	"carrier-sales/internal/features/calls/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CallHandler handles HTTP requests for call logging and carrier history.
type CallHandler struct {
	service ports.CallService
}

// NewCallHandler creates a new CallHandler.
func NewCallHandler(service ports.CallService) *CallHandler {
	return &CallHandler{
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

// LogCallRequest is the end-of-call summary sent by the voice agent.
type LogCallRequest struct {
	CallID            string   `json:"call_id" example:"hr-991"`
	MCNumber          string   `json:"mc_number,omitempty" example:"123456"`
	CarrierName       string   `json:"carrier_name,omitempty" example:"Acme Freight"`
	LaneOrigin        string   `json:"lane_origin,omitempty" example:"Dallas, TX"`
	LaneDestination   string   `json:"lane_destination,omitempty" example:"Atlanta, GA"`
	EquipmentType     string   `json:"equipment_type,omitempty" example:"dry_van"`
	LoadID            string   `json:"load_id,omitempty" example:"LD-1001"`
	InitialRate       *float64 `json:"initial_rate,omitempty" example:"2300"`
	FinalRate         *float64 `json:"final_rate,omitempty" example:"2100"`
	NegotiationRounds int      `json:"negotiation_rounds" example:"2"`
	CarrierPhone      string   `json:"carrier_phone,omitempty"`
	SpecialRequests   string   `json:"special_requests,omitempty"`
	Outcome           string   `json:"outcome" example:"booked"`
	Sentiment         string   `json:"sentiment" example:"positive"`
	DurationSeconds   *int     `json:"duration_seconds,omitempty" example:"184"`
	Transcript        string   `json:"transcript,omitempty"`
}

// LogInteractionRequest is one touchpoint with a carrier.
type LogInteractionRequest struct {
	MCNumber          string `json:"mc_number" example:"123456"`
	CarrierName       string `json:"carrier_name,omitempty" example:"Acme Freight"`
	CallID            string `json:"call_id,omitempty" example:"hr-991"`
	CallLengthSeconds *int   `json:"call_length_seconds,omitempty" example:"184"`
	Outcome           string `json:"outcome,omitempty" example:"booked"`
	LoadID            string `json:"load_id,omitempty" example:"LD-1001"`
	Notes             string `json:"notes,omitempty"`
}

// LogCall handles POST /api/calls.
// @Summary Log a carrier call
// @Description Stores the outcome, sentiment and negotiation summary of an inbound call.
// @Tags Calls
// @Accept json
// @Produce json
// @Param call body LogCallRequest true "Call summary"
// @Success 201 {object} domain.CallReceipt
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/calls [post]
func (h *CallHandler) LogCall(c *fiber.Ctx) error {
	var req LogCallRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	receipt, err := h.service.LogCall(c.UserContext(), domain.Call{
		CallID:            req.CallID,
		MCNumber:          req.MCNumber,
		CarrierName:       req.CarrierName,
		LaneOrigin:        req.LaneOrigin,
		LaneDestination:   req.LaneDestination,
		EquipmentType:     req.EquipmentType,
		LoadID:            req.LoadID,
		InitialRate:       req.InitialRate,
		FinalRate:         req.FinalRate,
		NegotiationRounds: req.NegotiationRounds,
		CarrierPhone:      req.CarrierPhone,
		SpecialRequests:   req.SpecialRequests,
		Outcome:           domain.Outcome(req.Outcome),
		Sentiment:         domain.Sentiment(req.Sentiment),
		DurationSeconds:   req.DurationSeconds,
		Transcript:        req.Transcript,
	})
	if err != nil {
		return h.handleError(c, "Failed to log call", err)
	}

	return c.Status(http.StatusCreated).JSON(receipt)
}

// LogInteraction handles POST /api/carriers/interactions.
// @Summary Log a carrier interaction
// @Tags Carriers
// @Accept json
// @Produce json
// @Param interaction body LogInteractionRequest true "Interaction"
// @Success 201 {object} domain.Interaction
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/carriers/interactions [post]
func (h *CallHandler) LogInteraction(c *fiber.Ctx) error {
	var req LogInteractionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	interaction, err := h.service.LogInteraction(c.UserContext(), domain.Interaction{
		MCNumber:          req.MCNumber,
		CarrierName:       req.CarrierName,
		CallID:            req.CallID,
		CallLengthSeconds: req.CallLengthSeconds,
		Outcome:           req.Outcome,
		LoadID:            req.LoadID,
		Notes:             req.Notes,
	})
	if err != nil {
		return h.handleError(c, "Failed to log interaction", err)
	}

	return c.Status(http.StatusCreated).JSON(interaction)
}

// History handles GET /api/carriers/:mc/interactions.
// @Summary Get a carrier's interaction history
// @Description Returns every interaction recorded for the MC number, newest first.
// @Tags Carriers
// @Produce json
// @Param mc path string true "MC number"
// @Success 200 {object} domain.InteractionHistory
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/carriers/{mc}/interactions [get]
func (h *CallHandler) History(c *fiber.Ctx) error {
	history, err := h.service.History(c.UserContext(), c.Params("mc"))
	if err != nil {
		return h.handleError(c, "Failed to get interaction history", err)
	}

	return c.Status(http.StatusOK).JSON(history)
}

func (h *CallHandler) handleError(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, domain.ErrInvalidCall) || errors.Is(err, domain.ErrInvalidInteraction) {
		return respondError(c, http.StatusBadRequest, err.Error())
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
